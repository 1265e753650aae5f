package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/algeo/linsys"
	"github.com/katalvlaran/algeo/matrix"
)

// Render formats the response for a terminal: a header, the result and the
// numbered steps, each with its before and after grids. Numbers use the
// precision the response was computed with.
func (r Response) Render() string {
	var sb strings.Builder
	if r.Name != "" {
		fmt.Fprintf(&sb, "== %s (%s) ==\n", r.Name, r.Op)
	} else {
		fmt.Fprintf(&sb, "== %s ==\n", r.Op)
	}

	switch {
	case r.Matrix != nil:
		sb.WriteString("Result:\n")
		writeGrid(&sb, r.Matrix, r.precision, "  ")
	case r.Scalar != nil:
		fmt.Fprintf(&sb, "Result: %s\n", strconv.FormatFloat(*r.Scalar, 'f', r.precision, 64))
	case r.Solution != nil:
		fmt.Fprintf(&sb, "Solution (%s):\n", r.Solution.Kind())
		for _, line := range strings.Split(linsys.Format(r.Solution), "\n") {
			fmt.Fprintf(&sb, "  %s\n", line)
		}
	}

	if r.Trace.Len() == 0 {
		return sb.String()
	}
	sb.WriteString("Steps:\n")
	for i, s := range r.Trace.All() {
		desc := strings.ReplaceAll(s.Description, "\n", "\n     ")
		fmt.Fprintf(&sb, "%3d. %s\n", i+1, desc)
		if s.Before != nil {
			sb.WriteString("     before:\n")
			writeGrid(&sb, s.Before, r.precision, "       ")
		}
		if s.After != nil {
			sb.WriteString("     after:\n")
			writeGrid(&sb, s.After, r.precision, "       ")
		}
	}

	return sb.String()
}

// FormatGrid renders m one row per line as "[1.00, 2.00]".
func FormatGrid(m matrix.Matrix, precision int) string {
	var sb strings.Builder
	writeGrid(&sb, m, precision, "")

	return strings.TrimSuffix(sb.String(), "\n")
}

func writeGrid(sb *strings.Builder, m matrix.Matrix, precision int, indent string) {
	rows, err := matrix.ToRows(m)
	if err != nil {
		fmt.Fprintf(sb, "%s<%v>\n", indent, err)
		return
	}
	cells := make([]string, 0, m.Cols())
	for _, row := range rows {
		cells = cells[:0]
		for _, v := range row {
			cells = append(cells, strconv.FormatFloat(v, 'f', precision, 64))
		}
		fmt.Fprintf(sb, "%s[%s]\n", indent, strings.Join(cells, ", "))
	}
}
