package calc

import (
	"errors"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algeo/linsys"
	"github.com/katalvlaran/algeo/matrix"
	"github.com/katalvlaran/algeo/trace"
)

type problemsDoc struct {
	Problems []Request `yaml:"problems"`
}

type resultsDoc struct {
	Results []outcomeDoc `yaml:"results"`
}

type outcomeDoc struct {
	Name     string       `yaml:"name,omitempty"`
	Op       string       `yaml:"op"`
	Matrix   [][]float64  `yaml:"matrix,omitempty,flow"`
	Scalar   *float64     `yaml:"scalar,omitempty"`
	Solution *solutionDoc `yaml:"solution,omitempty"`
	Steps    trace.Trace  `yaml:"steps,omitempty"`
	Error    string       `yaml:"error,omitempty"`
}

type solutionDoc struct {
	Kind        string             `yaml:"kind"`
	Values      map[string]float64 `yaml:"values,omitempty"`
	Expressions map[string]string  `yaml:"expressions,omitempty"`
	Parameters  []string           `yaml:"parameters,omitempty,flow"`
}

// DecodeRequests reads a YAML document with a top-level "problems" list.
//
// Errors:
//   - ErrNoProblems for an empty document or an empty list.
//   - yaml errors for malformed input; ErrUnknownOperation for bad "op" values.
func DecodeRequests(r io.Reader) ([]Request, error) {
	var doc problemsDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, calcErrorf("DecodeRequests", ErrNoProblems)
		}
		return nil, calcErrorf("DecodeRequests", err)
	}
	if len(doc.Problems) == 0 {
		return nil, calcErrorf("DecodeRequests", ErrNoProblems)
	}

	return doc.Problems, nil
}

// EncodeOutcomes writes outcomes as a YAML document with a top-level
// "results" list. Variables are keyed x1, x2, ...
func EncodeOutcomes(w io.Writer, outcomes []Outcome) error {
	doc := resultsDoc{Results: make([]outcomeDoc, 0, len(outcomes))}
	for _, oc := range outcomes {
		d, err := newOutcomeDoc(oc)
		if err != nil {
			return calcErrorf("EncodeOutcomes", err)
		}
		doc.Results = append(doc.Results, d)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return calcErrorf("EncodeOutcomes", err)
	}

	return enc.Close()
}

func newOutcomeDoc(oc Outcome) (outcomeDoc, error) {
	d := outcomeDoc{Name: oc.Request.Name, Op: oc.Request.Op.String()}
	if oc.Err != nil {
		d.Error = oc.Err.Error()
		return d, nil
	}

	r := oc.Response
	d.Scalar, d.Steps = r.Scalar, r.Trace
	if r.Matrix != nil {
		var err error
		if d.Matrix, err = matrix.ToRows(r.Matrix); err != nil {
			return outcomeDoc{}, err
		}
	}

	switch s := r.Solution.(type) {
	case linsys.Unique:
		d.Solution = &solutionDoc{Kind: s.Kind().String(), Values: make(map[string]float64, len(s.Values))}
		for i, v := range s.Values {
			d.Solution.Values[varName(i)] = v
		}
	case linsys.Parametric:
		d.Solution = &solutionDoc{Kind: s.Kind().String(), Parameters: s.Parameters, Expressions: make(map[string]string, len(s.Expressions))}
		for i, e := range s.Expressions {
			d.Solution.Expressions[varName(i)] = e
		}
	case linsys.NoSolution:
		d.Solution = &solutionDoc{Kind: s.Kind().String()}
	}

	return d, nil
}

func varName(i int) string { return "x" + strconv.Itoa(i+1) }
