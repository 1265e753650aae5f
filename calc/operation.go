package calc

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Operation selects what Evaluate computes.
type Operation int

// Supported operations. The zero Operation is invalid, so a request
// without an op is rejected.
const (
	Addition Operation = iota + 1
	Subtraction
	Multiplication
	StrassenMultiplication
	Determinant
	Inverse
	GaussJordan
	SolveSystem
)

var operationNames = [...]string{
	0:                      "",
	Addition:               "addition",
	Subtraction:            "subtraction",
	Multiplication:         "multiplication",
	StrassenMultiplication: "strassen",
	Determinant:            "determinant",
	Inverse:                "inverse",
	GaussJordan:            "gauss-jordan",
	SolveSystem:            "solve",
}

// Operations lists every operation in declaration order.
func Operations() []Operation {
	ops := make([]Operation, 0, len(operationNames)-1)
	for i := 1; i < len(operationNames); i++ {
		ops = append(ops, Operation(i))
	}

	return ops
}

func (o Operation) valid() bool { return o > 0 && int(o) < len(operationNames) }

// String returns the canonical lower-case name.
func (o Operation) String() string {
	if !o.valid() {
		return fmt.Sprintf("Operation(%d)", int(o))
	}

	return operationNames[o]
}

// Binary reports whether the operation takes two matrices.
func (o Operation) Binary() bool {
	switch o {
	case Addition, Subtraction, Multiplication, StrassenMultiplication:
		return true
	default:
		return false
	}
}

// ParseOperation accepts canonical names case-insensitively, with '_' or
// ' ' in place of '-', plus a few aliases ("add", "sub", "mul", "det",
// "inv", "rref", "solve_spl").
func ParseOperation(s string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	for i, name := range operationNames {
		if i > 0 && key == name {
			return Operation(i), nil
		}
	}
	switch key {
	case "add", "sum":
		return Addition, nil
	case "sub", "difference":
		return Subtraction, nil
	case "mul", "multiply", "brute-force":
		return Multiplication, nil
	case "strassen-multiplication":
		return StrassenMultiplication, nil
	case "det":
		return Determinant, nil
	case "inv":
		return Inverse, nil
	case "rref", "gaussjordan":
		return GaussJordan, nil
	case "solve-spl", "solve-system", "system":
		return SolveSystem, nil
	}

	return 0, fmt.Errorf("ParseOperation %q: %w", s, ErrUnknownOperation)
}

var (
	_ yaml.Marshaler   = Operation(0)
	_ yaml.Unmarshaler = (*Operation)(nil)
)

// MarshalYAML writes the canonical name.
func (o Operation) MarshalYAML() (interface{}, error) {
	if !o.valid() {
		return nil, fmt.Errorf("calc: MarshalYAML %d: %w", int(o), ErrUnknownOperation)
	}

	return o.String(), nil
}

// UnmarshalYAML reads any name ParseOperation accepts.
func (o *Operation) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	op, err := ParseOperation(s)
	if err != nil {
		return err
	}
	*o = op

	return nil
}
