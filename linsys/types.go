package linsys

import "errors"

// ErrSingularSystem is returned by Cramer when the main determinant is zero.
// Solve never returns it: it falls back to Gauss-Jordan instead.
var ErrSingularSystem = errors.New("cannot use Cramer's rule: main determinant is zero")

// Kind enumerates the variants of Result.
type Kind int

const (
	// KindUnique marks a Unique result.
	KindUnique Kind = iota
	// KindParametric marks a Parametric result.
	KindParametric
	// KindNoSolution marks a NoSolution result.
	KindNoSolution
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindUnique:
		return "unique"
	case KindParametric:
		return "parametric"
	case KindNoSolution:
		return "none"
	default:
		return "unknown"
	}
}

// Result is the outcome of Solve: exactly one of Unique, Parametric or
// NoSolution. The interface is sealed.
type Result interface {
	Kind() Kind
	isResult()
}

// Unique maps variable index (0-based) to its value.
type Unique struct {
	Values map[int]float64
}

// Parametric maps variable index (0-based) to a display expression.
// Free variables map to their parameter name; Parameters lists the names
// in order of the free columns.
type Parametric struct {
	Expressions map[int]string
	Parameters  []string
}

// NoSolution reports an inconsistent system.
type NoSolution struct{}

func (Unique) Kind() Kind     { return KindUnique }
func (Parametric) Kind() Kind { return KindParametric }
func (NoSolution) Kind() Kind { return KindNoSolution }

func (Unique) isResult()     {}
func (Parametric) isResult() {}
func (NoSolution) isResult() {}

const (
	opSolve  = "Solve"
	opCramer = "Cramer"
	opResid  = "Residual"
)

// parameterNames are the first free-parameter names; later ones are "p{n}".
var parameterNames = [...]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p"}
