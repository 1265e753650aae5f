package converters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/algeo/matrix"
)

// ErrMismatch reports that a result disagrees with gonum beyond the tolerance.
var ErrMismatch = errors.New("result disagrees with gonum")

func convertErrorf(op string, err error) error {
	return fmt.Errorf("converters: %s: %w", op, err)
}

// ToGonum copies m into a new *mat.Dense.
func ToGonum(m matrix.Matrix) (*mat.Dense, error) {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return nil, convertErrorf("ToGonum", err)
	}
	data := make([]float64, 0, m.Rows()*m.Cols())
	for _, row := range rows {
		data = append(data, row...)
	}

	return mat.NewDense(m.Rows(), m.Cols(), data), nil
}

// FromGonum copies any gonum matrix into a new *matrix.Dense.
func FromGonum(g mat.Matrix) (*matrix.Dense, error) {
	if g == nil {
		return nil, convertErrorf("FromGonum", matrix.ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, convertErrorf("FromGonum", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, convertErrorf("FromGonum", err)
			}
		}
	}

	return out, nil
}

// CheckSum verifies got ≈ a + b.
func CheckSum(a, b, got matrix.Matrix, tol float64) error {
	return checkElementwise("CheckSum", a, b, got, tol, (*mat.Dense).Add)
}

// CheckDifference verifies got ≈ a - b.
func CheckDifference(a, b, got matrix.Matrix, tol float64) error {
	return checkElementwise("CheckDifference", a, b, got, tol, (*mat.Dense).Sub)
}

func checkElementwise(op string, a, b, got matrix.Matrix, tol float64, apply func(*mat.Dense, mat.Matrix, mat.Matrix)) error {
	ga, gb, gg, err := toGonum3(a, b, got)
	if err != nil {
		return convertErrorf(op, err)
	}
	ar, ac := ga.Dims()
	br, bc := gb.Dims()
	if gr, gcol := gg.Dims(); ar != br || ac != bc || gr != ar || gcol != ac {
		return convertErrorf(op, matrix.ErrDimensionMismatch)
	}

	var want mat.Dense
	apply(&want, ga, gb)
	if !mat.EqualApprox(&want, gg, tol) {
		return convertErrorf(op, fmt.Errorf("want\n%v\n: %w", mat.Formatted(&want), ErrMismatch))
	}

	return nil
}

// CheckProduct verifies got ≈ a·b.
func CheckProduct(a, b, got matrix.Matrix, tol float64) error {
	ga, gb, gg, err := toGonum3(a, b, got)
	if err != nil {
		return convertErrorf("CheckProduct", err)
	}
	ar, ac := ga.Dims()
	br, bc := gb.Dims()
	if gr, gcol := gg.Dims(); ac != br || gr != ar || gcol != bc {
		return convertErrorf("CheckProduct", matrix.ErrDimensionMismatch)
	}

	var want mat.Dense
	want.Mul(ga, gb)
	if !mat.EqualApprox(&want, gg, tol) {
		return convertErrorf("CheckProduct", fmt.Errorf("want\n%v\n: %w", mat.Formatted(&want), ErrMismatch))
	}

	return nil
}

// CheckInverse verifies inv ≈ a⁻¹. A gonum error (singular or
// ill-conditioned a) is returned wrapped.
func CheckInverse(a, inv matrix.Matrix, tol float64) error {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return convertErrorf("CheckInverse", err)
	}
	ga, gi, _, err := toGonum3(a, inv, inv)
	if err != nil {
		return convertErrorf("CheckInverse", err)
	}

	var want mat.Dense
	if err = want.Inverse(ga); err != nil {
		return convertErrorf("CheckInverse", err)
	}
	if !mat.EqualApprox(&want, gi, tol) {
		return convertErrorf("CheckInverse", fmt.Errorf("want\n%v\n: %w", mat.Formatted(&want), ErrMismatch))
	}

	return nil
}

// CheckDeterminant verifies |det - det(a)| <= tol·max(1, |det(a)|).
func CheckDeterminant(a matrix.Matrix, det, tol float64) error {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return convertErrorf("CheckDeterminant", err)
	}
	ga, err := ToGonum(a)
	if err != nil {
		return convertErrorf("CheckDeterminant", err)
	}

	want := mat.Det(ga)
	if math.Abs(det-want) > tol*math.Max(1, math.Abs(want)) {
		return convertErrorf("CheckDeterminant", fmt.Errorf("got %g, want %g: %w", det, want, ErrMismatch))
	}

	return nil
}

// CheckSolution verifies that values (variable index → value) solve
// coeffs·x = constants as gonum's least-squares solver does. Each unknown
// must agree within tol absolutely or relatively, as in mat.EqualApprox.
func CheckSolution(coeffs, constants matrix.Matrix, values map[int]float64, tol float64) error {
	gc, gb, _, err := toGonum3(coeffs, constants, constants)
	if err != nil {
		return convertErrorf("CheckSolution", err)
	}

	var want mat.Dense
	if err = want.Solve(gc, gb); err != nil {
		return convertErrorf("CheckSolution", err)
	}
	n, _ := want.Dims()
	if len(values) != n {
		return convertErrorf("CheckSolution", fmt.Errorf("%d values for %d unknowns: %w", len(values), n, matrix.ErrDimensionMismatch))
	}
	for i := 0; i < n; i++ {
		got, ok := values[i]
		if !ok || !floats.EqualWithinAbsOrRel(got, want.At(i, 0), tol, tol) {
			return convertErrorf("CheckSolution", fmt.Errorf("x%d: got %g, want %g: %w", i+1, got, want.At(i, 0), ErrMismatch))
		}
	}

	return nil
}

func toGonum3(a, b, c matrix.Matrix) (ga, gb, gc *mat.Dense, err error) {
	if ga, err = ToGonum(a); err != nil {
		return nil, nil, nil, err
	}
	if gb, err = ToGonum(b); err != nil {
		return nil, nil, nil, err
	}
	if gc, err = ToGonum(c); err != nil {
		return nil, nil, nil, err
	}

	return ga, gb, gc, nil
}
