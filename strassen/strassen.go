package strassen

import (
	"fmt"

	"github.com/katalvlaran/algeo/matrix"
)

const (
	opMultiply   = "Multiply"
	opBruteForce = "BruteForce"
)

func strassenErrorf(op string, err error) error {
	return fmt.Errorf("strassen: %s: %w", op, err)
}

// BruteForce returns a·b with the classical O(r·n·c) loop.
func BruteForce(a, b matrix.Matrix) (*matrix.Dense, error) {
	res, err := matrix.Mul(a, b)
	if err != nil {
		return nil, strassenErrorf(opBruteForce, err)
	}

	return res, nil
}

// Multiply returns a·b computed with Strassen's algorithm.
// Inputs are never modified.
func Multiply(a, b matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}
	o := NewOptions(opts...)

	size := nextPowerOfTwo(max(a.Rows(), a.Cols(), b.Rows(), b.Cols()))
	pa, err := pad(a, size)
	if err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}
	pb, err := pad(b, size)
	if err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}

	ar := &arith{leaf: o.leafSize}
	pc := ar.mul(pa, pb)
	if ar.err != nil {
		return nil, strassenErrorf(opMultiply, ar.err)
	}

	res, err := matrix.SubMatrix(pc, 0, a.Rows(), 0, b.Cols())
	if err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}

	return res, nil
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// pad copies m into the top-left corner of a size×size zero matrix.
func pad(m matrix.Matrix, size int) (*matrix.Dense, error) {
	out, err := matrix.NewZeros(size, size)
	if err != nil {
		return nil, err
	}
	if err = out.Place(m, 0, 0); err != nil {
		return nil, err
	}

	return out, nil
}

// arith chains block arithmetic and keeps the first error; once err is set
// every method returns nil.
type arith struct {
	leaf int
	err  error
}

func (ar *arith) add(x, y *matrix.Dense) *matrix.Dense {
	if ar.err != nil {
		return nil
	}
	var r *matrix.Dense
	r, ar.err = matrix.Add(x, y)

	return r
}

func (ar *arith) sub(x, y *matrix.Dense) *matrix.Dense {
	if ar.err != nil {
		return nil
	}
	var r *matrix.Dense
	r, ar.err = matrix.Sub(x, y)

	return r
}

func (ar *arith) block(m *matrix.Dense, r0, c0, half int) *matrix.Dense {
	if ar.err != nil {
		return nil
	}
	var r *matrix.Dense
	r, ar.err = matrix.SubMatrix(m, r0, r0+half, c0, c0+half)

	return r
}

// mul multiplies two n×n blocks, n a power of two.
func (ar *arith) mul(a, b *matrix.Dense) *matrix.Dense {
	if ar.err != nil {
		return nil
	}
	n := a.Rows()
	if n <= ar.leaf {
		var r *matrix.Dense
		r, ar.err = matrix.Mul(a, b)

		return r
	}

	half := n / 2
	a11, a12 := ar.block(a, 0, 0, half), ar.block(a, 0, half, half)
	a21, a22 := ar.block(a, half, 0, half), ar.block(a, half, half, half)
	b11, b12 := ar.block(b, 0, 0, half), ar.block(b, 0, half, half)
	b21, b22 := ar.block(b, half, 0, half), ar.block(b, half, half, half)

	p1 := ar.mul(a11, ar.sub(b12, b22))
	p2 := ar.mul(ar.add(a11, a12), b22)
	p3 := ar.mul(ar.add(a21, a22), b11)
	p4 := ar.mul(a22, ar.sub(b21, b11))
	p5 := ar.mul(ar.add(a11, a22), ar.add(b11, b22))
	p6 := ar.mul(ar.sub(a12, a22), ar.add(b21, b22))
	p7 := ar.mul(ar.sub(a11, a21), ar.add(b11, b12))

	c11 := ar.add(ar.sub(ar.add(p5, p4), p2), p6)
	c12 := ar.add(p1, p2)
	c21 := ar.add(p3, p4)
	c22 := ar.sub(ar.sub(ar.add(p5, p1), p3), p7)
	if ar.err != nil {
		return nil
	}

	out, err := matrix.NewZeros(n, n)
	if err != nil {
		ar.err = err
		return nil
	}
	for _, q := range []struct {
		m      *matrix.Dense
		r0, c0 int
	}{{c11, 0, 0}, {c12, 0, half}, {c21, half, 0}, {c22, half, half}} {
		if ar.err = out.Place(q.m, q.r0, q.c0); ar.err != nil {
			return nil
		}
	}

	return out
}
