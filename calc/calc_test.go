package calc_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algeo/calc"
	"github.com/katalvlaran/algeo/converters"
	"github.com/katalvlaran/algeo/linsys"
	"github.com/katalvlaran/algeo/matrix"
)

func rowsOf(t require.TestingT, m matrix.Matrix) [][]float64 {
	out, err := matrix.ToRows(m)
	require.NoError(t, err)

	return out
}

func TestParseOperation(t *testing.T) {
	for _, op := range calc.Operations() {
		got, err := calc.ParseOperation(op.String())
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}

	cases := map[string]calc.Operation{
		"ADD":           calc.Addition,
		" det ":         calc.Determinant,
		"Gauss_Jordan":  calc.GaussJordan,
		"gauss jordan":  calc.GaussJordan,
		"rref":          calc.GaussJordan,
		"SOLVE_SPL":     calc.SolveSystem,
		"brute-force":   calc.Multiplication,
		"strassen":      calc.StrassenMultiplication,
		"Solve-System":  calc.SolveSystem,
		"subtraction":   calc.Subtraction,
		"inv":           calc.Inverse,
		"multiply":      calc.Multiplication,
		"sum":           calc.Addition,
		"difference":    calc.Subtraction,
		"Determinant  ": calc.Determinant,
	}
	for in, want := range cases {
		got, err := calc.ParseOperation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := calc.ParseOperation("transpose")
	require.ErrorIs(t, err, calc.ErrUnknownOperation)
	assert.Equal(t, "Operation(42)", calc.Operation(42).String())
	assert.True(t, calc.StrassenMultiplication.Binary())
	assert.False(t, calc.Inverse.Binary())
}

func TestParseGrid(t *testing.T) {
	m, err := calc.ParseGrid([][]string{{"1", " 2 ", ""}, {"x", "-3.5", "4e0"}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 0}, {0, -3.5, 4}}, rowsOf(t, m))

	_, err = calc.ParseGrid([][]string{{"1", "2"}, {"3"}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = calc.ParseGrid(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = calc.ParseGrid([][]string{{"NaN"}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	for _, overflow := range []string{"1e400", "-1e400"} {
		_, err = calc.ParseGrid([][]string{{"1", overflow}})
		require.ErrorIs(t, err, matrix.ErrNaNInf, overflow)
	}

	m, err = calc.ParseGrid([][]string{{"1e-400"}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}}, rowsOf(t, m))
}

// EvaluateSuite runs one request per operation.
type EvaluateSuite struct {
	suite.Suite
	a, b [][]string
}

func (s *EvaluateSuite) SetupTest() {
	s.a = [][]string{{"4", "3"}, {"6", "3"}}
	s.b = [][]string{{"1", "0"}, {"0", "1"}}
}

func (s *EvaluateSuite) eval(op calc.Operation, opts ...calc.Option) calc.Response {
	resp, err := calc.Evaluate(calc.Request{Name: op.String(), Op: op, A: s.a, B: s.b}, opts...)
	require.NoError(s.T(), err)
	require.Equal(s.T(), op, resp.Op)

	return resp
}

func (s *EvaluateSuite) TestBinaryOperations() {
	require.Equal(s.T(), [][]float64{{5, 3}, {6, 4}}, rowsOf(s.T(), s.eval(calc.Addition).Matrix))
	require.Equal(s.T(), [][]float64{{3, 3}, {6, 2}}, rowsOf(s.T(), s.eval(calc.Subtraction).Matrix))
	require.Equal(s.T(), [][]float64{{4, 3}, {6, 3}}, rowsOf(s.T(), s.eval(calc.Multiplication).Matrix))
	require.Equal(s.T(), [][]float64{{4, 3}, {6, 3}}, rowsOf(s.T(), s.eval(calc.StrassenMultiplication, calc.WithLeafSize(2)).Matrix))
}

func (s *EvaluateSuite) TestDeterminant() {
	resp := s.eval(calc.Determinant)
	require.NotNil(s.T(), resp.Scalar)
	require.Equal(s.T(), -6.0, *resp.Scalar)
	require.Equal(s.T(), 4, resp.Trace.Len())
	require.Nil(s.T(), resp.Matrix)

	resp = s.eval(calc.Determinant, calc.WithoutSteps())
	require.Zero(s.T(), resp.Trace.Len())
}

func (s *EvaluateSuite) TestInverseAndGaussJordan() {
	inv := s.eval(calc.Inverse)
	want, err := matrix.FromRows([][]float64{{-0.5, 0.5}, {1, -2.0 / 3}})
	require.NoError(s.T(), err)
	ok, err := matrix.AllClose(inv.Matrix, want, 0, 1e-12)
	require.NoError(s.T(), err)
	require.True(s.T(), ok, "%v", inv.Matrix)

	gj := s.eval(calc.GaussJordan)
	require.Equal(s.T(), [][]float64{{1, 0}, {0, 1}}, rowsOf(s.T(), gj.Matrix))
}

func (s *EvaluateSuite) TestSolve() {
	s.a = [][]string{{"1", "1", "3"}, {"2", "-1", "0"}}
	resp := s.eval(calc.SolveSystem)
	require.Equal(s.T(), linsys.Unique{Values: map[int]float64{0: 1, 1: 2}}, resp.Solution)
}

func (s *EvaluateSuite) TestErrors() {
	_, err := calc.Evaluate(calc.Request{Op: calc.Addition, A: s.a})
	require.ErrorIs(s.T(), err, calc.ErrMissingOperand)
	require.Equal(s.T(), "calc: Evaluate addition: operation needs a second matrix", err.Error())

	_, err = calc.Evaluate(calc.Request{Op: calc.Operation(99), A: s.a})
	require.ErrorIs(s.T(), err, calc.ErrUnknownOperation)

	_, err = calc.Evaluate(calc.Request{A: s.a})
	require.ErrorIs(s.T(), err, calc.ErrUnknownOperation, "missing op")

	_, err = calc.Evaluate(calc.Request{Op: calc.Addition, A: s.a, B: [][]string{{"1"}}})
	require.ErrorIs(s.T(), err, matrix.ErrDimensionMismatch)

	_, err = calc.Evaluate(calc.Request{Op: calc.Inverse, A: [][]string{{"1", "2"}, {"2", "4"}}})
	require.Error(s.T(), err)
	require.Contains(s.T(), err.Error(), "calc: Evaluate inverse")
	require.Equal(s.T(), 1, strings.Count(err.Error(), "determinant:"))
}

func TestEvaluateSuite(t *testing.T) {
	suite.Run(t, new(EvaluateSuite))
}

func TestRender(t *testing.T) {
	resp, err := calc.Evaluate(calc.Request{Name: "det", Op: calc.Determinant, A: [][]string{{"4", "3"}, {"6", "3"}}})
	require.NoError(t, err)
	out := resp.Render()
	assert.True(t, strings.HasPrefix(out, "== det (determinant) ==\nResult: -6.00\nSteps:\n  1. Begin determinant calculation.\n"), out)
	assert.Contains(t, out, "       [4.00, 3.00]\n")
	assert.Contains(t, out, "  4. Determinant = Product of diagonals * (-1)^swaps\n     Determinant = 6.00 * (-1)^1 = -6.00\n")

	resp, err = calc.Evaluate(calc.Request{Op: calc.SolveSystem, A: [][]string{{"1", "1", "3"}, {"2", "-1", "0"}}}, calc.WithoutSteps())
	require.NoError(t, err)
	assert.Equal(t, "== solve ==\nSolution (unique):\n  x1 = 1\n  x2 = 2\n", resp.Render())

	resp, err = calc.Evaluate(calc.Request{Op: calc.Addition, A: [][]string{{"1.5"}}, B: [][]string{{"1"}}}, calc.WithPrecision(1))
	require.NoError(t, err)
	assert.Equal(t, "== addition ==\nResult:\n  [2.5]\n", resp.Render())
}

func TestFormatGrid(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, -0.5}, {0, 2}})
	require.NoError(t, err)
	assert.Equal(t, "[1.00, -0.50]\n[0.00, 2.00]", calc.FormatGrid(m, 2))
}

func TestSubmit(t *testing.T) {
	req := calc.Request{Op: calc.Determinant, A: [][]string{{"2"}}}

	oc, ok := <-calc.Submit(context.Background(), req)
	require.True(t, ok)
	require.NoError(t, oc.Err)
	require.Equal(t, 2.0, *oc.Response.Scalar)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok = <-calc.Submit(ctx, req)
	require.False(t, ok, "outcome must be dropped after cancellation")
}

func TestEvaluateAll(t *testing.T) {
	reqs := []calc.Request{
		{Name: "ok", Op: calc.Determinant, A: [][]string{{"4", "3"}, {"6", "3"}}},
		{Name: "bad", Op: calc.Inverse, A: [][]string{{"1", "2"}}},
		{Name: "sys", Op: calc.SolveSystem, A: [][]string{{"0", "0", "5"}}},
	}

	out, err := calc.EvaluateAll(context.Background(), reqs, calc.WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i, oc := range out {
		require.Equal(t, i, oc.Index)
		require.Equal(t, reqs[i].Name, oc.Request.Name)
	}
	require.NoError(t, out[0].Err)
	require.Equal(t, -6.0, *out[0].Response.Scalar)
	require.ErrorIs(t, out[1].Err, matrix.ErrNonSquare)
	require.Equal(t, linsys.NoSolution{}, out[2].Response.Solution)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err = calc.EvaluateAll(ctx, reqs)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, out, 3)
}

func TestOptions(t *testing.T) {
	o := calc.NewOptions()
	assert.Equal(t, calc.DefaultPrecision, o.Precision())
	assert.Equal(t, calc.DefaultWorkers, o.Workers())
	assert.True(t, o.Steps())

	o = calc.NewOptions(nil, calc.WithPrecision(4), calc.WithWorkers(1), calc.WithoutSteps())
	assert.Equal(t, 4, o.Precision())
	assert.Equal(t, 1, o.Workers())
	assert.False(t, o.Steps())

	assert.Panics(t, func() { calc.WithPrecision(-1) })
	assert.Panics(t, func() { calc.WithWorkers(0) })
	assert.Panics(t, func() { calc.WithLeafSize(0) })
}

const problems = `
problems:
  - name: system
    op: solve_spl
    a: [[1, 1, 1, 1], [2, 2, 2, 2]]
  - op: strassen
    a: [[1, 2], [3, 4]]
    b: [[5, 6], [7, 8]]
  - name: broken
    op: inverse
    a: [[1, 2]]
`

func TestDecodeEncode(t *testing.T) {
	reqs, err := calc.DecodeRequests(strings.NewReader(problems))
	require.NoError(t, err)
	require.Len(t, reqs, 3)
	assert.Equal(t, calc.SolveSystem, reqs[0].Op)
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, reqs[1].A)

	out, err := calc.EvaluateAll(context.Background(), reqs, calc.WithoutSteps())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, calc.EncodeOutcomes(&buf, out))

	var back struct {
		Results []struct {
			Name     string      `yaml:"name"`
			Op       string      `yaml:"op"`
			Matrix   [][]float64 `yaml:"matrix"`
			Error    string      `yaml:"error"`
			Solution struct {
				Kind        string            `yaml:"kind"`
				Expressions map[string]string `yaml:"expressions"`
				Parameters  []string          `yaml:"parameters"`
			} `yaml:"solution"`
		} `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back), buf.String())
	require.Len(t, back.Results, 3)

	assert.Equal(t, "solve", back.Results[0].Op)
	assert.Equal(t, "parametric", back.Results[0].Solution.Kind)
	assert.Equal(t, "1.00 - 1.00a - 1.00b", back.Results[0].Solution.Expressions["x1"])
	assert.Equal(t, []string{"a", "b"}, back.Results[0].Solution.Parameters)
	assert.Equal(t, [][]float64{{19, 22}, {43, 50}}, back.Results[1].Matrix)
	assert.Contains(t, back.Results[2].Error, matrix.ErrNonSquare.Error())
}

func TestDecodeRequests_Errors(t *testing.T) {
	_, err := calc.DecodeRequests(strings.NewReader(""))
	require.ErrorIs(t, err, calc.ErrNoProblems)

	_, err = calc.DecodeRequests(strings.NewReader("problems: []\n"))
	require.ErrorIs(t, err, calc.ErrNoProblems)

	_, err = calc.DecodeRequests(strings.NewReader("problems:\n  - op: cube\n    a: [[1]]\n"))
	require.ErrorIs(t, err, calc.ErrUnknownOperation)
}

func TestVerify(t *testing.T) {
	reqs := []calc.Request{
		{Op: calc.Addition, A: [][]string{{"1", "2"}}, B: [][]string{{"3", "4"}}},
		{Op: calc.Subtraction, A: [][]string{{"1", "2"}}, B: [][]string{{"3", "4"}}},
		{Op: calc.Multiplication, A: [][]string{{"1", "2"}}, B: [][]string{{"3"}, {"4"}}},
		{Op: calc.StrassenMultiplication, A: [][]string{{"1", "2", "3"}}, B: [][]string{{"3"}, {"4"}, {"5"}}},
		{Op: calc.Determinant, A: [][]string{{"2", "1"}, {"1", "3"}}},
		{Op: calc.Inverse, A: [][]string{{"2", "1"}, {"1", "3"}}},
		{Op: calc.GaussJordan, A: [][]string{{"2", "1"}, {"1", "3"}}},
		{Op: calc.SolveSystem, A: [][]string{{"2", "1", "3"}, {"1", "3", "5"}}},
		{Op: calc.SolveSystem, A: [][]string{{"0", "0", "5"}}},
	}
	for _, req := range reqs {
		resp, err := calc.Evaluate(req)
		require.NoError(t, err, req.Op.String())
		require.NoError(t, calc.Verify(req, resp, calc.DefaultTolerance), req.Op.String())
	}

	large := calc.Request{Op: calc.SolveSystem, A: [][]string{{"3", "1", "1000000001"}, {"1", "7", "3000000007"}}}
	resp, err := calc.Evaluate(large)
	require.NoError(t, err)
	require.Equal(t, linsys.KindUnique, resp.Solution.Kind())
	require.NoError(t, calc.Verify(large, resp, calc.DefaultTolerance))

	req := reqs[4]
	resp, err = calc.Evaluate(req)
	require.NoError(t, err)
	wrong := *resp.Scalar + 1
	resp.Scalar = &wrong
	require.ErrorIs(t, calc.Verify(req, resp, calc.DefaultTolerance), converters.ErrMismatch)
}
