// SPDX-License-Identifier: MIT
package trace_test

import (
	"testing"

	"github.com/katalvlaran/algeo/matrix"
	"github.com/katalvlaran/algeo/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestRecorder_SnapshotsAreIndependent(t *testing.T) {
	work := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	rec := trace.NewRecorder()

	before := work.Clone()
	require.NoError(t, work.SwapRows(0, 1))
	rec.Record(before, "Swap R1 <-> R2", work)

	// later mutation must not leak into the recorded step
	require.NoError(t, work.MultiplyRow(0, 100))

	tr := rec.Trace()
	require.Equal(t, 1, tr.Len())
	last, ok := tr.Last()
	require.True(t, ok)
	got, err := matrix.ToRows(last.After)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 4}, {1, 2}}, got)
	got, err = matrix.ToRows(last.Before)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, got)
}

func TestRecorder_NilSnapshotsAndEmptyTrace(t *testing.T) {
	rec := trace.NewRecorder()
	tr := rec.Trace()
	require.NotNil(t, tr)
	_, ok := tr.Last()
	require.False(t, ok)

	rec.Record(nil, "note", nil)
	var typedNil *matrix.Dense
	rec.Record(typedNil, "typed nil", nil)
	tr = rec.Trace()
	require.Equal(t, []string{"note", "typed nil"}, tr.Descriptions())
	require.Nil(t, tr[0].Before)
	require.Nil(t, tr[1].Before)
}

func TestTrace_AllIsRestartable(t *testing.T) {
	rec := trace.NewRecorder()
	for _, d := range []string{"a", "b", "c"} {
		rec.Record(nil, d, nil)
	}
	tr := rec.Trace()

	collect := func() []string {
		var out []string
		for i, s := range tr.All() {
			out = append(out, s.Description)
			if i == 1 {
				break
			}
		}
		return out
	}
	require.Equal(t, []string{"a", "b"}, collect())
	require.Equal(t, []string{"a", "b"}, collect())
}

func TestOptions(t *testing.T) {
	o := trace.NewOptions()
	require.Equal(t, trace.DefaultPrecision, o.Precision())
	require.True(t, o.Record())

	rec := trace.NewRecorder(trace.WithPrecision(3))
	require.Equal(t, "1.500", rec.Num(1.5))
	require.Equal(t, "-0.333", rec.Num(-1.0/3))
	require.Equal(t, "2.00", trace.NewRecorder().Num(2))

	require.Panics(t, func() { trace.WithPrecision(-1) })
	require.Panics(t, func() { trace.WithPrecision(trace.MaxPrecision + 1) })
}

func TestWithoutSteps_HookStillFires(t *testing.T) {
	var seen []string
	rec := trace.NewRecorder(
		trace.WithoutSteps(),
		trace.WithOnStep(func(s trace.Step) { seen = append(seen, s.Description) }),
	)
	rec.Record(mustRows(t, [][]float64{{1}}), "one", nil)
	rec.Append(trace.Step{Description: "two"})

	require.Equal(t, 0, rec.Trace().Len())
	require.Equal(t, []string{"one", "two"}, seen)
}

func TestRecorder_Extend(t *testing.T) {
	inner := trace.NewRecorder()
	inner.Record(nil, "x", nil)
	inner.Record(nil, "y", nil)

	outer := trace.NewRecorder()
	outer.Record(nil, "start", nil)
	outer.Extend(inner.Trace())
	require.Equal(t, []string{"start", "x", "y"}, outer.Trace().Descriptions())
}

func TestStep_YAML(t *testing.T) {
	rec := trace.NewRecorder()
	rec.Record(mustRows(t, [][]float64{{4, 3}, {6, 3}}), "Swap R1 <-> R2", mustRows(t, [][]float64{{6, 3}, {4, 3}}))
	rec.Record(nil, "Begin determinant calculation.", nil)

	out, err := yaml.Marshal(rec.Trace())
	require.NoError(t, err)
	text := string(out)
	require.Contains(t, text, "description: Swap R1 <-> R2")
	require.Contains(t, text, "before: [[4, 3], [6, 3]]")
	require.Contains(t, text, "after: [[6, 3], [4, 3]]")
	require.Contains(t, text, "description: Begin determinant calculation.")
	require.NotContains(t, text, "before: []")

	var back trace.Trace
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Equal(t, 2, back.Len())
	got, err := matrix.ToRows(back[0].After)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 3}, {4, 3}}, got)
	require.Nil(t, back[1].Before)
}

func TestRecorder_DetachedAndNil(t *testing.T) {
	var hooked int
	parent := trace.NewRecorder(
		trace.WithPrecision(1),
		trace.WithoutSteps(),
		trace.WithOnStep(func(trace.Step) { hooked++ }),
	)
	child := parent.Detached()
	child.Record(nil, "aux", nil)
	child.Record(nil, "final", nil)
	require.Equal(t, 0, hooked)
	require.Equal(t, []string{"final"}, child.Trace().Descriptions())
	require.Equal(t, "0.5", child.Num(0.5))

	quiet := trace.NewRecorder(trace.WithPrecision(3), trace.WithoutSteps()).Detached()
	quiet.Record(nil, "aux", nil)
	require.Equal(t, 0, quiet.Trace().Len())
	require.False(t, quiet.Options().Record())
	require.Equal(t, "0.500", quiet.Num(0.5))

	var none *trace.Recorder
	none.Record(nil, "ignored", nil)
	require.Equal(t, 0, none.Trace().Len())
	require.False(t, none.Options().Record())
	require.Equal(t, "1.00", none.Num(1))
	require.Equal(t, trace.DefaultPrecision, none.Detached().Options().Precision())
}
