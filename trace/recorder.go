// SPDX-License-Identifier: MIT

package trace

import (
	"strconv"

	"github.com/katalvlaran/algeo/matrix"
)

// Recorder accumulates the steps of a single algorithm call.
// It is created inside the call and never shared between calls.
type Recorder struct {
	opts     Options
	steps    Trace
	lastOnly bool
}

// NewRecorder returns an empty recorder configured by opts.
func NewRecorder(opts ...Option) *Recorder {
	return &Recorder{opts: NewOptions(opts...)}
}

// Detached returns a new recorder with the same precision that reports to no
// hook and retains only the most recent step. Algorithms use it for auxiliary
// computations whose final step is appended to r. When r is inactive (nil, or
// no retention and no hook) the detached recorder is inactive too.
func (r *Recorder) Detached() *Recorder {
	if !r.active() {
		return &Recorder{opts: Options{precision: r.Options().precision}}
	}

	return &Recorder{opts: Options{precision: r.opts.precision, record: true}, lastOnly: true}
}

// Options returns the resolved configuration. A nil recorder reports the
// defaults with retention disabled.
func (r *Recorder) Options() Options {
	if r == nil {
		return NewOptions(WithoutSteps())
	}

	return r.opts
}

// active reports whether anybody consumes recorded steps.
// A nil recorder is valid and inactive.
func (r *Recorder) active() bool {
	return r != nil && (r.opts.record || r.opts.onStep != nil)
}

// Record appends a step with deep snapshots of before and after.
// Nil matrices are stored as nil. When the recorder is inactive no copy is made.
func (r *Recorder) Record(before matrix.Matrix, description string, after matrix.Matrix) {
	if !r.active() {
		return
	}
	s := Step{
		Before:      snapshot(before),
		Description: description,
		After:       snapshot(after),
	}
	r.emit(s)
}

// Capture returns a private copy of m for use as the "before" snapshot of a
// step that is about to mutate m in place. It returns nil when the recorder
// is inactive, so callers pay nothing for disabled traces.
func (r *Recorder) Capture(m matrix.Matrix) *matrix.Dense {
	if !r.active() {
		return nil
	}

	return snapshot(m)
}

// Commit records a step whose before snapshot was taken with Capture.
// The snapshot is adopted without another copy; after is copied.
func (r *Recorder) Commit(before *matrix.Dense, description string, after matrix.Matrix) {
	if !r.active() {
		return
	}
	r.emit(Step{Before: before, Description: description, After: snapshot(after)})
}

// Append adds an already built step (e.g. the final step of a nested trace).
// Snapshots inside s are reused as-is; they are private to the trace they came from.
func (r *Recorder) Append(s Step) {
	if !r.active() {
		return
	}
	r.emit(s)
}

// Extend appends every step of t in order.
func (r *Recorder) Extend(t Trace) {
	for _, s := range t {
		r.Append(s)
	}
}

func (r *Recorder) emit(s Step) {
	if r.opts.onStep != nil {
		r.opts.onStep(s)
	}
	switch {
	case r.lastOnly:
		r.steps = append(r.steps[:0], s)
	case r.opts.record:
		r.steps = append(r.steps, s)
	}
}

// Num formats v with the configured precision, matching "%.{p}f".
func (r *Recorder) Num(v float64) string {
	precision := DefaultPrecision
	if r != nil {
		precision = r.opts.precision
	}

	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Trace returns the recorded steps. The recorder must not be used afterwards.
func (r *Recorder) Trace() Trace {
	if r == nil || r.steps == nil {
		return Trace{}
	}

	return r.steps
}

// snapshot deep-copies m into an owned *Dense, or returns nil.
func snapshot(m matrix.Matrix) *matrix.Dense {
	if m == nil {
		return nil
	}
	d, err := matrix.ToDense(m)
	if err != nil {
		// only a typed-nil matrix fails here
		return nil
	}

	return d
}
