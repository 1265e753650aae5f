// SPDX-License-Identifier: MIT

package trace

import (
	"iter"

	"github.com/katalvlaran/algeo/matrix"
)

// Step records one transformation. Before and After are private snapshots;
// either may be nil for purely descriptive steps.
type Step struct {
	Before      *matrix.Dense
	Description string
	After       *matrix.Dense
}

// Trace is the ordered, read-only sequence of steps produced by one call.
type Trace []Step

// Len returns the number of recorded steps.
func (t Trace) Len() int { return len(t) }

// Last returns the final step, or false when the trace is empty.
func (t Trace) Last() (Step, bool) {
	if len(t) == 0 {
		return Step{}, false
	}

	return t[len(t)-1], true
}

// All yields (index, step) pairs in execution order. The sequence is
// restartable: every range over it starts from the first step.
func (t Trace) All() iter.Seq2[int, Step] {
	return func(yield func(int, Step) bool) {
		for i, s := range t {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Descriptions returns the step descriptions in order.
func (t Trace) Descriptions() []string {
	out := make([]string, len(t))
	for i, s := range t {
		out[i] = s.Description
	}

	return out
}
