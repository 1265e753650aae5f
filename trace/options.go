// SPDX-License-Identifier: MIT

package trace

const (
	// DefaultPrecision is the number of decimals used for numbers in step
	// descriptions ("R1 = R1 / 2.00").
	DefaultPrecision = 2

	// MaxPrecision bounds WithPrecision; float64 carries ~15-17 significant digits.
	MaxPrecision = 15

	// DefaultRecord keeps steps unless WithoutSteps is given.
	DefaultRecord = true
)

const panicPrecisionInvalid = "trace: WithPrecision: precision must be in [0, MaxPrecision]"

// Option configures a Recorder. Algorithm entry points accept ...Option and
// forward them unchanged to nested computations.
type Option func(*Options)

// Options holds the resolved recorder configuration.
type Options struct {
	precision int
	record    bool
	onStep    func(Step)
}

// WithPrecision sets the decimals used when numbers appear in descriptions.
// Panics when p is outside [0, MaxPrecision].
func WithPrecision(p int) Option {
	if p < 0 || p > MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithoutSteps disables retention of steps. Results are unaffected.
func WithoutSteps() Option {
	return func(o *Options) { o.record = false }
}

// WithOnStep registers a callback invoked for every step as it is recorded,
// including when retention is disabled. A nil fn is ignored.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onStep = fn
		}
	}
}

// NewOptions resolves opts on top of the documented defaults.
func NewOptions(opts ...Option) Options {
	o := Options{
		precision: DefaultPrecision,
		record:    DefaultRecord,
	}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// Precision reports the resolved number of decimals.
func (o Options) Precision() int { return o.precision }

// Record reports whether steps are retained.
func (o Options) Record() bool { return o.record }
