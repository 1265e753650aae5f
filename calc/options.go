package calc

import (
	"github.com/katalvlaran/algeo/strassen"
	"github.com/katalvlaran/algeo/trace"
)

const (
	// DefaultWorkers bounds EvaluateAll concurrency.
	DefaultWorkers = 4

	// DefaultPrecision is used for step descriptions and rendered grids.
	DefaultPrecision = trace.DefaultPrecision

	// DefaultSteps keeps traces in responses.
	DefaultSteps = true
)

const (
	panicPrecisionInvalid = "calc: WithPrecision: precision must be in [0, trace.MaxPrecision]"
	panicWorkersInvalid   = "calc: WithWorkers: workers must be >= 1"
	panicLeafSizeInvalid  = "calc: WithLeafSize: size must be >= 1"
)

// Option configures Evaluate, Submit and EvaluateAll.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	precision int
	steps     bool
	workers   int
	leafSize  int
}

// WithPrecision sets the decimals for step descriptions, parametric
// expressions and rendered numbers. Panics outside [0, trace.MaxPrecision].
func WithPrecision(p int) Option {
	if p < 0 || p > trace.MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithoutSteps drops traces from responses.
func WithoutSteps() Option {
	return func(o *Options) { o.steps = false }
}

// WithWorkers bounds how many requests EvaluateAll runs at once. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLeafSize forwards strassen.WithLeafSize to Strassen requests. Panics when n < 1.
func WithLeafSize(n int) Option {
	if n < 1 {
		panic(panicLeafSizeInvalid)
	}

	return func(o *Options) { o.leafSize = n }
}

// NewOptions resolves opts on top of the defaults. Nil options are skipped.
func NewOptions(opts ...Option) Options {
	o := Options{
		precision: DefaultPrecision,
		steps:     DefaultSteps,
		workers:   DefaultWorkers,
		leafSize:  strassen.DefaultLeafSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Precision returns the configured precision.
func (o Options) Precision() int { return o.precision }

// Steps reports whether traces are kept.
func (o Options) Steps() bool { return o.steps }

// Workers returns the EvaluateAll concurrency bound.
func (o Options) Workers() int { return o.workers }

func (o Options) traceOptions() []trace.Option {
	topts := []trace.Option{trace.WithPrecision(o.precision)}
	if !o.steps {
		topts = append(topts, trace.WithoutSteps())
	}

	return topts
}
