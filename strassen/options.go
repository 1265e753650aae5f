package strassen

// DefaultLeafSize recurses down to 1×1 blocks.
const DefaultLeafSize = 1

const panicLeafSizeInvalid = "strassen: WithLeafSize: size must be >= 1"

// Option configures Multiply.
type Option func(*Options)

// Options holds the resolved Multiply configuration.
type Options struct {
	leafSize int
}

// WithLeafSize switches to the triple loop once blocks are n×n or smaller.
// Panics when n < 1.
func WithLeafSize(n int) Option {
	if n < 1 {
		panic(panicLeafSizeInvalid)
	}

	return func(o *Options) { o.leafSize = n }
}

// NewOptions resolves opts on top of the defaults. Nil options are skipped.
func NewOptions(opts ...Option) Options {
	o := Options{leafSize: DefaultLeafSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// LeafSize returns the configured leaf size.
func (o Options) LeafSize() int { return o.leafSize }
