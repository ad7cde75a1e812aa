package seq

type Options struct {
	// MinimumCapacity is the floor applied whenever the buffer grows.
	MinimumCapacity int
}

// Option is a generic option type. Implementations type assert to their
// Options target and ignore targets they do not recognise.
type Option func(any)

// WithMinimumCapacity sets the floor used when the buffer grows. Values
// below 1 are ignored.
func WithMinimumCapacity(n int) Option {
	return func(opts any) {
		o, ok := opts.(*Options)
		if !ok || n < 1 {
			return
		}
		o.MinimumCapacity = n
	}
}

func NewOptions(opts ...Option) Options {
	o := Options{MinimumCapacity: MinimumCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
