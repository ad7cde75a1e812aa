package hashmap

import "github.com/datatrails/go-datatrails-common/logger"

type Options struct {
	// Log receives a debug line for every resize. Nil is silent.
	Log logger.Logger
}

// Option is a generic option type. Implementations type assert to their
// Options target and ignore targets they do not recognise.
type Option func(any)

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Log = log
		}
	}
}

func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
