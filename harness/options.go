package harness

import (
	"io"

	"github.com/datatrails/go-datatrails-common/logger"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 2

type Options struct {
	// Writer receives the report. Defaults to os.Stdout.
	Writer io.Writer
	// Log, when set, additionally receives test starts at debug level and
	// failures at info level.
	Log    logger.Logger
	Indent int
}

// Option is a generic option type. Implementations type assert to their
// Options target and ignore targets they do not recognise.
type Option func(any)

func WithWriter(w io.Writer) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Writer = w
		}
	}
}

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Log = log
		}
	}
}

// WithIndent sets the spaces per nesting level. Negative values are ignored.
func WithIndent(n int) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok && n >= 0 {
			o.Indent = n
		}
	}
}
