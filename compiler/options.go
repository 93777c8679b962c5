package compiler

import (
	"context"

	"github.com/openhours/ohgo/dialect"
)

// Logger receives non-fatal parse warnings ("logging
// collaborator"). The zero value is a no-op logger.
type Logger interface {
	Warnf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Warnf(string, ...any) {}

// Options configures ParseWithOptions, mirroring decoder.DecodeOptions's
// plain-struct-with-defaults shape.
type Options struct {
	// Context defaults to context.Background(). Compiling does not
	// consult it, so a compile cannot be cancelled.
	Context context.Context

	// Profile names a grammar-strictness profile. Defaults to
	// dialect.Lenient. The parser does not consult it: an expression is
	// parsed by the same rules under either profile.
	Profile dialect.Profile

	// Logger receives warnings for lenient-mode recoveries. Defaults to
	// a no-op logger.
	Logger Logger
}

// DefaultOptions returns the default compile options: lenient profile, a
// background context, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Context: context.Background(),
		Profile: dialect.Lenient,
		Logger:  noopLogger{},
	}
}

func (o Options) resolve() Options {
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.Logger == nil {
		o.Logger = noopLogger{}
	}
	if !dialect.IsValid(o.Profile) {
		o.Profile = dialect.Lenient
	}
	return o
}
