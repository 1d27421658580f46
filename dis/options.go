package dis

/*
Options controls codec-internal behaviour. This is not configuration
loading (explicitly out of scope, spec.md §1) — it is the same
functional-options idiom go-iec104 uses for ClientOption, applied to
the handful of knobs a byte codec genuinely has.
*/
type Options struct {
	// Strict rejects malformed fields (e.g. out-of-range variable
	// datum lengths) instead of passing them through best-effort.
	Strict bool
}

// Option mutates an Options value; see With* below.
type Option func(*Options)

// DefaultOptions returns the zero-value, non-strict Options.
func DefaultOptions() Options {
	return Options{Strict: false}
}

// WithStrict enables strict field validation on parse.
func WithStrict(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}

// NewOptions builds an Options from zero or more Option funcs.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
