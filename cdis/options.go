package cdis

// DefaultBitBufferBytes bounds the scratch buffer a BitWriter starts
// with per spec.md §5; it grows on demand, this is only the initial
// allocation.
const DefaultBitBufferBytes = 8192

// Options tunes cdis codec behavior, mirroring dis.Options's
// functional-options shape (spec.md's configuration Non-goal excludes
// file/env loading, not in-process tuning).
type Options struct {
	Strict         bool
	BitBufferBytes int
}

type Option func(*Options)

func DefaultOptions() Options {
	return Options{Strict: false, BitBufferBytes: DefaultBitBufferBytes}
}

func WithStrict(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}

func WithBitBufferBytes(n int) Option {
	return func(o *Options) { o.BitBufferBytes = n }
}

func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
