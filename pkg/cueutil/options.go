// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxSize is the largest document Decode accepts (5MB).
const DefaultMaxSize int64 = 5 * 1024 * 1024

type (
	decodeOptions struct {
		maxSize  int64
		concrete bool
		filename string
	}

	// Option configures Decode and DecodeMap.
	Option func(*decodeOptions)
)

func defaultOptions() decodeOptions {
	return decodeOptions{
		maxSize:  DefaultMaxSize,
		concrete: true,
	}
}

// WithMaxSize sets the maximum accepted document size in bytes.
func WithMaxSize(size int64) Option {
	return func(o *decodeOptions) {
		o.maxSize = size
	}
}

// WithConcrete sets whether every value must be concrete after unification.
// Default is true. Configuration files turn it off because their fields are
// optional.
func WithConcrete(concrete bool) Option {
	return func(o *decodeOptions) {
		o.concrete = concrete
	}
}

// WithFilename sets the name reported in error messages.
func WithFilename(name string) Option {
	return func(o *decodeOptions) {
		o.filename = name
	}
}
