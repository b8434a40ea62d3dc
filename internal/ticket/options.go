package ticket

import (
	"github.com/pkg/errors"
)

// Option sets a parameter of a single Generate call.
type Option func(*request)

// request holds the parameters of one call. The has* flags tell an explicit
// empty charset or zero length apart from an unset one.
type request struct {
	charset    string
	hasCharset bool

	length    int
	hasLength bool

	minLength int
	maxLength int
}

// WithCharset selects the charset. Generators with a fixed output domain ignore it.
func WithCharset(charset string) Option {
	return func(r *request) {
		r.charset = charset
		r.hasCharset = true
	}
}

// WithLength sets the exact output length. Any value >= 0 is accepted.
func WithLength(n int) Option {
	return func(r *request) {
		r.length = n
		r.hasLength = true
	}
}

// WithLengthRange changes the range the length is picked from when WithLength is not given.
func WithLengthRange(lo, hi int) Option {
	return func(r *request) {
		r.minLength = lo
		r.maxLength = hi
	}
}

func newRequest(opts []Option) request {
	r := request{
		minLength: DefaultMinLength,
		maxLength: DefaultMaxLength,
	}

	for _, opt := range opts {
		opt(&r)
	}

	return r
}

// charsetOr returns the requested charset or fallback if none was given.
func (r *request) charsetOr(fallback string) string {
	if r.hasCharset {
		return r.charset
	}

	return fallback
}

func (r *request) resolveLength(src Source) (int, error) {
	if r.hasLength {
		if r.length < 0 {
			return 0, errors.Wrapf(ErrInvalidLength, "length %d is negative", r.length)
		}

		return r.length, nil
	}

	if r.minLength < 0 || r.minLength > r.maxLength {
		return 0, errors.Wrapf(ErrInvalidLength, "length range [%d, %d]", r.minLength, r.maxLength)
	}

	return RangeIntFrom(src, r.minLength, r.maxLength), nil
}
