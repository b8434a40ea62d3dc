package ticket

import (
	"strings"

	"github.com/pkg/errors"
)

// CharsetSampling builds a string by sampling one character per position, uniformly and
// with replacement, from a literal charset.
type CharsetSampling struct {
	src Source
}

// NewCharsetSampling returns a CharsetSampling generator reading src. A nil src means GlobalSource.
func NewCharsetSampling(src Source) *CharsetSampling {
	if src == nil {
		src = GlobalSource
	}

	return &CharsetSampling{src: src}
}

// Generate returns a string from the literal charset given with WithCharset (default Alphanumeric).
// Table names are not resolved here.
func (g *CharsetSampling) Generate(opts ...Option) (string, error) {
	req := newRequest(opts)

	chars := []rune(req.charsetOr(Alphanumeric))
	if len(chars) == 0 {
		return "", errors.Wrap(ErrInvalidCharset, "charset is empty")
	}

	length, err := req.resolveLength(g.src)
	if err != nil {
		return "", err
	}

	var (
		sb   strings.Builder
		size = float64(len(chars))
		last = len(chars) - 1
	)

	sb.Grow(length)

	for range length {
		// Float64 is in [0, 1); min guards against rounding up to size.
		sb.WriteRune(chars[min(int(g.src.Float64()*size), last)])
	}

	return sb.String(), nil
}
