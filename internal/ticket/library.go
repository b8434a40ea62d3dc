package ticket

import (
	"github.com/pkg/errors"

	"github.com/ticketgen/ticketgen/internal/uniuri"
)

// LibraryBacked generates strings from a named or literal charset with the
// general-purpose uniuri utility. Output is not suitable where unpredictability matters.
type LibraryBacked struct {
	src Source
}

// NewLibraryBacked returns a LibraryBacked generator reading src. A nil src means GlobalSource.
func NewLibraryBacked(src Source) *LibraryBacked {
	if src == nil {
		src = GlobalSource
	}

	return &LibraryBacked{src: src}
}

// Generate returns a string from the charset selected with WithCharset (a table name or a
// literal set, default "alphanumeric").
func (g *LibraryBacked) Generate(opts ...Option) (string, error) {
	req := newRequest(opts)

	charset, err := Resolve(req.charsetOr(NameAlphanumeric))
	if err != nil {
		return "", err
	}

	length, err := req.resolveLength(g.src)
	if err != nil {
		return "", err
	}

	out, err := uniuri.NewLenChars(sourceReader{src: g.src}, length, charset)
	if errors.Is(err, uniuri.ErrCharsetTooLarge) {
		return "", errors.Wrapf(ErrInvalidCharset, "%d characters, at most %d allowed",
			len([]rune(charset)), uniuri.MaxChars)
	}

	return out, err
}
