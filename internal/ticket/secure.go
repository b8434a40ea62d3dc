package ticket

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// SecureRandom generates lowercase hex strings from a cryptographically strong source.
type SecureRandom struct {
	entropy io.Reader
	lengths Source
}

// NewSecureRandom returns a SecureRandom generator.
// entropy defaults to crypto/rand.Reader, lengths (used only to pick a default length) to GlobalSource.
func NewSecureRandom(entropy io.Reader, lengths Source) *SecureRandom {
	if entropy == nil {
		entropy = rand.Reader
	}

	if lengths == nil {
		lengths = GlobalSource
	}

	return &SecureRandom{entropy: entropy, lengths: lengths}
}

// Generate returns a hex string. WithCharset is ignored, the output is always 0-9a-f.
func (g *SecureRandom) Generate(opts ...Option) (string, error) {
	req := newRequest(opts)

	length, err := req.resolveLength(g.lengths)
	if err != nil {
		return "", err
	}

	// two hex digits per byte
	buf := make([]byte, (length+1)/2)

	if _, err = io.ReadFull(g.entropy, buf); err != nil {
		return "", fmt.Errorf("%w: reading %d bytes: %w", ErrEntropyUnavailable, len(buf), err)
	}

	return hex.EncodeToString(buf)[:length], nil
}
