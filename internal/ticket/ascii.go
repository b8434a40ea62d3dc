package ticket

const (
	// MinASCIICode is the lowest character code ASCIIRange emits: '('.
	MinASCIICode = 40

	// MaxASCIICode is the highest character code ASCIIRange emits: '~'.
	MaxASCIICode = 126
)

// ASCIIRange generates strings of raw character codes in [MinASCIICode, MaxASCIICode].
// The output carries more entropy per character than the table charsets but contains
// punctuation such as '/', '?' and '&'.
type ASCIIRange struct {
	src Source
}

// NewASCIIRange returns an ASCIIRange generator reading src. A nil src means GlobalSource.
func NewASCIIRange(src Source) *ASCIIRange {
	if src == nil {
		src = GlobalSource
	}

	return &ASCIIRange{src: src}
}

// Generate returns a string of printable ASCII. WithCharset is ignored.
func (g *ASCIIRange) Generate(opts ...Option) (string, error) {
	req := newRequest(opts)

	length, err := req.resolveLength(g.src)
	if err != nil {
		return "", err
	}

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = byte(RangeIntFrom(g.src, MinASCIICode, MaxASCIICode))
	}

	return string(buf), nil
}
