package uniuri

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

const (
	// MaxChars is the largest charset a single random byte can index without bias.
	MaxChars = byteRange

	// maxBufLen is the maximum length of a temporary buffer for random bytes.
	maxBufLen = 2048

	// minRegenBufLen is the minimum length of temporary buffer for random bytes
	// to fill after the first read didn't produce the full result.
	// If the initial buffer is smaller, this value is ignored.
	minRegenBufLen = 16

	// maxByteValue is the maximum value of a byte (2^8 - 1).
	maxByteValue = 255

	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256
)

var (
	// errEmptyCharset is returned when no characters were supplied.
	errEmptyCharset = errors.New("uniuri: charset is empty")

	// ErrCharsetTooLarge is returned when more than MaxChars characters were supplied.
	ErrCharsetTooLarge = errors.New("uniuri: charset has more than 256 characters")

	// errNegativeLength is returned for a length below zero.
	errNegativeLength = errors.New("uniuri: length can not be negative")
)

// estimatedBufLen returns the estimated number of random bytes to request
// given that byte values greater than maxByte will be rejected.
func estimatedBufLen(need, maxByte int) int {
	return int(math.Ceil(float64(need) * (maxByteValue / float64(maxByte))))
}

// NewLenRunes returns length runes picked uniformly from chars, reading randomness from r.
// Byte values that would bias the modulo are skipped.
func NewLenRunes(r io.Reader, length int, chars []rune) ([]rune, error) {
	if length < 0 {
		return nil, errNegativeLength
	}

	clen := len(chars)

	switch {
	case clen == 0:
		return nil, errEmptyCharset
	case clen > byteRange:
		return nil, ErrCharsetTooLarge
	}

	out := make([]rune, length)
	if length == 0 {
		return out, nil
	}

	maxRb := maxByteValue - (byteRange % clen)

	bufLen := max(estimatedBufLen(length, maxRb), length)
	bufLen = min(bufLen, maxBufLen)

	buf := make([]byte, bufLen)

	var i int // index in out
	for {
		if _, err := io.ReadFull(r, buf[:bufLen]); err != nil {
			return nil, errors.Wrap(err, "uniuri: error reading random bytes")
		}

		for _, rb := range buf[:bufLen] {
			c := int(rb)
			if c > maxRb {
				continue
			}

			out[i] = chars[c%clen]
			i++

			if i == length {
				return out, nil
			}
		}

		// Adjust new requested length, but no smaller than minRegenBufLen.
		bufLen = estimatedBufLen(length-i, maxRb)
		if bufLen < minRegenBufLen && minRegenBufLen < cap(buf) {
			bufLen = minRegenBufLen
		}

		bufLen = min(bufLen, cap(buf))
	}
}

// NewLenChars returns a random string of length characters drawn from chars.
func NewLenChars(r io.Reader, length int, chars string) (string, error) {
	out, err := NewLenRunes(r, length, []rune(chars))
	if err != nil {
		return "", err
	}

	return string(out), nil
}
