package ticket

import (
	"math/rand/v2"
)

// Source is the general-purpose, non-cryptographic randomness used for length selection
// and by the non-secure generators. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
	Uint64() uint64
}

// GlobalSource draws from the top-level math/rand/v2 generator and is safe for concurrent use.
var GlobalSource Source = globalSource{} //nolint:gochecknoglobals

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

func (globalSource) Float64() float64 { return rand.Float64() }

func (globalSource) Uint64() uint64 { return rand.Uint64() }

// NewSource returns a deterministic source for seed.
// The returned source must not be shared between goroutines.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec
}

// sourceReader exposes a Source as an io.Reader. Read never fails.
type sourceReader struct {
	src Source
}

func (r sourceReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := r.src.Uint64()
		for j := i; j < len(p) && j < i+8; j++ {
			p[j] = byte(v)
			v >>= 8
		}
	}

	return len(p), nil
}
