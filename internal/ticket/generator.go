package ticket

import (
	"github.com/pkg/errors"
)

// Strategy names accepted by NewGenerator.
const (
	StrategyLibrary  = "library"
	StrategySecure   = "secure"
	StrategySampling = "sampling"
	StrategyASCII    = "ascii"
)

// Generator produces one randomized string per call.
type Generator interface {
	Generate(opts ...Option) (string, error)
}

//nolint:gochecknoglobals
var (
	defaultLibrary  = NewLibraryBacked(GlobalSource)
	defaultSecure   = NewSecureRandom(nil, GlobalSource)
	defaultSampling = NewCharsetSampling(GlobalSource)
	defaultASCII    = NewASCIIRange(GlobalSource)
)

// Strategies returns the strategy names in a stable order.
func Strategies() []string {
	return []string{StrategyLibrary, StrategySecure, StrategySampling, StrategyASCII}
}

// NewGenerator returns the generator registered as strategy. src is the general-purpose
// source; the secure strategy uses it for length selection only.
func NewGenerator(strategy string, src Source) (Generator, error) {
	switch strategy {
	case StrategyLibrary:
		return NewLibraryBacked(src), nil
	case StrategySecure:
		return NewSecureRandom(nil, src), nil
	case StrategySampling:
		return NewCharsetSampling(src), nil
	case StrategyASCII:
		return NewASCIIRange(src), nil
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "%q", strategy)
	}
}

// Random generates with the library backed strategy on GlobalSource.
func Random(opts ...Option) (string, error) {
	return defaultLibrary.Generate(opts...)
}

// SecureHex generates hex from crypto/rand.
func SecureHex(opts ...Option) (string, error) {
	return defaultSecure.Generate(opts...)
}

// Sample generates with the charset sampling strategy on GlobalSource.
func Sample(opts ...Option) (string, error) {
	return defaultSampling.Generate(opts...)
}

// ASCII generates printable ASCII on GlobalSource.
func ASCII(opts ...Option) (string, error) {
	return defaultASCII.Generate(opts...)
}
