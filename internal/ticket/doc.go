// Package ticket generates the randomized strings printed as barcode payloads on passes.
//
// Four strategies are available. They are independent of each other and share only
// RangeInt, the charset table and the randomness sources:
//
//   - LibraryBacked draws from a named charset (alphanumeric, alphabetic, numeric, hex)
//     or a literal one through the general-purpose uniuri utility.
//   - SecureRandom returns lowercase hex read from a cryptographically strong source.
//   - CharsetSampling picks one character per position from a literal charset.
//   - ASCIIRange decodes raw character codes drawn from [40, 126].
//
// # Length
//
// Without WithLength the output length is RangeInt(8, 32). An explicit length is only
// checked for being non-negative; values outside [8, 32] are accepted on purpose.
//
// # Randomness
//
// Two sources are kept apart. Source is the general-purpose, non-cryptographic one used
// for length selection and by LibraryBacked, CharsetSampling and ASCIIRange. GlobalSource
// is safe for concurrent use; NewSource returns a seeded, deterministic source for tests.
// SecureRandom reads an io.Reader that defaults to crypto/rand.Reader and never falls
// back to Source when that reader fails.
//
// ASCIIRange output may contain punctuation that is unsafe in URLs or some barcode
// symbologies. Picking a barcode-safe strategy is up to the caller.
//
// Example usage:
//
//	// alphanumeric, 8 to 32 characters
//	s, err := ticket.Random()
//
//	// 12 digits
//	s, err = ticket.Sample(ticket.WithCharset("0123456789"), ticket.WithLength(12))
//
//	// reproducible output
//	g, err := ticket.NewGenerator(ticket.StrategyLibrary, ticket.NewSource(42))
//	s, err = g.Generate(ticket.WithCharset(ticket.NameHex))
package ticket
