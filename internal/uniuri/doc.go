// Package uniuri generates random strings of a given length from a given set of characters.
// Randomness is read from a caller supplied io.Reader, so the same code serves both a
// general-purpose byte stream and a cryptographically strong one.
package uniuri
