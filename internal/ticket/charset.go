package ticket

import (
	"maps"
	"slices"

	"github.com/pkg/errors"
)

// Charset names of the table.
const (
	NameAlphanumeric = "alphanumeric"
	NameAlphabetic   = "alphabetic"
	NameNumeric      = "numeric"
	NameHex          = "hex"
)

// Charsets of the table.
const (
	Alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	Alphabetic   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	Numeric      = "0123456789"
	Hex          = "0123456789abcdef"
)

// charsets is never written after init.
var charsets = map[string]string{ //nolint:gochecknoglobals
	NameAlphanumeric: Alphanumeric,
	NameAlphabetic:   Alphabetic,
	NameNumeric:      Numeric,
	NameHex:          Hex,
}

// Lookup returns the charset registered under name.
func Lookup(name string) (string, bool) {
	charset, ok := charsets[name]

	return charset, ok
}

// Names returns the sorted names of the charset table.
func Names() []string {
	return slices.Sorted(maps.Keys(charsets))
}

// Table returns a copy of the charset table.
func Table() map[string]string {
	return maps.Clone(charsets)
}

// Resolve turns a selector into a charset: a table name resolves through the table,
// anything else non-empty is taken literally.
func Resolve(selector string) (string, error) {
	if charset, ok := charsets[selector]; ok {
		return charset, nil
	}

	if selector == "" {
		return "", errors.Wrap(ErrInvalidCharset, "charset selector is empty")
	}

	return selector, nil
}
