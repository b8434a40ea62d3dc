package ticket

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidLength is returned for a negative length or an unusable default length range.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidCharset is returned for an empty or unusable charset.
	ErrInvalidCharset = errors.New("invalid charset")

	// ErrEntropyUnavailable is returned when the secure source can not deliver random bytes.
	ErrEntropyUnavailable = errors.New("entropy unavailable")

	// ErrUnknownStrategy is returned by NewGenerator for an unregistered strategy name.
	ErrUnknownStrategy = errors.New("unknown strategy")
)
