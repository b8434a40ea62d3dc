package config

import (
	"errors"
)

var (
	// ErrInvalidConfig is returned when a config value fails validation.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrEmptyURL error if config webserver.url is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")
)
