package config

import (
	"github.com/ticketgen/ticketgen/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool       `mapstructure:"devMode"` // enable dev mode for development
	Title     string     `mapstructure:"title"`
	Log       logger.Log `mapstructure:"log"`
	Webserver Webserver  `mapstructure:"webserver"`
	Generator Generator  `mapstructure:"generator"`
}

// Webserver implement webserver settings.
type Webserver struct {
	// DisableRecover disables the recover middleware.
	DisableRecover bool `mapstructure:"disableRecover"`

	// Port is the listening port.
	Port int `mapstructure:"port" validate:"min=1,max=65535"`

	// ShutDownTime is the number of seconds /checkalive answers 503 before the server stops.
	ShutDownTime int `mapstructure:"shutDownTime" validate:"min=0"`

	// URL is the base url of the service.
	URL string `mapstructure:"url" validate:"required,url"`

	ReadBufferSize int `mapstructure:"readBufferSize" validate:"min=0"`
}

// Generator holds the defaults used when a caller does not pick them.
type Generator struct {
	Strategy string `mapstructure:"strategy" validate:"oneof=library secure sampling ascii"`

	// Charset is a table name or a literal charset. Empty means the strategy default.
	Charset string `mapstructure:"charset"`

	MinLength int `mapstructure:"minLength" validate:"min=0"`
	MaxLength int `mapstructure:"maxLength" validate:"gtefield=MinLength"`

	// MaxExplicitLength bounds a length given by the caller. It must not be below MaxLength.
	MaxExplicitLength int `mapstructure:"maxExplicitLength" validate:"gtefield=MaxLength"`

	// MaxCount bounds the number of tickets per request.
	MaxCount int `mapstructure:"maxCount" validate:"min=1"`
}
