// Package config reads the service configuration from etc/main.toml.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/ticketgen/ticketgen/internal/ticket"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. TICKETGEN_WEBSERVER_PORT.
	EnvPrefix = "TICKETGEN"

	// EnvConfigJSON holds a JSON document merged over the file config.
	EnvConfigJSON = "TICKETGEN_CONFIG_JSON"

	// DefaultPath is the config directory used when none is given.
	DefaultPath = "./etc/"

	defaultName         = "ticketgen"
	defaultLogLevel     = "info"
	defaultPort         = 8080
	defaultShutDownTime = 5
	defaultMaxCount     = 100

	// DefaultMaxExplicitLength is the largest length a caller may ask for unless configured.
	DefaultMaxExplicitLength = 1024
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals

// ReadConfig reads main.toml from the directory path.
func ReadConfig(path string) (Config, error) {
	var (
		c   Config
		err error
	)

	if path == "" {
		path = DefaultPath
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(strings.TrimSuffix(path, "/") + "/main.toml")
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	if configAsJSON := os.Getenv(EnvConfigJSON); configAsJSON != "" {
		if c, err = decodeAndMergeConfig(c, configAsJSON); err != nil {
			return c, err
		}
	}

	return c, Validate(&c)
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	c := Config{
		Title: defaultName,
		Webserver: Webserver{
			Port:         defaultPort,
			URL:          "http://localhost:8080",
			ShutDownTime: defaultShutDownTime,
		},
	}
	c.Log.LogLevel = defaultLogLevel
	c.Log.AppName = defaultName
	c.Log.ServiceName = defaultName
	c.Log.Console.Enabled = true

	fillDefaults(&c)

	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", defaultName)
	v.SetDefault("log.logLevel", defaultLogLevel)
	v.SetDefault("log.appName", defaultName)
	v.SetDefault("log.serviceName", defaultName)
	v.SetDefault("webserver.shutDownTime", defaultShutDownTime)
	v.SetDefault("generator.strategy", ticket.StrategyLibrary)
	v.SetDefault("generator.minLength", ticket.DefaultMinLength)
	v.SetDefault("generator.maxLength", ticket.DefaultMaxLength)
	v.SetDefault("generator.maxExplicitLength", DefaultMaxExplicitLength)
	v.SetDefault("generator.maxCount", defaultMaxCount)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	if err := json.Unmarshal([]byte(configAsJSON), &c); err != nil {
		return Config{}, errors.Wrapf(err, "failed to decode %s", EnvConfigJSON)
	}

	return c, nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint:wrapcheck
	}

	return buffer.String(), nil
}

// fillDefaults sets the generator values ReadConfig would default when they are zero.
func fillDefaults(c *Config) {
	if c.Generator.Strategy == "" {
		c.Generator.Strategy = ticket.StrategyLibrary
	}

	if c.Generator.MaxCount == 0 {
		c.Generator.MaxCount = defaultMaxCount
	}

	if c.Generator.MinLength == 0 && c.Generator.MaxLength == 0 {
		c.Generator.MinLength = ticket.DefaultMinLength
		c.Generator.MaxLength = ticket.DefaultMaxLength
	}

	if c.Generator.MaxExplicitLength == 0 {
		c.Generator.MaxExplicitLength = max(DefaultMaxExplicitLength, c.Generator.MaxLength)
	}
}

// Validate checks c and fills the defaults ReadConfig would set.
func Validate(c *Config) error {
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, ErrInvalidConfig.Error())
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, ErrInvalidConfig.Error())
	}

	fillDefaults(c)

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return errors.Wrapf(ErrInvalidConfig, "%s failed on %s=%s (value %v)",
				verrs[0].Namespace(), verrs[0].Tag(), verrs[0].Param(), verrs[0].Value())
		}

		return errors.Wrap(err, ErrInvalidConfig.Error())
	}

	return nil
}
