package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hance08/findpayments/internal/constants"
)

type Config struct {
	API        APIConfig      `mapstructure:"api"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"` // 0 disables the deadline
	UserAgent string        `mapstructure:"user_agent"`
}

type DefaultsConfig struct {
	Year     int    `mapstructure:"year"`
	Timezone string `mapstructure:"timezone"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   constants.DefaultBaseURL,
			UserAgent: constants.DefaultUserAgent,
		},
		Defaults: DefaultsConfig{
			Year:     constants.DefaultYear,
			Timezone: constants.DefaultTimezone,
		},
		Log: LogConfig{Level: constants.DefaultLogLevel},
	}
}

// Validate collects every problem in the configuration into one error.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.API.BaseURL) == "" {
		problems = append(problems, "api.base_url is empty")
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("api.base_url %q is not an absolute URL", c.API.BaseURL))
	}

	if c.API.Timeout < 0 {
		problems = append(problems, "api.timeout can't be negative")
	}

	if _, err := c.Location(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Location resolves the time zone used to render decision issue dates.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Defaults.Timezone)
	if err != nil {
		return nil, fmt.Errorf("defaults.timezone %q: %w", c.Defaults.Timezone, err)
	}
	return loc, nil
}
