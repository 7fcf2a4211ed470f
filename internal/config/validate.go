package config

import (
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable. Required secrets are checked
// at their point of use instead: the webhook URL only gates the notification
// commands and the API token only gates the completion path, so inspection
// commands keep working without them.
func (c *Config) Validate() error {
	if err := c.validateGitHub(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateGitHub() error {
	parsed, err := url.Parse(c.GitHub.APIURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("github.api_url %q is not a valid URL", c.GitHub.APIURL)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
