package config

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrInvalidConfig marks configuration errors. Callers detect it with errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks that all required settings are present and well formed.
func (c *Config) Validate() error {
	if err := c.ValidateConnection(); err != nil {
		return err
	}
	if c.TargetNetwork == "" {
		return fmt.Errorf("%w: target_network is required (or set %s)", ErrInvalidConfig, EnvTargetNetwork)
	}
	return nil
}

// ValidateConnection checks only the settings needed to reach the API.
func (c *Config) ValidateConnection() error {
	if c.APIURL == "" {
		return fmt.Errorf("%w: api_url is required (or set %s)", ErrInvalidConfig, EnvAPIURL)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%w: api_key is required (or set %s)", ErrInvalidConfig, EnvAPIKey)
	}
	if err := validateAPIURL(c.APIURL); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// validateAPIURL requires an absolute http or https URL with a host.
func validateAPIURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("api_url %q is not a valid URL: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_url %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("api_url %q has no host", raw)
	}
	return nil
}
