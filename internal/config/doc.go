// Package config loads, normalizes, and validates Chime configuration data.
//
// It supplies repository defaults, reads an optional TOML file, and honours
// the environment fallbacks a GitHub Actions invocation provides (INPUT_*
// action inputs, SLACK_WEBHOOK_URL, GITHUB_TOKEN). Credentials are carried as
// the opaque Secret type so they cannot leak through logs or printed config.
//
// Always obtain settings through this package so downstream code receives
// canonical values and clear validation errors.
package config
