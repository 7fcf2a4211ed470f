package config

const (
	defaultChannel        = "#app-log"
	defaultUsername       = "Github Actions"
	defaultIconEmoji      = ":octocat:"
	defaultAPIURL         = "https://api.github.com"
	defaultRequestTimeout = 10
	defaultLogFormat      = "auto"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Slack: Slack{
			Channel:   defaultChannel,
			Username:  defaultUsername,
			IconEmoji: defaultIconEmoji,
		},
		GitHub: GitHub{
			APIURL:         defaultAPIURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
