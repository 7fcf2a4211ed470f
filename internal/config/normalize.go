package config

import (
	"os"
	"strconv"
	"strings"
)

// normalize applies environment overrides and fills gaps with defaults.
//
// Environment values win over file values: inside a workflow run the action
// inputs (INPUT_*) are authoritative, and a stale local config file must not
// shadow them.
func (c *Config) normalize() {
	if v, ok := firstEnv("INPUT_WEBHOOK_URL", "SLACK_WEBHOOK_URL"); ok {
		c.Slack.WebhookURL = Secret(v)
	}
	if v, ok := firstEnv("INPUT_TOKEN", "GITHUB_TOKEN"); ok {
		c.GitHub.Token = Secret(v)
	}
	if v, ok := firstEnv("INPUT_CHANNEL"); ok {
		c.Slack.Channel = v
	}
	if v, ok := firstEnv("INPUT_USERNAME"); ok {
		c.Slack.Username = v
	}
	if v, ok := firstEnv("INPUT_ICON_EMOJI"); ok {
		c.Slack.IconEmoji = v
	}
	if v, ok := firstEnv("GITHUB_API_URL"); ok {
		c.GitHub.APIURL = v
	}
	if v, ok := firstEnv("INPUT_STARTING", "CHIME_STARTING"); ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Notify.Starting = parsed
		}
	}

	c.Slack.Channel = strings.TrimSpace(c.Slack.Channel)
	c.Slack.Username = strings.TrimSpace(c.Slack.Username)
	c.Slack.IconEmoji = strings.TrimSpace(c.Slack.IconEmoji)
	c.GitHub.APIURL = strings.TrimRight(strings.TrimSpace(c.GitHub.APIURL), "/")
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	if c.Slack.Channel == "" {
		c.Slack.Channel = defaultChannel
	}
	if c.Slack.Username == "" {
		c.Slack.Username = defaultUsername
	}
	if c.Slack.IconEmoji == "" {
		c.Slack.IconEmoji = defaultIconEmoji
	}
	if c.GitHub.APIURL == "" {
		c.GitHub.APIURL = defaultAPIURL
	}
	if c.GitHub.RequestTimeout <= 0 {
		c.GitHub.RequestTimeout = defaultRequestTimeout
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func firstEnv(keys ...string) (string, bool) {
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v, true
		}
	}
	return "", false
}
