package config

import (
	"fmt"
	"log/slog"
)

const redactedPlaceholder = "[redacted]"

// Secret holds a credential such as a webhook URL or API token. Every display
// path (fmt verbs, slog, TOML encoding) yields a redacted placeholder; only
// Value returns the underlying string. An empty Secret displays as empty so
// "not set" stays distinguishable from "set".
type Secret string

// Value returns the raw secret for use in requests.
func (s Secret) Value() string { return string(s) }

// IsSet reports whether the secret carries a value.
func (s Secret) IsSet() bool { return s != "" }

func (s Secret) redacted() string {
	if s == "" {
		return ""
	}
	return redactedPlaceholder
}

func (s Secret) String() string { return s.redacted() }

func (s Secret) GoString() string { return "config.Secret(" + s.redacted() + ")" }

// Format implements fmt.Formatter so %v, %s, %q and friends all redact.
func (s Secret) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprintf(f, "%q", s.redacted())
	default:
		fmt.Fprint(f, s.redacted())
	}
}

// LogValue keeps secrets out of structured log output.
func (s Secret) LogValue() slog.Value { return slog.StringValue(s.redacted()) }

// MarshalText redacts, so encoding a Config (e.g. `chime config show`) is safe.
func (s Secret) MarshalText() ([]byte, error) { return []byte(s.redacted()), nil }

func (s *Secret) UnmarshalText(text []byte) error {
	*s = Secret(text)
	return nil
}
