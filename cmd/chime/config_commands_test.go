package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSampleFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"config", "init", "--path", target})

	if err := root.Execute(); err != nil {
		t.Fatalf("config init returned error: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read generated config: %v", err)
	}
	if !strings.Contains(string(data), "[slack]") {
		t.Fatalf("sample config missing slack section:\n%s", data)
	}
	if !strings.Contains(out.String(), target) {
		t.Fatalf("expected target path in output: %q", out.String())
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	root := newRootCommand()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"config", "init", "--path", target})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for existing config without --overwrite")
	}
}

func TestConfigShowRedactsSecrets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[slack]
webhook_url = "https://hooks.slack.com/services/secret-path"

[github]
token = "ghs_secrettoken"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	for _, key := range []string{"INPUT_WEBHOOK_URL", "SLACK_WEBHOOK_URL", "INPUT_TOKEN", "GITHUB_TOKEN", "GITHUB_API_URL"} {
		t.Setenv(key, "")
	}

	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--config", path, "config", "show"})

	if err := root.Execute(); err != nil {
		t.Fatalf("config show returned error: %v", err)
	}
	rendered := out.String()
	if strings.Contains(rendered, "secret-path") || strings.Contains(rendered, "ghs_secrettoken") {
		t.Fatalf("config show leaked a secret:\n%s", rendered)
	}
	if !strings.Contains(rendered, "[redacted]") {
		t.Fatalf("expected redaction markers:\n%s", rendered)
	}
}
