package main

import (
	"bytes"
	"errors"
	"testing"
)

func TestReportActionFailureOutsideActionsIsSilent(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "")
	var buf bytes.Buffer
	reportActionFailure(&buf, errors.New("boom"))
	if buf.Len() != 0 {
		t.Fatalf("expected no output outside actions, got %q", buf.String())
	}
}

func TestReportActionFailureEmitsErrorCommand(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	var buf bytes.Buffer
	reportActionFailure(&buf, errors.New("list workflow jobs: github api returned 401"))
	want := "::error::list workflow jobs: github api returned 401\n"
	if buf.String() != want {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestReportActionFailureEscapesNewlines(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	var buf bytes.Buffer
	reportActionFailure(&buf, errors.New("line one\nline two 100%"))
	want := "::error::line one%0Aline two 100%25\n"
	if buf.String() != want {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRootCommandWiresSubcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"notify", "jobs", "test-notify", "config"} {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected %q subcommand", name)
		}
	}
}
