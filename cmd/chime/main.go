package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			reportActionFailure(os.Stdout, err)
		}
		os.Exit(1)
	}
}

// reportActionFailure emits the GitHub workflow command that marks the
// current action step failed with the error as the user-visible reason.
func reportActionFailure(out io.Writer, err error) {
	if os.Getenv("GITHUB_ACTIONS") != "true" {
		return
	}
	message := strings.TrimSpace(err.Error())
	if message == "" {
		message = "Unhandled Error"
	}
	// Workflow command values must stay on one line.
	message = strings.ReplaceAll(message, "%", "%25")
	message = strings.ReplaceAll(message, "\r", "%0D")
	message = strings.ReplaceAll(message, "\n", "%0A")
	fmt.Fprintf(out, "::error::%s\n", message)
}
