package github

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const defaultServerURL = "https://github.com"

// Context is the workflow run metadata GitHub Actions supplies through the
// environment of every step.
type Context struct {
	// Repository is the "owner/name" slug of the repository being built.
	Repository string
	// Actor is the login that triggered the run.
	Actor string
	// SHA is the commit the run was triggered for.
	SHA string
	// RefName is the short ref name (branch or tag) of the run.
	RefName string
	// RunID identifies this execution of the workflow.
	RunID int64
	// Workflow is the workflow's display name.
	Workflow string
	// EventName is the event that triggered the run.
	EventName string
	// ServerURL is the GitHub web origin used to build links.
	ServerURL string
}

// ContextFromEnv builds a Context from the GITHUB_* environment. Repository
// and run id are required; everything else degrades to blanks in the rendered
// message.
func ContextFromEnv() (*Context, error) {
	ctx := &Context{
		Repository: strings.TrimSpace(os.Getenv("GITHUB_REPOSITORY")),
		Actor:      strings.TrimSpace(os.Getenv("GITHUB_ACTOR")),
		SHA:        strings.TrimSpace(os.Getenv("GITHUB_SHA")),
		RefName:    strings.TrimSpace(os.Getenv("GITHUB_REF_NAME")),
		Workflow:   strings.TrimSpace(os.Getenv("GITHUB_WORKFLOW")),
		EventName:  strings.TrimSpace(os.Getenv("GITHUB_EVENT_NAME")),
		ServerURL:  strings.TrimRight(strings.TrimSpace(os.Getenv("GITHUB_SERVER_URL")), "/"),
	}
	if ctx.ServerURL == "" {
		ctx.ServerURL = defaultServerURL
	}
	if ctx.Repository == "" {
		return nil, errors.New("GITHUB_REPOSITORY is not set; chime must run inside a GitHub Actions step")
	}
	rawRunID := strings.TrimSpace(os.Getenv("GITHUB_RUN_ID"))
	if rawRunID == "" {
		return nil, errors.New("GITHUB_RUN_ID is not set; chime must run inside a GitHub Actions step")
	}
	runID, err := strconv.ParseInt(rawRunID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse GITHUB_RUN_ID %q: %w", rawRunID, err)
	}
	ctx.RunID = runID
	return ctx, nil
}

// RepoURL returns the repository's web URL.
func (c *Context) RepoURL() string {
	return c.ServerURL + "/" + c.Repository
}

// RunURL returns the web URL of this workflow run.
func (c *Context) RunURL() string {
	return fmt.Sprintf("%s/%s/actions/runs/%d", c.ServerURL, c.Repository, c.RunID)
}

// JobURL returns the web URL for a job of this run.
func (c *Context) JobURL(jobID int64) string {
	return fmt.Sprintf("%s/%s/runs/%d", c.ServerURL, c.Repository, jobID)
}

// ActorAvatarURL returns a small avatar image URL for the triggering actor.
func (c *Context) ActorAvatarURL() string {
	if c.Actor == "" {
		return ""
	}
	return c.ServerURL + "/" + c.Actor + ".png?size=32"
}

// ShortSHA returns the abbreviated commit identifier used in message footers.
func (c *Context) ShortSHA() string {
	if len(c.SHA) <= 8 {
		return c.SHA
	}
	return c.SHA[:8]
}
