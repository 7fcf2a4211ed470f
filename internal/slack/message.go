package slack

import (
	"fmt"

	"chime/internal/config"
	"chime/internal/github"
)

// Attachment colors understood by Slack.
const (
	colorGood    = "good"
	colorDanger  = "danger"
	colorWarning = "warning"
)

// Message is the incoming-webhook payload.
type Message struct {
	Channel     string       `json:"channel,omitempty"`
	Username    string       `json:"username,omitempty"`
	IconEmoji   string       `json:"icon_emoji,omitempty"`
	Attachments []Attachment `json:"attachments"`
}

// Attachment carries the notification text plus the shared identity block.
type Attachment struct {
	Color      string   `json:"color,omitempty"`
	Text       string   `json:"text"`
	AuthorName string   `json:"author_name,omitempty"`
	AuthorIcon string   `json:"author_icon,omitempty"`
	Footer     string   `json:"footer,omitempty"`
	MrkdwnIn   []string `json:"mrkdwn_in,omitempty"`
}

// Builder produces the four message variants for one workflow run.
type Builder struct {
	slack  config.Slack
	runCtx *github.Context
}

// NewBuilder seeds a Builder with message identity settings and run context.
func NewBuilder(slack config.Slack, runCtx *github.Context) *Builder {
	return &Builder{slack: slack, runCtx: runCtx}
}

// Starting reports that the workflow has begun.
func (b *Builder) Starting() Message {
	return b.message("", fmt.Sprintf("Starting %s workflow", b.workflowLink()))
}

// Success reports that every job of the run completed successfully.
func (b *Builder) Success() Message {
	return b.message(colorGood, fmt.Sprintf("Finished %s workflow successfully", b.workflowLink()))
}

// Failure reports the first failing job and, when known, the step it failed at.
func (b *Builder) Failure(jobID int64, jobName, jobURL, stepName string) Message {
	text := fmt.Sprintf("Workflow %s during job %s", b.workflowStateLink("failed"), b.jobLink(jobID, jobName, jobURL))
	if stepName != "" {
		text += fmt.Sprintf(" at step `%s`", stepName)
	}
	return b.message(colorDanger, text)
}

// Cancelled reports that the run was cancelled.
func (b *Builder) Cancelled() Message {
	return b.message(colorWarning, fmt.Sprintf("Workflow %s", b.workflowStateLink("cancelled")))
}

// Test produces the message sent by `chime test-notify`.
func (b *Builder) Test() Message {
	return b.message("", fmt.Sprintf("Chime test notification for %s", b.runCtx.Repository))
}

func (b *Builder) message(color, text string) Message {
	return Message{
		Channel:   b.slack.Channel,
		Username:  b.slack.Username,
		IconEmoji: b.slack.IconEmoji,
		Attachments: []Attachment{
			{
				Color:      color,
				Text:       text,
				AuthorName: b.runCtx.Actor,
				AuthorIcon: b.runCtx.ActorAvatarURL(),
				Footer:     fmt.Sprintf("%s@%s", b.runCtx.Repository, b.runCtx.ShortSHA()),
				MrkdwnIn:   []string{"text"},
			},
		},
	}
}

func (b *Builder) workflowLink() string {
	return fmt.Sprintf("`<%s|%s>`", b.runCtx.RunURL(), b.workflowLabel())
}

// workflowStateLink appends the terminal state inside the code span, e.g.
// "`<url|CI> failed`".
func (b *Builder) workflowStateLink(state string) string {
	return fmt.Sprintf("`<%s|%s> %s`", b.runCtx.RunURL(), b.workflowLabel(), state)
}

func (b *Builder) jobLink(jobID int64, jobName, jobURL string) string {
	if jobURL == "" {
		jobURL = b.runCtx.JobURL(jobID)
	}
	if jobName == "" {
		jobName = fmt.Sprintf("job %d", jobID)
	}
	return fmt.Sprintf("`<%s|%s>`", jobURL, jobName)
}

func (b *Builder) workflowLabel() string {
	if b.runCtx.Workflow != "" {
		return b.runCtx.Workflow
	}
	return "workflow"
}
