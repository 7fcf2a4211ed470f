package notify_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"chime/internal/config"
	"chime/internal/github"
	"chime/internal/logging"
	"chime/internal/notify"
	"chime/internal/slack"
)

type fakeLister struct {
	jobs []github.Job
	err  error
}

func (f *fakeLister) ListRunJobs(_ context.Context, _ string, _ int64) ([]github.Job, error) {
	return f.jobs, f.err
}

type fakeSender struct {
	sent []slack.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg slack.Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Slack.WebhookURL = config.Secret("https://hooks.slack.com/services/T00/B00/XXX")
	cfg.GitHub.Token = config.Secret("test-token")
	return &cfg
}

func testRunContext() *github.Context {
	return &github.Context{
		Repository: "acme/widgets",
		Actor:      "octocat",
		SHA:        "deadbeefcafe",
		Workflow:   "CI",
		RunID:      6012,
		ServerURL:  "https://github.com",
	}
}

func newService(t *testing.T, lister *fakeLister, sender *fakeSender) *notify.Service {
	t.Helper()
	svc, err := notify.NewService(testConfig(), testRunContext(), logging.NewNop(),
		notify.WithJobLister(lister), notify.WithSender(sender))
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	return svc
}

func TestNewServiceRequiresWebhook(t *testing.T) {
	cfg := testConfig()
	cfg.Slack.WebhookURL = ""
	_, err := notify.NewService(cfg, testRunContext(), logging.NewNop())
	if err == nil {
		t.Fatal("expected error for missing webhook url")
	}
	if strings.Contains(err.Error(), "hooks.slack.com") {
		t.Fatalf("error must not leak webhook values: %v", err)
	}
}

func TestNotifyStartSendsStartingMessage(t *testing.T) {
	sender := &fakeSender{}
	svc := newService(t, &fakeLister{}, sender)

	if err := svc.NotifyStart(context.Background()); err != nil {
		t.Fatalf("NotifyStart returned error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(sender.sent))
	}
	if !strings.HasPrefix(sender.sent[0].Attachments[0].Text, "Starting") {
		t.Fatalf("unexpected message: %q", sender.sent[0].Attachments[0].Text)
	}
}

func TestNotifyCompletionSuccess(t *testing.T) {
	sender := &fakeSender{}
	lister := &fakeLister{jobs: []github.Job{
		{ID: 1, Name: "build", Status: github.StatusCompleted, Conclusion: github.ConclusionSuccess},
		{ID: 2, Name: "notify", Status: github.StatusInProgress},
	}}
	svc := newService(t, lister, sender)

	if err := svc.NotifyCompletion(context.Background()); err != nil {
		t.Fatalf("NotifyCompletion returned error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(sender.sent))
	}
	att := sender.sent[0].Attachments[0]
	if att.Color != "good" || !strings.Contains(att.Text, "successfully") {
		t.Fatalf("unexpected success message: %+v", att)
	}
}

func TestNotifyCompletionFailureNamesJobAndStep(t *testing.T) {
	sender := &fakeSender{}
	lister := &fakeLister{jobs: []github.Job{
		{
			ID:         7,
			Name:       "build",
			Status:     github.StatusCompleted,
			Conclusion: github.ConclusionFailure,
			Steps: []github.Step{
				{Name: "lint", Conclusion: github.ConclusionSuccess},
				{Name: "test", Conclusion: github.ConclusionFailure},
			},
		},
	}}
	svc := newService(t, lister, sender)

	if err := svc.NotifyCompletion(context.Background()); err != nil {
		t.Fatalf("NotifyCompletion returned error: %v", err)
	}
	att := sender.sent[0].Attachments[0]
	if att.Color != "danger" {
		t.Fatalf("unexpected color: %q", att.Color)
	}
	if !strings.Contains(att.Text, "build") || !strings.Contains(att.Text, "at step `test`") {
		t.Fatalf("expected failing job and step in message: %q", att.Text)
	}
}

func TestNotifyCompletionCancelled(t *testing.T) {
	sender := &fakeSender{}
	lister := &fakeLister{jobs: []github.Job{
		{ID: 3, Name: "deploy", Status: github.StatusCompleted, Conclusion: github.ConclusionCancelled},
	}}
	svc := newService(t, lister, sender)

	if err := svc.NotifyCompletion(context.Background()); err != nil {
		t.Fatalf("NotifyCompletion returned error: %v", err)
	}
	att := sender.sent[0].Attachments[0]
	if att.Color != "warning" || !strings.Contains(att.Text, "cancelled") {
		t.Fatalf("unexpected cancelled message: %+v", att)
	}
}

func TestDeliveryFailureIsSwallowed(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection refused")}
	lister := &fakeLister{}
	svc := newService(t, lister, sender)

	if err := svc.NotifyStart(context.Background()); err != nil {
		t.Fatalf("delivery failure must not propagate from NotifyStart, got %v", err)
	}
	if err := svc.NotifyCompletion(context.Background()); err != nil {
		t.Fatalf("delivery failure must not propagate from NotifyCompletion, got %v", err)
	}
}

type refusingDoer struct{}

func (refusingDoer) Do(req *http.Request) (*http.Response, error) {
	return nil, &url.Error{Op: "Post", URL: req.URL.String(), Err: errors.New("dial tcp: connection refused")}
}

func TestDeliveryFailureLogNeverContainsWebhook(t *testing.T) {
	endpoint := "https://hooks.slack.com/services/T00/B00/SECRETTOKEN"
	sender, err := slack.NewWebhookClient(endpoint, time.Second, slack.WithHTTPClient(refusingDoer{}))
	if err != nil {
		t.Fatalf("NewWebhookClient returned error: %v", err)
	}

	var logBuf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Writer: &logBuf})
	if err != nil {
		t.Fatalf("logging.New returned error: %v", err)
	}

	cfg := testConfig()
	cfg.Slack.WebhookURL = config.Secret(endpoint)
	svc, err := notify.NewService(cfg, testRunContext(), logger, notify.WithSender(sender))
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}

	if err := svc.NotifyStart(context.Background()); err != nil {
		t.Fatalf("delivery failure must not propagate, got %v", err)
	}
	logged := logBuf.String()
	if !strings.Contains(logged, "notification delivery failed") {
		t.Fatalf("expected delivery failure to be logged: %s", logged)
	}
	if strings.Contains(logged, "hooks.slack.com") || strings.Contains(logged, "SECRETTOKEN") {
		t.Fatalf("log output leaked the webhook endpoint: %s", logged)
	}
}

func TestJobListingFailurePropagates(t *testing.T) {
	sender := &fakeSender{}
	lister := &fakeLister{err: errors.New("boom")}
	svc := newService(t, lister, sender)

	if err := svc.NotifyCompletion(context.Background()); err == nil {
		t.Fatal("expected job listing error to propagate")
	}
	if len(sender.sent) != 0 {
		t.Fatalf("no message should be sent when listing fails, got %d", len(sender.sent))
	}
}

func TestNotifyCompletionRequiresToken(t *testing.T) {
	cfg := testConfig()
	cfg.GitHub.Token = ""
	svc, err := notify.NewService(cfg, testRunContext(), logging.NewNop(),
		notify.WithSender(&fakeSender{}))
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	if err := svc.NotifyCompletion(context.Background()); err == nil {
		t.Fatal("expected missing token error on the completion path")
	}
}

func TestNotifyTestReportsDeliveryError(t *testing.T) {
	sender := &fakeSender{err: errors.New("no_service")}
	svc := newService(t, &fakeLister{}, sender)

	if err := svc.NotifyTest(context.Background()); err == nil {
		t.Fatal("test notification should surface delivery errors")
	}
}
