// Package notify orchestrates the lifecycle notifications: it decides which
// message variant a run gets and delivers it best-effort.
//
// Delivery failures are logged and swallowed so a chat outage can never fail
// the pipeline it reports on. Everything else (missing configuration, job
// listing errors) propagates to the process boundary.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"chime/internal/config"
	"chime/internal/github"
	"chime/internal/logging"
	"chime/internal/outcome"
	"chime/internal/slack"
)

// JobLister fetches the ordered job list of a workflow run.
type JobLister interface {
	ListRunJobs(ctx context.Context, repository string, runID int64) ([]github.Job, error)
}

// Sender delivers a built message.
type Sender interface {
	Send(ctx context.Context, msg slack.Message) error
}

// Service wires the run context, classifier, message builder, and delivery
// together for one invocation.
type Service struct {
	cfg     *config.Config
	runCtx  *github.Context
	builder *slack.Builder
	jobs    JobLister
	sender  Sender
	logger  *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithJobLister overrides the GitHub jobs client.
func WithJobLister(lister JobLister) ServiceOption {
	return func(s *Service) {
		if lister != nil {
			s.jobs = lister
		}
	}
}

// WithSender overrides the webhook delivery client.
func WithSender(sender Sender) ServiceOption {
	return func(s *Service) {
		if sender != nil {
			s.sender = sender
		}
	}
}

// NewService builds the notification service. The webhook URL is required
// here; the GitHub token is only checked when the completion path needs it.
func NewService(cfg *config.Config, runCtx *github.Context, logger *slog.Logger, opts ...ServiceOption) (*Service, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	svc := &Service{
		cfg:     cfg,
		runCtx:  runCtx,
		builder: slack.NewBuilder(cfg.Slack, runCtx),
		logger:  logger.With(logging.FieldComponent, "notify", logging.FieldRunID, runCtx.RunID),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.sender == nil {
		sender, err := slack.NewWebhookClient(cfg.Slack.WebhookURL.Value(), svc.requestTimeout())
		if err != nil {
			return nil, err
		}
		svc.sender = sender
	}
	return svc, nil
}

// NotifyStart emits the "workflow starting" message.
func (s *Service) NotifyStart(ctx context.Context) error {
	s.deliver(ctx, s.builder.Starting(), "starting")
	return nil
}

// NotifyCompletion fetches the run's jobs, classifies the outcome, and emits
// exactly one terminal message. Job listing failures propagate; delivery
// failures do not.
func (s *Service) NotifyCompletion(ctx context.Context) error {
	lister, err := s.jobLister()
	if err != nil {
		return err
	}
	jobs, err := lister.ListRunJobs(ctx, s.runCtx.Repository, s.runCtx.RunID)
	if err != nil {
		return fmt.Errorf("list workflow jobs: %w", err)
	}

	result := outcome.Classify(jobs)

	var msg slack.Message
	switch result.Conclusion {
	case github.ConclusionSuccess:
		msg = s.builder.Success()
	case github.ConclusionFailure:
		msg = s.builder.Failure(result.FailedJobID, result.FailedJobName, result.FailedJobURL, result.FailedStepName)
	case github.ConclusionCancelled:
		msg = s.builder.Cancelled()
	default:
		// Unreachable given the classifier's closed output set.
		s.logger.Warn("unknown run conclusion, not sending",
			logging.String("conclusion", string(result.Conclusion)))
		return nil
	}

	s.deliver(ctx, msg, string(result.Conclusion))
	return nil
}

// NotifyTest sends a test message and, unlike the lifecycle paths, reports
// the delivery error so the operator can see whether the webhook works.
func (s *Service) NotifyTest(ctx context.Context) error {
	return s.sender.Send(ctx, s.builder.Test())
}

// deliver sends best-effort: the error is logged under a correlation id and
// discarded.
func (s *Service) deliver(ctx context.Context, msg slack.Message, kind string) {
	logger := s.logger.With(
		logging.FieldDeliveryID, uuid.NewString(),
		"kind", kind,
		"channel", s.cfg.Slack.Channel,
	)
	if err := s.sender.Send(ctx, msg); err != nil {
		logger.Warn("notification delivery failed", logging.Error(err))
		return
	}
	logger.Info("notification delivered")
}

func (s *Service) jobLister() (JobLister, error) {
	if s.jobs != nil {
		return s.jobs, nil
	}
	client, err := github.New(s.cfg.GitHub.Token.Value(), s.cfg.GitHub.APIURL, s.requestTimeout())
	if err != nil {
		return nil, err
	}
	s.jobs = client
	return client, nil
}

func (s *Service) requestTimeout() time.Duration {
	return time.Duration(s.cfg.GitHub.RequestTimeout) * time.Second
}
