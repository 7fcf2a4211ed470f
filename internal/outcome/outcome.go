// Package outcome reduces a workflow run's job list to a single terminal
// classification: success, failure, or cancelled, plus the identity of the
// first failing job and step.
//
// Two documented approximations are preserved on purpose. Jobs that have not
// completed are skipped on the assumption that the only incomplete job is the
// notifying job itself, and only the first failing job is reported even when
// several jobs of a parallel fan-out failed.
package outcome

import "chime/internal/github"

// Classification is the reduced outcome of a run. The conclusion is always
// one of success, failure, or cancelled; the Failed* fields are populated
// only when a failing job was found.
type Classification struct {
	Conclusion     github.Conclusion
	FailedJobID    int64
	FailedJobName  string
	FailedJobURL   string
	FailedStepName string
}

// Succeeded reports whether the run finished without a failing job.
func (c Classification) Succeeded() bool {
	return c.Conclusion == github.ConclusionSuccess
}

// Classify scans jobs in order and returns the run's classification. The
// conclusion starts as success and is downgraded only by evidence: the first
// completed job with a non-success conclusion decides the result. A cancelled
// job overrides the label to cancelled while keeping the failing job and step
// identity. An empty list classifies as success.
func Classify(jobs []github.Job) Classification {
	result := Classification{Conclusion: github.ConclusionSuccess}

	for _, job := range jobs {
		if job.Status != github.StatusCompleted {
			continue
		}
		if job.Conclusion == github.ConclusionSuccess {
			continue
		}

		result.Conclusion = github.ConclusionFailure
		result.FailedJobID = job.ID
		result.FailedJobName = job.Name
		result.FailedJobURL = job.HTMLURL
		result.FailedStepName = firstFailedStep(job.Steps)
		if job.Conclusion == github.ConclusionCancelled {
			result.Conclusion = github.ConclusionCancelled
		}
		break
	}

	return result
}

func firstFailedStep(steps []github.Step) string {
	for _, step := range steps {
		if step.Conclusion != github.ConclusionSuccess {
			return step.Name
		}
	}
	return ""
}
