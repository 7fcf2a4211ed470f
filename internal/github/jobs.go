package github

// Status reports whether a job or step has finished at all, as opposed to how
// it finished.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Conclusion is the terminal outcome label of a completed job or step.
type Conclusion string

const (
	ConclusionSuccess        Conclusion = "success"
	ConclusionFailure        Conclusion = "failure"
	ConclusionCancelled      Conclusion = "cancelled"
	ConclusionSkipped        Conclusion = "skipped"
	ConclusionTimedOut       Conclusion = "timed_out"
	ConclusionNeutral        Conclusion = "neutral"
	ConclusionActionRequired Conclusion = "action_required"
)

// Step is the smallest reported unit of work within a job.
type Step struct {
	Name       string     `json:"name"`
	Number     int        `json:"number"`
	Status     Status     `json:"status"`
	Conclusion Conclusion `json:"conclusion"`
}

// Job is a named unit of work within a workflow run, composed of ordered steps.
type Job struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Status     Status     `json:"status"`
	Conclusion Conclusion `json:"conclusion"`
	HTMLURL    string     `json:"html_url"`
	Steps      []Step     `json:"steps"`
}

type jobsResponse struct {
	TotalCount int   `json:"total_count"`
	Jobs       []Job `json:"jobs"`
}
