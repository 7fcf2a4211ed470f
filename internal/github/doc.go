// Package github reads the workflow run context GitHub Actions provides
// through the environment and lists the run's jobs over the Actions REST API.
//
// Only the job-listing surface is implemented; job and step records are
// read-only inputs produced by GitHub and are never written back.
package github
