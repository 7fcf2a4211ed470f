// Package slack builds and delivers incoming-webhook messages describing a
// workflow run's lifecycle.
//
// Message building is pure: a Builder seeded with the run context produces one
// of four fixed variants (starting, success, failure, cancelled) that share
// the same identity block (channel, username, icon, author, footer). Delivery
// is a single POST with no retry; the caller decides whether a failed
// delivery matters.
package slack
