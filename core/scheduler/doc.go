// Package scheduler runs a job on a cron schedule without overlapping runs
// and remembers the outcome of the last one.
package scheduler
