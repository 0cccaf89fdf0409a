// Package schedule runs theme updates on a cron schedule and exposes the
// schedule's state over HTTP.
package schedule
