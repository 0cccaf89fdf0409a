package checks

import (
	"context"
	"fmt"
	"time"

	"theme-sync/core/models"
	"theme-sync/core/token"
)

// Status is the outcome of a single check.
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Report strictly types the result of one upstream check.
type Report struct {
	Name       string `json:"name"`
	Status     Status `json:"status"`
	Detail     string `json:"detail,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

// Check probes one upstream dependency and describes what it saw.
type Check struct {
	Name  string
	Probe func(ctx context.Context) (string, error)
}

// Run executes c and times it.
func Run(ctx context.Context, c Check) Report {
	start := time.Now()
	detail, err := c.Probe(ctx)
	report := Report{
		Name:       c.Name,
		Status:     StatusOK,
		Detail:     detail,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		report.Status = StatusError
		report.Error = err.Error()
	}
	return report
}

// CredentialSource acquires the ION API credential.
type CredentialSource interface {
	Credential(ctx context.Context) (*token.Credential, error)
}

// Credential verifies that a bearer token can be obtained.
func Credential(src CredentialSource) Check {
	return Check{
		Name: "credential",
		Probe: func(ctx context.Context) (string, error) {
			cred, err := src.Credential(ctx)
			if err != nil {
				return "", err
			}
			return "expires " + cred.ExpiresAt.UTC().Format(time.RFC3339), nil
		},
	}
}

// StyleReader reads a style from PLM.
type StyleReader interface {
	FetchStyle(ctx context.Context, styleID int) (*models.StyleRecord, error)
}

// PLM verifies that the style entity set answers. Style 0 never exists, so a
// reachable service returns an empty result.
func PLM(reader StyleReader) Check {
	return Check{
		Name: "plm",
		Probe: func(ctx context.Context) (string, error) {
			if _, err := reader.FetchStyle(ctx, 0); err != nil {
				return "", err
			}
			return "style entity set reachable", nil
		},
	}
}

// ValueListSource loads entity value lists from IDM.
type ValueListSource interface {
	FetchValueLists(ctx context.Context, entityName string) (models.ValueLists, error)
}

// IDM verifies that entity's value lists load.
func IDM(src ValueListSource, entity string) Check {
	return Check{
		Name: "idm",
		Probe: func(ctx context.Context) (string, error) {
			lists, err := src.FetchValueLists(ctx, entity)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s: %d value lists", entity, len(lists)), nil
		},
	}
}
