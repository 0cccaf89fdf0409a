package reconcile

import (
	"context"
	"errors"

	"theme-sync/core/models"
	"theme-sync/core/plm"
)

// ErrStyleNotFound is returned when the style being reconciled does not exist.
var ErrStyleNotFound = errors.New("style not found")

// StyleReader loads the reconciliation target.
type StyleReader interface {
	FetchStyle(ctx context.Context, styleID int) (*models.StyleRecord, error)
}

// StyleWriter applies a decision to PLM.
type StyleWriter interface {
	PatchStyle(ctx context.Context, styleID int, fields plm.StyleFields) error
	TriggerReindex(ctx context.Context, styleID int) error
}

// StyleStore is everything reconciliation needs from PLM.
type StyleStore interface {
	StyleReader
	StyleWriter
}

// Decision is the mutation required to bring a style in line with its colorways.
// It is computed fresh on every run and never stored.
type Decision struct {
	// StyleID identifies the style the decision applies to.
	StyleID int `json:"styleId"`

	// StatusUpdate is the new style status, nil when unchanged.
	StatusUpdate *int `json:"statusUpdate,omitempty"`

	// ThemeIDUpdate is the new style theme, nil when unchanged.
	ThemeIDUpdate *int `json:"themeIdUpdate,omitempty"`
}

// Changed reports whether the decision carries any mutation.
func (d Decision) Changed() bool {
	return d.StatusUpdate != nil || d.ThemeIDUpdate != nil
}

// Fields returns the PATCH body holding only the changed fields.
func (d Decision) Fields() plm.StyleFields {
	return plm.StyleFields{Status: d.StatusUpdate, ThemeID: d.ThemeIDUpdate}
}

// Outcome classifies what happened to a single style.
type Outcome string

const (
	// OutcomeUpdated means the style was patched.
	OutcomeUpdated Outcome = "updated"
	// OutcomePlanned means a change was computed but not applied (dry run).
	OutcomePlanned Outcome = "planned"
	// OutcomeUnchanged means no rule fired.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeNotFound means the style does not exist.
	OutcomeNotFound Outcome = "not_found"
	// OutcomeFailed means reading or patching the style failed.
	OutcomeFailed Outcome = "failed"
)

// Result is the per-style record of a reconciliation run.
type Result struct {
	// StyleID identifies the style.
	StyleID int `json:"styleId"`

	// Outcome classifies the run.
	Outcome Outcome `json:"outcome"`

	// Decision is the computed mutation; nil when the style could not be read.
	Decision *Decision `json:"decision,omitempty"`

	// Reindexed is true when the re-index trigger succeeded after a patch.
	Reindexed bool `json:"reindexed"`

	// ReindexError holds the trigger failure. The patch is not rolled back.
	ReindexError string `json:"reindexError,omitempty"`

	// Error holds the read or patch failure.
	Error string `json:"error,omitempty"`
}

// Summary provides aggregate counts for a batch of styles.
type Summary struct {
	// Checked is the number of styles processed.
	Checked int `json:"checked"`

	// Updated counts styles that were patched.
	Updated int `json:"updated"`

	// Planned counts styles with a change withheld by dry run.
	Planned int `json:"planned"`

	// NotFound counts styles missing upstream.
	NotFound int `json:"notFound"`

	// Failed counts styles whose read or patch failed.
	Failed int `json:"failed"`
}

// Report is the outcome of reconciling several styles.
type Report struct {
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// Options controls reconcile behavior.
type Options struct {
	// DryRun computes decisions without patching or re-indexing.
	DryRun bool
}
