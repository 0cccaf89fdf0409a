package plm

import (
	"context"

	"theme-sync/core/models"
)

// StyleFields is the body of a style PATCH. Only non-nil fields are sent.
type StyleFields struct {
	Status  *int `json:"Status,omitempty"`
	ThemeID *int `json:"ThemeId,omitempty"`
}

// Empty reports whether no field is set.
func (f StyleFields) Empty() bool {
	return f.Status == nil && f.ThemeID == nil
}

// Reader reads styles and colorways from PLM.
type Reader interface {
	// FetchColorwaysForTheme returns every colorway referencing themeID.
	// No match yields an empty slice, not an error.
	FetchColorwaysForTheme(ctx context.Context, themeID int) ([]models.ColorwayRecord, error)
	// FetchStyle returns the style or nil when it does not exist.
	FetchStyle(ctx context.Context, styleID int) (*models.StyleRecord, error)
	// FetchStyleWithColorways returns the style and all of its colorways, or a
	// nil style when it does not exist.
	FetchStyleWithColorways(ctx context.Context, styleID int) (*models.StyleRecord, []models.ColorwayRecord, error)
}

// Writer mutates PLM records.
type Writer interface {
	PatchStyle(ctx context.Context, styleID int, fields StyleFields) error
	// PatchColorways applies a batch of colorway patches in one call.
	PatchColorways(ctx context.Context, patches []ColorwayPatch) error
	// TriggerReindex schedules a search-index refresh for the style.
	TriggerReindex(ctx context.Context, styleID int) error
}

// Store is the full PLM surface used by the sync flows.
type Store interface {
	Reader
	Writer
}
