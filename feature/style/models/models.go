package models

import (
	core "theme-sync/core/models"
	"theme-sync/core/reconcile"
)

// StyleRequest is the body of the style update endpoint.
type StyleRequest struct {
	StyleId int  `json:"StyleId" example:"54321"`
	DryRun  bool `json:"DryRun,omitempty"`
}

// ThemeMapping records how one distinct theme of the style was resolved.
type ThemeMapping struct {
	ThemeID        int    `json:"themeId"`
	PID            string `json:"pid,omitempty"`
	AttributeCount int    `json:"attributeCount"`
	Colorways      int    `json:"colorways"`
	Error          string `json:"error,omitempty"`
}

// UpdateSummary counts the effects of a style update.
type UpdateSummary struct {
	TotalColorways   int  `json:"totalColorways"`
	PatchedColorways int  `json:"patchedColorways"`
	SkippedColorways int  `json:"skippedColorways"`
	ThemesMapped     int  `json:"themesMapped"`
	ThemesSkipped    int  `json:"themesSkipped"`
	StyleUpdated     bool `json:"styleUpdated"`
}

// UpdateReport is the outcome of a style update.
type UpdateReport struct {
	Success       bool             `json:"success"`
	DryRun        bool             `json:"dryRun"`
	StyleID       int              `json:"styleId"`
	Style         core.StyleRecord `json:"style"`
	Themes        []ThemeMapping   `json:"themes"`
	UpdateSummary UpdateSummary    `json:"updateSummary"`
	StyleUpdate   reconcile.Result `json:"styleUpdateResult"`
	Timestamp     string           `json:"timestamp"`
}
