package models

import (
	core "theme-sync/core/models"
	"theme-sync/core/plm"
	"theme-sync/core/reconcile"
)

// ThemeRequest is the body of the single-theme endpoints.
type ThemeRequest struct {
	ThemeId int  `json:"ThemeId" example:"1174"`
	DryRun  bool `json:"DryRun,omitempty"`
}

// ThemesRequest is the body of the multi-theme endpoint.
type ThemesRequest struct {
	ThemeIds []int `json:"ThemeIds" example:"1174,1175"`
}

// ThemeSummary counts what a theme query returned.
type ThemeSummary struct {
	TotalStyleColorways int `json:"totalStyleColorways"`
	TotalStyles         int `json:"totalStyles"`
	AttributeCount      int `json:"attributeCount,omitempty"`
	ValueListCount      int `json:"valueListCount,omitempty"`
}

// ThemeReport is a theme with its colorways grouped by style.
type ThemeReport struct {
	Success        bool                  `json:"success"`
	ThemeID        int                   `json:"themeId"`
	ThemeInfo      *core.ThemeInfo       `json:"themeInfo"`
	Summary        ThemeSummary          `json:"summary"`
	StyleColorways []core.ColorwayRecord `json:"styleColorways"`
	GroupedByStyle []plm.StyleGroup      `json:"groupedByStyle"`
	Timestamp      string                `json:"timestamp"`
}

// AttributesReport extends ThemeReport with the theme's IDM attributes.
// Error is set when the attributes could not be resolved; the PLM part is
// still returned.
type AttributesReport struct {
	ThemeReport
	ParsedPID       *core.ClassificationID `json:"parsedPid"`
	ThemeAttributes []core.MappedAttribute `json:"themeAttributes"`
	Error           string                 `json:"error,omitempty"`
}

// ThemesReport aggregates several theme queries.
type ThemesReport struct {
	Success             bool          `json:"success"`
	TotalThemes         int           `json:"totalThemes"`
	TotalStyleColorways int           `json:"totalStyleColorways"`
	Themes              []ThemeReport `json:"themes"`
	Timestamp           string        `json:"timestamp"`
}

// StylePatchResult is the colorway PATCH outcome for one style.
type StylePatchResult struct {
	StyleID      int    `json:"styleId"`
	Success      bool   `json:"success"`
	UpdatedCount int    `json:"updatedCount"`
	Error        string `json:"error,omitempty"`
}

// UpdateSummary counts the effects of a theme update.
type UpdateSummary struct {
	TotalStyles                int `json:"totalStyles"`
	SuccessfulStyles           int `json:"successfulStyles"`
	FailedStyles               int `json:"failedStyles"`
	TotalUpdatedStyleColorways int `json:"totalUpdatedStyleColorways"`
	StyleUpdatedCount          int `json:"styleUpdatedCount"`
}

// UpdateReport is the outcome of a theme update.
type UpdateReport struct {
	Success              bool               `json:"success"`
	DryRun               bool               `json:"dryRun"`
	ThemeID              int                `json:"themeId"`
	ThemeInfo            *core.ThemeInfo    `json:"themeInfo"`
	UpdateSummary        UpdateSummary      `json:"updateSummary"`
	StyleColorwayResults []StylePatchResult `json:"styleColorwayResults"`
	StyleUpdateResults   reconcile.Report   `json:"styleUpdateResults"`
	Timestamp            string             `json:"timestamp"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Success   bool   `json:"success"`
	Service   string `json:"service"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
