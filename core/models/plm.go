package models

// Colorway and style status codes used by PLM.
const (
	// StatusActive marks an active colorway and a provisional (pending) style.
	StatusActive = 1
	// StatusPromoted is the style status set once an active colorway justifies it.
	StatusPromoted = 2
)

// ThemeInfo is the subset of a PLM theme that travels with its colorways.
type ThemeInfo struct {
	ThemeID     int    `json:"themeId"`
	Name        string `json:"themeName"`
	Code        string `json:"themeCode"`
	Description string `json:"themeDescription"`
}

// ColorwayRecord is a single style colorway as seen by the sync pipeline.
type ColorwayRecord struct {
	ID           int        `json:"styleColorwayId"`
	StyleID      int        `json:"styleId"`
	ColorRangeID *int       `json:"colorrngId"`
	ThemeID      *int       `json:"themeId"`
	Status       int        `json:"colorwayStatus"`
	Code         string     `json:"colorwayCode"`
	Name         string     `json:"colorwayName"`
	Hex          string     `json:"hexValue"`
	UserField4   *int       `json:"colorwayUserField4"`
	Theme        *ThemeInfo `json:"theme"`
}

// IsActive reports whether the colorway counts as active for reconciliation.
func (c ColorwayRecord) IsActive() bool {
	return c.Status == StatusActive
}

// StyleRecord is the reconciliation target. Status and ThemeID are the only
// fields the engine mutates.
type StyleRecord struct {
	StyleID int  `json:"styleId"`
	Status  int  `json:"status"`
	ThemeID *int `json:"themeId"`
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

// StringPtr returns a pointer to v.
func StringPtr(v string) *string {
	return &v
}
