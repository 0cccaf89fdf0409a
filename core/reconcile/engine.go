package reconcile

import "theme-sync/core/models"

// Reconcile computes the mutation a style needs given its colorways.
// Colorways owned by other styles are ignored. The status and theme rules are
// independent: either, both or neither may fire.
func Reconcile(style models.StyleRecord, colorways []models.ColorwayRecord) Decision {
	sets := collectThemes(style.StyleID, colorways)
	return Decision{
		StyleID:       style.StyleID,
		StatusUpdate:  promoteStatus(style, sets),
		ThemeIDUpdate: reassignTheme(style, sets),
	}
}
