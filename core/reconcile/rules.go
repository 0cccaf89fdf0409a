package reconcile

import "theme-sync/core/models"

// RetiredThemeID is the cancelled theme. It never wins over another theme in
// the same candidate set.
const RetiredThemeID = 1172

// themeSets holds the distinct theme ids of a style's colorways, split by
// colorway activity, in first-encountered order.
type themeSets struct {
	active  []int
	passive []int
}

func collectThemes(styleID int, colorways []models.ColorwayRecord) themeSets {
	var sets themeSets
	seenActive := make(map[int]struct{})
	seenPassive := make(map[int]struct{})

	for _, cw := range colorways {
		if cw.StyleID != styleID || cw.ThemeID == nil {
			continue
		}
		id := *cw.ThemeID
		if cw.IsActive() {
			if _, ok := seenActive[id]; !ok {
				seenActive[id] = struct{}{}
				sets.active = append(sets.active, id)
			}
			continue
		}
		if _, ok := seenPassive[id]; !ok {
			seenPassive[id] = struct{}{}
			sets.passive = append(sets.passive, id)
		}
	}
	return sets
}

func firstNotRetired(ids []int) (int, bool) {
	for _, id := range ids {
		if id != RetiredThemeID {
			return id, true
		}
	}
	return 0, false
}

func retiredOnly(ids []int) (int, bool) {
	for _, id := range ids {
		if id == RetiredThemeID {
			return RetiredThemeID, true
		}
	}
	return 0, false
}

func contains(ids []int, target int) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

// themeTier is one candidate source for a new style theme.
type themeTier struct {
	name string
	pick func(themeSets) (int, bool)
}

// themeTiers are evaluated in order; the first tier that yields a theme wins.
var themeTiers = []themeTier{
	{"active", func(s themeSets) (int, bool) { return firstNotRetired(s.active) }},
	{"active_retired", func(s themeSets) (int, bool) { return retiredOnly(s.active) }},
	{"passive", func(s themeSets) (int, bool) { return firstNotRetired(s.passive) }},
	{"passive_retired", func(s themeSets) (int, bool) { return retiredOnly(s.passive) }},
}

// promoteStatus moves a provisional style to promoted once an active colorway
// carries a theme other than the retired one.
func promoteStatus(style models.StyleRecord, sets themeSets) *int {
	if style.Status != models.StatusActive {
		return nil
	}
	if _, ok := firstNotRetired(sets.active); !ok {
		return nil
	}
	status := models.StatusPromoted
	return &status
}

// reassignTheme picks a new style theme unless an active colorway still
// justifies the current one.
func reassignTheme(style models.StyleRecord, sets themeSets) *int {
	if style.ThemeID != nil && contains(sets.active, *style.ThemeID) {
		return nil
	}
	for _, tier := range themeTiers {
		if id, ok := tier.pick(sets); ok {
			return &id
		}
	}
	return nil
}
