package reconcile

import (
	"testing"

	"theme-sync/core/models"

	"github.com/stretchr/testify/assert"
)

func colorway(styleID, status int, themeID *int) models.ColorwayRecord {
	return models.ColorwayRecord{StyleID: styleID, Status: status, ThemeID: themeID}
}

func active(themeID int) models.ColorwayRecord {
	return colorway(5, models.StatusActive, models.IntPtr(themeID))
}

func passive(themeID int) models.ColorwayRecord {
	return colorway(5, 2, models.IntPtr(themeID))
}

func style(status int, themeID *int) models.StyleRecord {
	return models.StyleRecord{StyleID: 5, Status: status, ThemeID: themeID}
}

func TestReconcile_StatusOnlyForProvisionalStyles(t *testing.T) {
	colorways := []models.ColorwayRecord{active(7), active(9)}

	for _, status := range []int{0, 2, 3, 99} {
		d := Reconcile(style(status, models.IntPtr(7)), colorways)
		assert.Nil(t, d.StatusUpdate, "status %d", status)
	}
}

func TestReconcile_StatusPromotion(t *testing.T) {
	tests := []struct {
		name      string
		colorways []models.ColorwayRecord
		promoted  bool
	}{
		{"ActiveTheme", []models.ColorwayRecord{active(7)}, true},
		{"RetiredAndOther", []models.ColorwayRecord{active(RetiredThemeID), active(7)}, true},
		{"RetiredOnly", []models.ColorwayRecord{active(RetiredThemeID)}, false},
		{"PassiveOnly", []models.ColorwayRecord{passive(7)}, false},
		{"ActiveWithoutTheme", []models.ColorwayRecord{colorway(5, models.StatusActive, nil)}, false},
		{"NoColorways", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Reconcile(style(models.StatusActive, nil), tt.colorways)
			if tt.promoted {
				assert.Equal(t, models.IntPtr(models.StatusPromoted), d.StatusUpdate)
			} else {
				assert.Nil(t, d.StatusUpdate)
			}
		})
	}
}

func TestReconcile_ThemeKeptWhenActiveColorwayMatches(t *testing.T) {
	colorways := []models.ColorwayRecord{active(3), active(3), passive(9)}

	d := Reconcile(style(2, models.IntPtr(3)), colorways)
	assert.Nil(t, d.ThemeIDUpdate)

	// the retired theme is kept as well when an active colorway carries it
	d = Reconcile(style(2, models.IntPtr(RetiredThemeID)), []models.ColorwayRecord{active(RetiredThemeID), active(7)})
	assert.Nil(t, d.ThemeIDUpdate)
}

func TestReconcile_ThemeTiers(t *testing.T) {
	tests := []struct {
		name      string
		current   *int
		colorways []models.ColorwayRecord
		want      *int
	}{
		{"ActiveBeatsRetired", nil, []models.ColorwayRecord{active(RetiredThemeID), active(7)}, models.IntPtr(7)},
		{"ActiveRetiredOnly", nil, []models.ColorwayRecord{active(RetiredThemeID)}, models.IntPtr(RetiredThemeID)},
		{"PassiveBeatsRetired", nil, []models.ColorwayRecord{passive(RetiredThemeID), passive(9)}, models.IntPtr(9)},
		{"PassiveRetiredOnly", models.IntPtr(4), []models.ColorwayRecord{passive(RetiredThemeID)}, models.IntPtr(RetiredThemeID)},
		{"ActiveRetiredBeatsPassive", nil, []models.ColorwayRecord{passive(9), active(RetiredThemeID)}, models.IntPtr(RetiredThemeID)},
		{"FirstEncounteredWins", models.IntPtr(4), []models.ColorwayRecord{active(8), active(7)}, models.IntPtr(8)},
		{"CurrentOnlyOnPassive", models.IntPtr(9), []models.ColorwayRecord{passive(9), active(11)}, models.IntPtr(11)},
		{"NoColorways", models.IntPtr(4), nil, nil},
		{"NoThemes", nil, []models.ColorwayRecord{colorway(5, 1, nil), colorway(5, 2, nil)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Reconcile(style(2, tt.current), tt.colorways)
			assert.Equal(t, tt.want, d.ThemeIDUpdate)
		})
	}
}

func TestReconcile_IgnoresOtherStyles(t *testing.T) {
	colorways := []models.ColorwayRecord{
		colorway(6, models.StatusActive, models.IntPtr(7)),
		colorway(6, 2, models.IntPtr(8)),
	}

	d := Reconcile(style(models.StatusActive, nil), colorways)
	assert.False(t, d.Changed())
}

func TestReconcile_EndToEndScenario(t *testing.T) {
	d := Reconcile(
		models.StyleRecord{StyleID: 5, Status: 1, ThemeID: models.IntPtr(3)},
		[]models.ColorwayRecord{{StyleID: 5, Status: 1, ThemeID: models.IntPtr(3)}},
	)

	assert.Equal(t, 5, d.StyleID)
	assert.Equal(t, models.IntPtr(2), d.StatusUpdate)
	assert.Nil(t, d.ThemeIDUpdate)
}

func TestThemeTiers_Isolated(t *testing.T) {
	sets := themeSets{
		active:  []int{RetiredThemeID},
		passive: []int{RetiredThemeID, 9},
	}

	want := []struct {
		id int
		ok bool
	}{
		{0, false},
		{RetiredThemeID, true},
		{9, true},
		{RetiredThemeID, true},
	}

	assert.Len(t, themeTiers, len(want))
	for i, tier := range themeTiers {
		id, ok := tier.pick(sets)
		assert.Equal(t, want[i].ok, ok, tier.name)
		assert.Equal(t, want[i].id, id, tier.name)
	}
}

func TestCollectThemes_Distinct(t *testing.T) {
	sets := collectThemes(5, []models.ColorwayRecord{active(3), active(3), active(4), passive(4), passive(4), colorway(5, 1, nil)})

	assert.Equal(t, []int{3, 4}, sets.active)
	assert.Equal(t, []int{4}, sets.passive)
}

func TestDecision_Fields(t *testing.T) {
	d := Decision{StyleID: 5, ThemeIDUpdate: models.IntPtr(7)}

	assert.True(t, d.Changed())
	fields := d.Fields()
	assert.Nil(t, fields.Status)
	assert.Equal(t, models.IntPtr(7), fields.ThemeID)

	assert.False(t, Decision{StyleID: 5}.Changed())
	assert.True(t, Decision{StyleID: 5}.Fields().Empty())
}
