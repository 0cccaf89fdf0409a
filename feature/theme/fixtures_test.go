package theme_test

import (
	"theme-sync/core/idm"
	idmmocks "theme-sync/core/idm/mocks"
	"theme-sync/core/models"
	plmmocks "theme-sync/core/plm/mocks"
	"theme-sync/feature/theme"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const (
	testThemeID = 1174
	testPID     = "Theme_Attributes-115-0-LATEST"
)

func testTheme() *models.ThemeInfo {
	return &models.ThemeInfo{ThemeID: testThemeID, Name: "Summer Denim", Code: "SD26", Description: testPID}
}

// themeColorways spans two styles; style 100 has one active and one passive colorway.
func themeColorways() []models.ColorwayRecord {
	return []models.ColorwayRecord{
		{ID: 10, StyleID: 100, ThemeID: models.IntPtr(testThemeID), Status: models.StatusActive, Theme: testTheme()},
		{ID: 11, StyleID: 100, ThemeID: models.IntPtr(testThemeID), Status: 2, Theme: testTheme()},
		{ID: 20, StyleID: 200, ThemeID: models.IntPtr(testThemeID), Status: models.StatusActive, Theme: testTheme()},
	}
}

func themeAttributes() []models.AttributeRecord {
	return []models.AttributeRecord{
		{Name: "Tema_Adi", Type: models.AttributeString, RawValue: "Summer Denim"},
		{Name: "Cluster", Type: models.AttributeString, RawValue: "C1"},
		{Name: "LifeStyleGrup", Type: models.AttributeString, RawValue: "003"},
		{Name: "InStoreDate", Type: models.AttributeDate, RawValue: "2026-03-15"},
	}
}

func themeLists() models.ValueLists {
	return models.ValueLists{
		"Cluster": {
			Name:    "Cluster",
			Entries: []models.ValueListEntry{{Code: "C1", Description: "Urban"}},
		},
	}
}

type fixture struct {
	store   *plmmocks.Store
	source  *idmmocks.Source
	service *theme.Service
}

func newFixture() *fixture {
	store := new(plmmocks.Store)
	source := new(idmmocks.Source)
	mapper := idm.NewMapper(source, 0, zap.NewNop())
	return &fixture{
		store:   store,
		source:  source,
		service: theme.NewService(store, mapper, 2, zap.NewNop()),
	}
}

func (f *fixture) withIDM() {
	f.source.On("FetchAttributes", mock.Anything, testPID).Return(themeAttributes(), nil)
	f.source.On("FetchValueLists", mock.Anything, "Theme_Attributes").Return(themeLists(), nil)
}
