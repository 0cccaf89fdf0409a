package mocks

import (
	"context"

	"theme-sync/core/models"
	"theme-sync/core/plm"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of plm.Store
type Store struct {
	mock.Mock
}

func (m *Store) FetchColorwaysForTheme(ctx context.Context, themeID int) ([]models.ColorwayRecord, error) {
	args := m.Called(ctx, themeID)
	if cws, ok := args.Get(0).([]models.ColorwayRecord); ok {
		return cws, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) FetchStyle(ctx context.Context, styleID int) (*models.StyleRecord, error) {
	args := m.Called(ctx, styleID)
	if style, ok := args.Get(0).(*models.StyleRecord); ok {
		return style, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) FetchStyleWithColorways(ctx context.Context, styleID int) (*models.StyleRecord, []models.ColorwayRecord, error) {
	args := m.Called(ctx, styleID)
	style, _ := args.Get(0).(*models.StyleRecord)
	cws, _ := args.Get(1).([]models.ColorwayRecord)
	return style, cws, args.Error(2)
}

func (m *Store) PatchStyle(ctx context.Context, styleID int, fields plm.StyleFields) error {
	args := m.Called(ctx, styleID, fields)
	return args.Error(0)
}

func (m *Store) PatchColorways(ctx context.Context, patches []plm.ColorwayPatch) error {
	args := m.Called(ctx, patches)
	return args.Error(0)
}

func (m *Store) TriggerReindex(ctx context.Context, styleID int) error {
	args := m.Called(ctx, styleID)
	return args.Error(0)
}
