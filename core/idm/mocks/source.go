package mocks

import (
	"context"

	"theme-sync/core/models"

	"github.com/stretchr/testify/mock"
)

// Source is a mock implementation of idm.Source
type Source struct {
	mock.Mock
}

func (m *Source) FetchAttributes(ctx context.Context, pid string) ([]models.AttributeRecord, error) {
	args := m.Called(ctx, pid)
	if attrs, ok := args.Get(0).([]models.AttributeRecord); ok {
		return attrs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Source) FetchValueLists(ctx context.Context, entityName string) (models.ValueLists, error) {
	args := m.Called(ctx, entityName)
	if lists, ok := args.Get(0).(models.ValueLists); ok {
		return lists, args.Error(1)
	}
	return nil, args.Error(1)
}
