package schedule_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"theme-sync/core/reconcile"
	"theme-sync/core/scheduler"
	"theme-sync/feature/schedule"
	"theme-sync/feature/theme/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUpdater struct {
	mock.Mock
}

func (m *mockUpdater) UpdateTheme(ctx context.Context, themeID int, opts reconcile.Options) (*models.UpdateReport, error) {
	args := m.Called(ctx, themeID, opts)
	report, _ := args.Get(0).(*models.UpdateReport)
	return report, args.Error(1)
}

func report(styles, updated int) *models.UpdateReport {
	return &models.UpdateReport{UpdateSummary: models.UpdateSummary{TotalStyles: styles, StyleUpdatedCount: updated}}
}

func TestThemeSyncJob(t *testing.T) {
	updater := new(mockUpdater)
	opts := reconcile.Options{DryRun: true}
	updater.On("UpdateTheme", mock.Anything, 1174, opts).Return(report(3, 1), nil)
	updater.On("UpdateTheme", mock.Anything, 1175, opts).Return(nil, errors.New("no styles"))
	updater.On("UpdateTheme", mock.Anything, 1176, opts).Return(report(2, 2), nil)

	job := schedule.ThemeSyncJob(updater, []int{1174, 1175, 1176}, opts, nil)
	summary, err := job(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme 1175")
	assert.Equal(t, "2/3 themes synced, 5 styles checked, 3 styles updated", summary)
	updater.AssertExpectations(t)
}

func TestThemeSyncJob_Cancelled(t *testing.T) {
	updater := new(mockUpdater)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := schedule.ThemeSyncJob(updater, []int{1174}, reconcile.Options{}, nil)(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	updater.AssertNotCalled(t, "UpdateTheme", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlers(t *testing.T) {
	updater := new(mockUpdater)
	updater.On("UpdateTheme", mock.Anything, 1174, reconcile.Options{}).Return(report(1, 0), nil)

	s, err := scheduler.New("@daily", schedule.ThemeSyncJob(updater, []int{1174}, reconcile.Options{}, nil), nil)
	require.NoError(t, err)

	feature := schedule.NewFeature(s, nil)
	assert.True(t, feature.IsEnabled())
	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/schedule/run", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var run scheduler.Run
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&run))
	assert.Equal(t, "1/1 themes synced, 1 styles checked, 0 styles updated", run.Summary)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/schedule", nil))
	require.NoError(t, err)
	var status scheduler.Status
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "@daily", status.Schedule)
	require.NotNil(t, status.LastRun)
}

func TestFeatureDisabled(t *testing.T) {
	assert.False(t, schedule.NewFeature(nil, nil).IsEnabled())
}
