package schedule

import (
	"context"
	"errors"
	"fmt"

	"theme-sync/core/reconcile"
	"theme-sync/core/scheduler"
	"theme-sync/feature/theme/models"

	"go.uber.org/zap"
)

// ThemeUpdater updates one theme; satisfied by *theme.Service.
type ThemeUpdater interface {
	UpdateTheme(ctx context.Context, themeID int, opts reconcile.Options) (*models.UpdateReport, error)
}

// ThemeSyncJob updates each theme in turn. A failing theme is logged and the
// remaining themes still run; the job fails when any theme failed.
func ThemeSyncJob(updater ThemeUpdater, themeIDs []int, opts reconcile.Options, logger *zap.Logger) scheduler.Job {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context) (string, error) {
		var (
			failed      []error
			styles      int
			stylesFixed int
		)
		for _, id := range themeIDs {
			if err := ctx.Err(); err != nil {
				failed = append(failed, err)
				break
			}
			report, err := updater.UpdateTheme(ctx, id, opts)
			if err != nil {
				logger.Warn("Scheduled theme update failed", zap.Int("theme_id", id), zap.Error(err))
				failed = append(failed, fmt.Errorf("theme %d: %w", id, err))
				continue
			}
			styles += report.UpdateSummary.TotalStyles
			stylesFixed += report.UpdateSummary.StyleUpdatedCount
		}

		summary := fmt.Sprintf("%d/%d themes synced, %d styles checked, %d styles updated",
			len(themeIDs)-len(failed), len(themeIDs), styles, stylesFixed)
		return summary, errors.Join(failed...)
	}
}
