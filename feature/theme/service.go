package theme

import (
	"context"
	"fmt"
	"time"

	"theme-sync/core/idm"
	core "theme-sync/core/models"
	"theme-sync/core/plm"
	"theme-sync/core/reconcile"
	"theme-sync/core/server"
	"theme-sync/feature/theme/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service orchestrates theme reads and updates across PLM and IDM.
type Service struct {
	store       plm.Store
	mapper      *idm.Mapper
	logger      *zap.Logger
	concurrency int
	now         func() time.Time
}

// NewService creates a new theme service. concurrency bounds parallel theme
// reads in GetThemes.
func NewService(store plm.Store, mapper *idm.Mapper, concurrency int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Service{
		store:       store,
		mapper:      mapper,
		logger:      logger,
		concurrency: concurrency,
		now:         time.Now,
	}
}

func themeInfo(colorways []core.ColorwayRecord) *core.ThemeInfo {
	if len(colorways) == 0 || colorways[0].Theme == nil {
		return nil
	}
	info := *colorways[0].Theme
	return &info
}

// GetTheme returns the theme's colorways grouped by style.
func (s *Service) GetTheme(ctx context.Context, themeID int) (*models.ThemeReport, error) {
	colorways, err := s.store.FetchColorwaysForTheme(ctx, themeID)
	if err != nil {
		return nil, err
	}
	groups := plm.GroupByStyle(colorways)

	s.logger.Info("Theme fetched",
		zap.Int("theme_id", themeID),
		zap.Int("colorways", len(colorways)),
		zap.Int("styles", len(groups)),
	)

	return &models.ThemeReport{
		Success:   true,
		ThemeID:   themeID,
		ThemeInfo: themeInfo(colorways),
		Summary: models.ThemeSummary{
			TotalStyleColorways: len(colorways),
			TotalStyles:         len(groups),
		},
		StyleColorways: colorways,
		GroupedByStyle: groups,
		Timestamp:      server.Timestamp(s.now()),
	}, nil
}

// GetThemes fetches several themes in parallel. The first failure cancels the
// remaining reads and is returned.
func (s *Service) GetThemes(ctx context.Context, themeIDs []int) (*models.ThemesReport, error) {
	reports := make([]models.ThemeReport, len(themeIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, id := range themeIDs {
		i, id := i, id
		g.Go(func() error {
			report, err := s.GetTheme(gctx, id)
			if err != nil {
				return fmt.Errorf("theme %d: %w", id, err)
			}
			reports[i] = *report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range reports {
		total += r.Summary.TotalStyleColorways
	}
	return &models.ThemesReport{
		Success:             true,
		TotalThemes:         len(themeIDs),
		TotalStyleColorways: total,
		Themes:              reports,
		Timestamp:           server.Timestamp(s.now()),
	}, nil
}

// resolveAttributes maps the attributes of the theme whose description holds the PID.
func (s *Service) resolveAttributes(ctx context.Context, info *core.ThemeInfo) (*idm.Mapping, error) {
	if info == nil || info.Description == "" {
		return nil, ErrNoThemeDescription
	}
	return s.mapper.Resolve(ctx, info.Description)
}

// GetThemeAttributes returns the theme with its mapped IDM attributes. IDM
// failures are reported on the result rather than failing the request.
func (s *Service) GetThemeAttributes(ctx context.Context, themeID int) (*models.AttributesReport, error) {
	base, err := s.GetTheme(ctx, themeID)
	if err != nil {
		return nil, err
	}

	report := &models.AttributesReport{
		ThemeReport:     *base,
		ThemeAttributes: []core.MappedAttribute{},
	}

	mapping, err := s.resolveAttributes(ctx, base.ThemeInfo)
	if err != nil {
		s.logger.Warn("Theme attributes unavailable", zap.Int("theme_id", themeID), zap.Error(err))
		report.Error = err.Error()
		return report, nil
	}

	report.ParsedPID = &mapping.PID
	report.ThemeAttributes = mapping.Mapped
	report.Summary.AttributeCount = len(mapping.Attributes)
	report.Summary.ValueListCount = mapping.ValueListCount
	return report, nil
}

// FormattedAttributes returns the flat export of the attributes behind pid.
func (s *Service) FormattedAttributes(ctx context.Context, pid string) (*idm.FormattedAttributes, error) {
	return s.mapper.Format(ctx, pid, s.now())
}

// UpdateTheme writes the theme's attribute descriptions onto every colorway
// using it, one PATCH per style, then reconciles each affected style.
func (s *Service) UpdateTheme(ctx context.Context, themeID int, opts reconcile.Options) (*models.UpdateReport, error) {
	colorways, err := s.store.FetchColorwaysForTheme(ctx, themeID)
	if err != nil {
		return nil, err
	}
	groups := plm.GroupByStyle(colorways)
	if len(groups) == 0 {
		return nil, ErrNoStyles
	}
	info := themeInfo(colorways)

	mapping, err := s.resolveAttributes(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoMappedAttributes, err)
	}
	if len(mapping.Mapped) == 0 {
		return nil, ErrNoMappedAttributes
	}

	descriptions := plm.ExtractDescriptions(mapping.Mapped)
	report := &models.UpdateReport{
		DryRun:               opts.DryRun,
		ThemeID:              themeID,
		ThemeInfo:            info,
		StyleColorwayResults: make([]models.StylePatchResult, 0, len(groups)),
	}

	for _, g := range groups {
		result := models.StylePatchResult{StyleID: g.StyleID}
		patches := plm.BuildBatchPatch(g.Colorways, descriptions)

		if !opts.DryRun {
			if err := s.store.PatchColorways(ctx, patches); err != nil {
				s.logger.Error("Colorway patch failed", zap.Int("style_id", g.StyleID), zap.Error(err))
				result.Error = err.Error()
				report.StyleColorwayResults = append(report.StyleColorwayResults, result)
				report.UpdateSummary.FailedStyles++
				continue
			}
		}

		result.Success = true
		result.UpdatedCount = len(patches)
		report.StyleColorwayResults = append(report.StyleColorwayResults, result)
		report.UpdateSummary.SuccessfulStyles++
		report.UpdateSummary.TotalUpdatedStyleColorways += len(patches)
	}

	report.StyleUpdateResults = reconcile.ReconcileStyles(ctx, s.store, groups, opts)
	report.UpdateSummary.TotalStyles = len(groups)
	report.UpdateSummary.StyleUpdatedCount = report.StyleUpdateResults.Summary.Updated
	report.Success = report.UpdateSummary.FailedStyles == 0
	report.Timestamp = server.Timestamp(s.now())

	s.logger.Info("Theme update completed",
		zap.Int("theme_id", themeID),
		zap.Bool("dry_run", opts.DryRun),
		zap.Int("styles", len(groups)),
		zap.Int("failed_styles", report.UpdateSummary.FailedStyles),
		zap.Int("styles_updated", report.UpdateSummary.StyleUpdatedCount),
	)
	return report, nil
}
