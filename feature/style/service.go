package style

import (
	"context"
	"errors"
	"fmt"
	"time"

	"theme-sync/core/idm"
	core "theme-sync/core/models"
	"theme-sync/core/plm"
	"theme-sync/core/reconcile"
	"theme-sync/core/server"
	"theme-sync/feature/style/models"

	"go.uber.org/zap"
)

var errNoDescription = errors.New("theme has no description")

// Service updates a single style from the attributes of its colorways' themes.
type Service struct {
	store  plm.Store
	mapper *idm.Mapper
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new style service.
func NewService(store plm.Store, mapper *idm.Mapper, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, mapper: mapper, logger: logger, now: time.Now}
}

// distinctThemes returns the theme ids of colorways in order of first appearance,
// with the first ThemeInfo seen for each.
func distinctThemes(colorways []core.ColorwayRecord) ([]int, map[int]*core.ThemeInfo) {
	ids := make([]int, 0)
	infos := make(map[int]*core.ThemeInfo)
	for _, cw := range colorways {
		if cw.ThemeID == nil {
			continue
		}
		id := *cw.ThemeID
		if _, seen := infos[id]; !seen {
			ids = append(ids, id)
			infos[id] = cw.Theme
		}
	}
	return ids, infos
}

// UpdateStyle writes theme descriptions onto every colorway of the style whose
// theme resolves in IDM, then reconciles the style against all its colorways.
// Themes that fail to resolve are skipped and reported.
func (s *Service) UpdateStyle(ctx context.Context, styleID int, opts reconcile.Options) (*models.UpdateReport, error) {
	style, colorways, err := s.store.FetchStyleWithColorways(ctx, styleID)
	if err != nil {
		return nil, err
	}
	if style == nil {
		return nil, fmt.Errorf("%w: %d", ErrStyleNotFound, styleID)
	}
	if len(colorways) == 0 {
		return nil, ErrNoColorways
	}

	report := &models.UpdateReport{
		DryRun:  opts.DryRun,
		StyleID: styleID,
		Style:   *style,
		Themes:  make([]models.ThemeMapping, 0),
	}

	ids, infos := distinctThemes(colorways)
	descriptions := make(map[int]plm.Descriptions, len(ids))
	position := make(map[int]int, len(ids))
	for _, id := range ids {
		entry := models.ThemeMapping{ThemeID: id}
		info := infos[id]
		if info != nil {
			entry.PID = info.Description
		}

		mapped, err := s.mapTheme(ctx, info)
		if err != nil {
			s.logger.Warn("Skipping theme", zap.Int("style_id", styleID), zap.Int("theme_id", id), zap.Error(err))
			entry.Error = err.Error()
			report.UpdateSummary.ThemesSkipped++
		} else {
			descriptions[id] = plm.ExtractDescriptions(mapped)
			entry.AttributeCount = len(mapped)
			report.UpdateSummary.ThemesMapped++
		}
		position[id] = len(report.Themes)
		report.Themes = append(report.Themes, entry)
	}

	patches := make([]plm.ColorwayPatch, 0, len(colorways))
	for _, cw := range colorways {
		if cw.ThemeID == nil {
			continue
		}
		d, ok := descriptions[*cw.ThemeID]
		if !ok {
			continue
		}
		patches = append(patches, plm.BuildColorwayPatch(cw.ID, d))
		report.Themes[position[*cw.ThemeID]].Colorways++
	}
	if len(patches) == 0 {
		return nil, ErrNoColorwayPatches
	}

	if !opts.DryRun {
		if err := s.store.PatchColorways(ctx, patches); err != nil {
			return nil, err
		}
	}

	report.UpdateSummary.TotalColorways = len(colorways)
	report.UpdateSummary.PatchedColorways = len(patches)
	report.UpdateSummary.SkippedColorways = len(colorways) - len(patches)

	decision := reconcile.Reconcile(*style, colorways)
	result, err := reconcile.ApplyDecision(ctx, s.store, decision, opts)
	if err != nil {
		s.logger.Error("Style patch failed", zap.Int("style_id", styleID), zap.Error(err))
	}
	report.StyleUpdate = result
	report.UpdateSummary.StyleUpdated = result.Outcome == reconcile.OutcomeUpdated
	report.Success = err == nil
	report.Timestamp = server.Timestamp(s.now())

	s.logger.Info("Style update completed",
		zap.Int("style_id", styleID),
		zap.Bool("dry_run", opts.DryRun),
		zap.Int("patched_colorways", len(patches)),
		zap.String("outcome", string(result.Outcome)),
	)
	return report, nil
}

func (s *Service) mapTheme(ctx context.Context, info *core.ThemeInfo) ([]core.MappedAttribute, error) {
	if info == nil || info.Description == "" {
		return nil, errNoDescription
	}
	mapped, err := s.mapper.MapAttributes(ctx, info.Description)
	if err != nil {
		return nil, err
	}
	if len(mapped) == 0 {
		return nil, idm.ErrNoAttributes
	}
	return mapped, nil
}
