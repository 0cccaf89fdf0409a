package plm

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"theme-sync/core/ion"
	"theme-sync/core/models"

	"go.uber.org/zap"
)

const (
	odataPath = "FASHIONPLM/odata2/api/odata2/"
	jobPath   = "FASHIONPLM/job/api/job/tasks"

	styleColorwayExpand = "StyleColorways($expand=Theme($select=Name,Code,Description);" +
		"$select=StyleColorwayId,StyleId,ColorrngId,Code,Name,HexValue,ThemeId,ColorwayStatus)"
)

// Client implements Store against the PLM OData API.
type Client struct {
	ion    *ion.Client
	cfg    Config
	logger *zap.Logger
}

// NewClient creates a PLM client on top of an ION transport.
func NewClient(transport *ion.Client, cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Schema == "" {
		cfg.Schema = "FSH1"
	}
	return &Client{ion: transport, cfg: cfg, logger: logger}
}

// wire shapes; field names follow the OData entity sets

type themeWire struct {
	ThemeId     *int   `json:"ThemeId"`
	Name        string `json:"Name"`
	Code        string `json:"Code"`
	Description string `json:"Description"`
}

type colorwayWire struct {
	StyleColorwayId    int        `json:"StyleColorwayId"`
	StyleId            int        `json:"StyleId"`
	ColorrngId         *int       `json:"ColorrngId"`
	Code               string     `json:"Code"`
	Name               string     `json:"Name"`
	HexValue           string     `json:"HexValue"`
	ThemeId            *int       `json:"ThemeId"`
	ColorwayStatus     *int       `json:"ColorwayStatus"`
	ColorwayUserField4 *int       `json:"ColorwayUserField4"`
	Theme              *themeWire `json:"Theme"`
}

type styleWire struct {
	StyleId        int            `json:"StyleId"`
	Status         *int           `json:"Status"`
	ThemeId        *int           `json:"ThemeId"`
	StyleColorways []colorwayWire `json:"StyleColorways"`
}

type odataList[T any] struct {
	Value []T `json:"value"`
}

// themeRef treats a zero theme id as unassigned.
func themeRef(id *int) *int {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}

func (w colorwayWire) record() models.ColorwayRecord {
	rec := models.ColorwayRecord{
		ID:           w.StyleColorwayId,
		StyleID:      w.StyleId,
		ColorRangeID: w.ColorrngId,
		ThemeID:      themeRef(w.ThemeId),
		Code:         w.Code,
		Name:         w.Name,
		Hex:          w.HexValue,
		UserField4:   w.ColorwayUserField4,
	}
	if w.ColorwayStatus != nil {
		rec.Status = *w.ColorwayStatus
	}
	if w.Theme != nil {
		info := &models.ThemeInfo{
			Name:        w.Theme.Name,
			Code:        w.Theme.Code,
			Description: w.Theme.Description,
		}
		switch {
		case w.Theme.ThemeId != nil:
			info.ThemeID = *w.Theme.ThemeId
		case rec.ThemeID != nil:
			info.ThemeID = *rec.ThemeID
		}
		rec.Theme = info
	}
	return rec
}

func (w styleWire) record() *models.StyleRecord {
	rec := &models.StyleRecord{
		StyleID: w.StyleId,
		ThemeID: themeRef(w.ThemeId),
	}
	if w.Status != nil {
		rec.Status = *w.Status
	}
	return rec
}

// FetchColorwaysForTheme implements Reader.
func (c *Client) FetchColorwaysForTheme(ctx context.Context, themeID int) ([]models.ColorwayRecord, error) {
	query := url.Values{}
	query.Set("$filter", fmt.Sprintf("ThemeId eq %d", themeID))
	query.Set("$expand", "Theme")

	var resp odataList[colorwayWire]
	if err := c.ion.Get(ctx, odataPath+"STYLECOLORWAYS", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch colorways for theme %d: %w", themeID, err)
	}

	colorways := make([]models.ColorwayRecord, 0, len(resp.Value))
	for _, w := range resp.Value {
		colorways = append(colorways, w.record())
	}

	c.logger.Debug("Colorways fetched", zap.Int("theme_id", themeID), zap.Int("count", len(colorways)))
	return colorways, nil
}

// FetchStyle implements Reader.
func (c *Client) FetchStyle(ctx context.Context, styleID int) (*models.StyleRecord, error) {
	query := url.Values{}
	query.Set("$filter", fmt.Sprintf("StyleId eq %d", styleID))
	query.Set("$select", "StyleId,Status,ThemeId")

	var resp odataList[styleWire]
	if err := c.ion.Get(ctx, odataPath+"STYLE", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch style %d: %w", styleID, err)
	}
	if len(resp.Value) == 0 {
		c.logger.Debug("Style not found", zap.Int("style_id", styleID))
		return nil, nil
	}
	return resp.Value[0].record(), nil
}

// FetchStyleWithColorways implements Reader.
func (c *Client) FetchStyleWithColorways(ctx context.Context, styleID int) (*models.StyleRecord, []models.ColorwayRecord, error) {
	query := url.Values{}
	query.Set("$filter", fmt.Sprintf("StyleId eq %d", styleID))
	query.Set("$select", "StyleId,Status,ThemeId")
	query.Set("$expand", styleColorwayExpand)

	var resp odataList[styleWire]
	if err := c.ion.Get(ctx, odataPath+"STYLE", query, &resp); err != nil {
		return nil, nil, fmt.Errorf("failed to fetch style %d with colorways: %w", styleID, err)
	}
	if len(resp.Value) == 0 {
		return nil, nil, nil
	}

	wire := resp.Value[0]
	colorways := make([]models.ColorwayRecord, 0, len(wire.StyleColorways))
	for _, w := range wire.StyleColorways {
		colorways = append(colorways, w.record())
	}
	return wire.record(), colorways, nil
}

// PatchStyle implements Writer.
func (c *Client) PatchStyle(ctx context.Context, styleID int, fields StyleFields) error {
	path := odataPath + "STYLE(" + strconv.Itoa(styleID) + ")"
	if err := c.ion.Patch(ctx, path, fields, nil); err != nil {
		return fmt.Errorf("failed to patch style %d: %w", styleID, err)
	}
	c.logger.Info("Style patched",
		zap.Int("style_id", styleID),
		zap.Any("status", fields.Status),
		zap.Any("theme_id", fields.ThemeID),
	)
	return nil
}

// PatchColorways implements Writer.
func (c *Client) PatchColorways(ctx context.Context, patches []ColorwayPatch) error {
	if len(patches) == 0 {
		return nil
	}
	if err := c.ion.Patch(ctx, odataPath+"STYLECOLORWAYS", patches, nil); err != nil {
		return fmt.Errorf("failed to patch %d colorways: %w", len(patches), err)
	}
	c.logger.Info("Colorways patched", zap.Int("count", len(patches)))
	return nil
}

type jobData struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type jobTask struct {
	TaskId     string    `json:"TaskId"`
	IsSystem   bool      `json:"IsSystem"`
	CustomData []jobData `json:"CustomData"`
	Sequence   int       `json:"Sequence"`
}

// TriggerReindex implements Writer.
func (c *Client) TriggerReindex(ctx context.Context, styleID int) error {
	task := jobTask{
		TaskId:   "syncSearchData",
		IsSystem: true,
		CustomData: []jobData{
			{Key: "cluster", Value: "styleoverview"},
			{Key: "moduleId", Value: styleID},
			{Key: "schema", Value: c.cfg.Schema},
			{Key: "updateOrgLevelPath", Value: "true"},
		},
		Sequence: 1,
	}
	if err := c.ion.Post(ctx, jobPath, task, nil); err != nil {
		return fmt.Errorf("failed to trigger reindex for style %d: %w", styleID, err)
	}
	c.logger.Info("Reindex triggered", zap.Int("style_id", styleID), zap.String("schema", c.cfg.Schema))
	return nil
}
