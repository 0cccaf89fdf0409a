package idm

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"theme-sync/core/ion"
	"theme-sync/core/models"
	"theme-sync/core/utils"

	"go.uber.org/zap"
)

// Source fetches raw IDM data.
type Source interface {
	// FetchAttributes returns the attributes of the item identified by pid.
	// An item without attributes yields an empty slice, not an error.
	FetchAttributes(ctx context.Context, pid string) ([]models.AttributeRecord, error)
	// FetchValueLists returns the value lists declared by an entity, keyed by attribute name.
	FetchValueLists(ctx context.Context, entityName string) (models.ValueLists, error)
}

// Client implements Source against the IDM REST API.
type Client struct {
	ion    *ion.Client
	logger *zap.Logger
}

// NewClient creates an IDM client on top of an ION transport.
func NewClient(transport *ion.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{ion: transport, logger: logger}
}

type itemResponse struct {
	Item *struct {
		Attrs struct {
			Attr []struct {
				Name  string `json:"name"`
				Type  any    `json:"type"`
				Qual  string `json:"qual"`
				Value any    `json:"value"`
			} `json:"attr"`
		} `json:"attrs"`
	} `json:"item"`
}

type entityResponse struct {
	Entity *struct {
		Attrs struct {
			Attr []struct {
				Name     string `json:"name"`
				Desc     string `json:"desc"`
				Type     any    `json:"type"`
				Qual     string `json:"qual"`
				Valueset *struct {
					Value []struct {
						Name string `json:"name"`
						Desc string `json:"desc"`
					} `json:"value"`
				} `json:"valueset"`
			} `json:"attr"`
		} `json:"attrs"`
	} `json:"entity"`
}

// FetchAttributes implements Source.
func (c *Client) FetchAttributes(ctx context.Context, pid string) ([]models.AttributeRecord, error) {
	var resp itemResponse
	if err := c.ion.Get(ctx, "IDM/api/items/"+url.PathEscape(pid), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch IDM item %s: %w", pid, err)
	}
	if resp.Item == nil {
		c.logger.Info("IDM item has no attributes", zap.String("pid", pid))
		return []models.AttributeRecord{}, nil
	}

	attrs := make([]models.AttributeRecord, 0, len(resp.Item.Attrs.Attr))
	for _, a := range resp.Item.Attrs.Attr {
		typ := models.AttributeTypeFromCode(utils.ToString(a.Type))
		raw := utils.ToString(a.Value)
		attrs = append(attrs, models.AttributeRecord{
			Name:        a.Name,
			Type:        typ,
			Qualifier:   a.Qual,
			RawValue:    raw,
			ParsedValue: ParseValue(raw, typ),
		})
	}

	c.logger.Debug("IDM item fetched", zap.String("pid", pid), zap.Int("attributes", len(attrs)))
	return attrs, nil
}

// FetchValueLists implements Source.
func (c *Client) FetchValueLists(ctx context.Context, entityName string) (models.ValueLists, error) {
	var resp entityResponse
	if err := c.ion.Get(ctx, "IDM/api/datamodel/entities/"+url.PathEscape(entityName), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch IDM entity %s: %w", entityName, err)
	}

	lists := make(models.ValueLists)
	if resp.Entity == nil {
		return lists, nil
	}

	for _, a := range resp.Entity.Attrs.Attr {
		if a.Valueset == nil || a.Valueset.Value == nil {
			continue
		}
		display := a.Desc
		if display == "" {
			display = a.Name
		}
		list := models.ValueList{
			Name:        a.Name,
			DisplayName: display,
			Type:        utils.ToString(a.Type),
			Qualifier:   a.Qual,
			Entries:     make([]models.ValueListEntry, 0, len(a.Valueset.Value)),
		}
		for _, v := range a.Valueset.Value {
			list.Entries = append(list.Entries, models.ValueListEntry{Code: v.Name, Description: v.Desc})
		}
		lists[a.Name] = list
	}

	c.logger.Debug("IDM value lists fetched", zap.String("entity", entityName), zap.Int("lists", len(lists)))
	return lists, nil
}

// ParseValue converts a raw attribute value according to its type. Empty
// values are returned unchanged; unparsable integers and floats become nil and
// unparsable dates stay raw.
func ParseValue(raw string, typ models.AttributeType) any {
	if raw == "" {
		return raw
	}
	switch typ {
	case models.AttributeInteger:
		if n, ok := utils.ParseLeadingInt(raw); ok {
			return n
		}
		return nil
	case models.AttributeDate:
		if t, ok := parseDate(raw); ok {
			return t
		}
		return raw
	case models.AttributeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil
		}
		return f
	default:
		return raw
	}
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
