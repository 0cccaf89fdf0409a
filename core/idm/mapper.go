package idm

import (
	"context"
	"fmt"
	"time"

	"theme-sync/core/models"

	"go.uber.org/zap"
)

// Mapping is the full result of resolving a PID against IDM.
type Mapping struct {
	PID            models.ClassificationID  `json:"parsedPid"`
	Attributes     []models.AttributeRecord `json:"attributes"`
	ValueListCount int                      `json:"valueListCount"`
	Mapped         []models.MappedAttribute `json:"mappedAttributes"`
}

// Mapper joins IDM attributes with the value lists of their entity.
type Mapper struct {
	source  Source
	catalog *CatalogCache
	logger  *zap.Logger
}

// NewMapper creates a mapper. Value lists are cached for ttl.
func NewMapper(source Source, ttl time.Duration, logger *zap.Logger) *Mapper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mapper{
		source:  source,
		catalog: NewCatalogCache(source, ttl),
		logger:  logger,
	}
}

// Catalog exposes the value-list cache.
func (m *Mapper) Catalog() *CatalogCache {
	return m.catalog
}

// MapAttributes returns the attributes of pid joined with their descriptions.
func (m *Mapper) MapAttributes(ctx context.Context, pid string) ([]models.MappedAttribute, error) {
	mapping, err := m.Resolve(ctx, pid)
	if err != nil {
		return nil, err
	}
	return mapping.Mapped, nil
}

// Resolve parses pid, fetches its attributes and entity value lists, and joins them.
func (m *Mapper) Resolve(ctx context.Context, pid string) (*Mapping, error) {
	parsed, err := ParsePID(pid)
	if err != nil {
		return nil, err
	}

	attrs, err := m.source.FetchAttributes(ctx, pid)
	if err != nil {
		return nil, err
	}

	lists, err := m.catalog.Get(ctx, parsed.EntityName)
	if err != nil {
		return nil, fmt.Errorf("failed to load value lists for %s: %w", parsed.EntityName, err)
	}

	mapped := Join(attrs, lists)
	m.logger.Debug("Attributes mapped",
		zap.String("pid", pid),
		zap.Int("attributes", len(attrs)),
		zap.Int("value_lists", len(lists)),
	)

	return &Mapping{
		PID:            parsed,
		Attributes:     attrs,
		ValueListCount: len(lists),
		Mapped:         mapped,
	}, nil
}

// Join pairs each attribute with the description of the value-list entry whose
// code equals its raw value. It never fails; missing data yields unmapped attributes.
func Join(attrs []models.AttributeRecord, lists models.ValueLists) []models.MappedAttribute {
	out := make([]models.MappedAttribute, 0, len(attrs))
	for _, attr := range attrs {
		mapped := models.MappedAttribute{AttributeRecord: attr}
		if list, ok := lists[attr.Name]; ok {
			if desc, found := list.Lookup(attr.RawValue); found {
				mapped.Description = &desc
				mapped.Mapped = true
			}
		}
		out = append(out, mapped)
	}
	return out
}
