package idm

import (
	"context"
	"strings"
	"time"

	"theme-sync/core/models"
	"theme-sync/core/utils"
)

// ThemeData is the flat export shape of a theme's attributes. Field names are
// fixed by downstream consumers.
type ThemeData struct {
	TemaName        *string `json:"TemaName"`
	TemaKod         *string `json:"TemaKod"`
	TemaId          *int    `json:"TemaId"`
	InStoreDate     *string `json:"InStoreDate"`
	Cluster         *string `json:"Cluster"`
	ClusterDesc     *string `json:"ClusterDesc"`
	LifeStyle       *string `json:"LifeStyle"`
	LifeStyleDesc   *string `json:"LifeStyleDesc"`
	Hibrit          *string `json:"Hibrit"`
	HibritDesc      *string `json:"HibritDesc"`
	TemaKisaKod     *string `json:"TemaKisaKod"`
	TemaKisaKodDesc *string `json:"TemaKisaKodDesc"`
	Sezon           *string `json:"Sezon"`
	SezonDesc       *string `json:"SezonDesc"`
	AnaTemaKod      *string `json:"AnaTemaKod"`
	AnaTemaKodDesc  *string `json:"AnaTemaKodDesc"`
	UrunSinifi      *string `json:"UrunSinifi"`
	UrunSinifiDesc  *string `json:"UrunSinifiDesc"`
	AltSezon        *string `json:"AltSezon"`
	AltSezonDesc    *string `json:"AltSezonDesc"`
	Marka           *string `json:"Marka"`
	MarkaDesc       *string `json:"MarkaDesc"`
	Koleksiyon      *string `json:"Koleksiyon"`
	KoleksiyonDesc  *string `json:"KoleksiyonDesc"`
}

// FormattedAttributes wraps ThemeData for export.
type FormattedAttributes struct {
	BatchId       string      `json:"BatchId"`
	ProcessedDate string      `json:"ProcessedDate"`
	ThemeData     []ThemeData `json:"ThemeData"`
}

type attributeIndex map[string]models.MappedAttribute

func indexAttributes(mapped []models.MappedAttribute) attributeIndex {
	idx := make(attributeIndex, len(mapped))
	for _, m := range mapped {
		// first occurrence wins
		if _, ok := idx[m.Name]; !ok {
			idx[m.Name] = m
		}
	}
	return idx
}

func (idx attributeIndex) value(name string) *string {
	m, ok := idx[name]
	if !ok {
		return nil
	}
	v := m.RawValue
	return &v
}

func (idx attributeIndex) description(name string) *string {
	m, ok := idx[name]
	if !ok {
		return nil
	}
	return m.Description
}

// FormatThemeData flattens mapped attributes into ThemeData.
// Sezon arrives inverted from upstream: its description is exported as the
// code and its raw value as the description.
func FormatThemeData(mapped []models.MappedAttribute) ThemeData {
	idx := indexAttributes(mapped)

	data := ThemeData{
		TemaName:        idx.value("Tema_Adi"),
		TemaKod:         idx.value("Tema_Kodu"),
		InStoreDate:     formatInStoreDate(idx.value("InStoreDate")),
		Cluster:         idx.value("Cluster"),
		ClusterDesc:     idx.description("Cluster"),
		LifeStyle:       idx.value("LifeStyle"),
		LifeStyleDesc:   idx.description("LifeStyle"),
		Hibrit:          idx.value("Hibrit"),
		HibritDesc:      idx.description("Hibrit"),
		TemaKisaKod:     idx.value("Tema_Kisa_Kod"),
		TemaKisaKodDesc: idx.description("Tema_Kisa_Kod"),
		Sezon:           idx.description("Sezon"),
		SezonDesc:       idx.value("Sezon"),
		AnaTemaKod:      idx.value("Ana_Tema"),
		AnaTemaKodDesc:  idx.description("Ana_Tema"),
		UrunSinifi:      idx.value("Urun_Sinifi"),
		UrunSinifiDesc:  idx.description("Urun_Sinifi"),
		AltSezon:        idx.value("Alt_Sezon"),
		AltSezonDesc:    idx.description("Alt_Sezon"),
		Marka:           idx.value("Marka"),
		MarkaDesc:       idx.description("Marka"),
		Koleksiyon:      idx.value("Koleksiyon"),
		KoleksiyonDesc:  idx.description("Koleksiyon"),
	}

	if raw := idx.value("ThemeId"); raw != nil && *raw != "" {
		if n, ok := utils.ParseLeadingInt(*raw); ok {
			data.TemaId = &n
		}
	}
	return data
}

// formatInStoreDate renders YYYY-MM-DD dates as DD.MM.YYYY. Dotted values are
// assumed to be formatted already; anything unparsable passes through.
func formatInStoreDate(raw *string) *string {
	if raw == nil || *raw == "" {
		return nil
	}
	if strings.Contains(*raw, ".") {
		return raw
	}
	t, ok := parseDate(*raw)
	if !ok {
		return raw
	}
	out := t.Format("02.01.2006")
	return &out
}

// Format resolves pid and returns its formatted export. It fails with
// ErrNoAttributes when IDM holds no attributes for pid.
func (m *Mapper) Format(ctx context.Context, pid string, now time.Time) (*FormattedAttributes, error) {
	mapping, err := m.Resolve(ctx, pid)
	if err != nil {
		return nil, err
	}
	if len(mapping.Attributes) == 0 {
		return nil, ErrNoAttributes
	}

	return &FormattedAttributes{
		BatchId:       pid,
		ProcessedDate: now.UTC().Format("2006-01-02T15:04:05.000Z"),
		ThemeData:     []ThemeData{FormatThemeData(mapping.Mapped)},
	}, nil
}
