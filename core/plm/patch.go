package plm

import (
	"theme-sync/core/models"
	"theme-sync/core/utils"
)

// Descriptions are the classification-derived values written onto colorways.
type Descriptions struct {
	Cluster     *string `json:"cluster"`
	LifeStyle   *string `json:"lifeStyle"`
	Hybrid      *string `json:"hibrit"`
	ShortCode   *string `json:"temaKisaKod"`
	ParentTheme *string `json:"anaTema"`
	// LifeStageGroup is parsed from the raw LifeStyleGrup value ("003" is 3).
	LifeStageGroup *int `json:"lifeStyleGrup"`
}

// ColorwayPatch is one element of the STYLECOLORWAYS batch PATCH body.
// Free fields are always sent; nil clears the field upstream.
type ColorwayPatch struct {
	StyleColorwayID    int     `json:"StyleColorwayId"`
	FreeFieldOne       *string `json:"FreeFieldOne"`
	FreeFieldTwo       *string `json:"FreeFieldTwo"`
	FreeFieldThree     *string `json:"FreeFieldThree"`
	FreeFieldFour      *string `json:"FreeFieldFour"`
	FreeFieldFive      *string `json:"FreeFieldFive"`
	ColorwayUserField4 *int    `json:"ColorwayUserField4,omitempty"`
}

// ExtractDescriptions picks the patchable values out of mapped attributes.
func ExtractDescriptions(mapped []models.MappedAttribute) Descriptions {
	var d Descriptions
	for _, attr := range mapped {
		switch attr.Name {
		case "Cluster":
			d.Cluster = nonEmpty(attr.Description)
		case "LifeStyle":
			d.LifeStyle = nonEmpty(attr.Description)
		case "Hibrit":
			d.Hybrid = nonEmpty(attr.Description)
		case "Tema_Kisa_Kod":
			d.ShortCode = nonEmpty(attr.Description)
		case "Ana_Tema":
			d.ParentTheme = nonEmpty(attr.Description)
		case "LifeStyleGrup":
			d.LifeStageGroup = nil
			if n, ok := utils.ParseLeadingInt(attr.RawValue); ok {
				d.LifeStageGroup = &n
			}
		}
	}
	return d
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// BuildColorwayPatch maps descriptions onto the colorway's free fields.
// A life-stage group of zero is indistinguishable from an absent one; both omit
// ColorwayUserField4.
func BuildColorwayPatch(colorwayID int, d Descriptions) ColorwayPatch {
	patch := ColorwayPatch{
		StyleColorwayID: colorwayID,
		FreeFieldOne:    d.Cluster,
		FreeFieldTwo:    d.LifeStyle,
		FreeFieldThree:  d.Hybrid,
		FreeFieldFour:   d.ShortCode,
		FreeFieldFive:   d.ParentTheme,
	}
	if d.LifeStageGroup != nil && *d.LifeStageGroup != 0 {
		group := *d.LifeStageGroup
		patch.ColorwayUserField4 = &group
	}
	return patch
}

// BuildBatchPatch builds one patch per colorway with the same descriptions.
func BuildBatchPatch(colorways []models.ColorwayRecord, d Descriptions) []ColorwayPatch {
	patches := make([]ColorwayPatch, 0, len(colorways))
	for _, cw := range colorways {
		patches = append(patches, BuildColorwayPatch(cw.ID, d))
	}
	return patches
}
