package plm

import "theme-sync/core/models"

// StyleGroup is the set of colorways owned by one style.
type StyleGroup struct {
	StyleID   int                     `json:"styleId"`
	Colorways []models.ColorwayRecord `json:"colorways"`
}

// GroupByStyle partitions colorways by owning style. Groups appear in order of
// first appearance and keep the input order of their colorways.
func GroupByStyle(colorways []models.ColorwayRecord) []StyleGroup {
	groups := make([]StyleGroup, 0)
	index := make(map[int]int)

	for _, cw := range colorways {
		i, ok := index[cw.StyleID]
		if !ok {
			i = len(groups)
			index[cw.StyleID] = i
			groups = append(groups, StyleGroup{StyleID: cw.StyleID})
		}
		groups[i].Colorways = append(groups[i].Colorways, cw)
	}
	return groups
}

// StyleIDs lists the style ids of groups in order.
func StyleIDs(groups []StyleGroup) []int {
	ids := make([]int, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.StyleID)
	}
	return ids
}
