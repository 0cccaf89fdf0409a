// Package plm talks to the PLM OData API and shapes colorway updates.
//
// Client normalises upstream entities into core/models records once, at the
// boundary, so nothing downstream depends on OData field names. GroupByStyle
// and the patch builder are pure helpers used by the sync flows.
package plm
