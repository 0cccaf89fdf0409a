// Package idm reads classification attributes from the IDM store and joins
// them with the value lists declared by their entity.
//
// A theme's description carries a PID such as "Theme_Attributes-115-0-LATEST".
// The entity name (the first dash-separated part) selects the value lists;
// each attribute whose raw value matches a list entry receives that entry's
// description. Value lists change rarely and are cached per entity.
package idm
