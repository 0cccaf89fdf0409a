// Package models defines the canonical records shared by the sync pipeline.
//
// Upstream payloads (PLM OData, IDM REST) are decoded by their clients and
// normalised into these types exactly once, so the reconciliation engine and
// the patch builder never deal with upstream naming variants.
//
// # Records
//
//   - ColorwayRecord: a color variant of a style with its status and theme.
//   - StyleRecord: the reconciliation target (status + theme reference).
//   - AttributeRecord / MappedAttribute: IDM attributes joined to value lists.
//   - ClassificationID: the parsed "<entity>-<id>-<version>-<tag>" PID.
package models
