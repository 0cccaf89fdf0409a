// Package reconcile decides whether a style's status and theme still match its
// colorways, and applies the resulting change.
//
// Two independent rules run against the same colorway set:
//
//  1. Status promotion: a provisional style (status 1) becomes promoted
//     (status 2) once an active colorway carries a theme other than the
//     retired theme 1172.
//  2. Theme reassignment: unless an active colorway still carries the style's
//     theme, the first non-empty tier supplies a new one. Tiers, in order:
//     active themes except 1172, 1172 if active, passive themes except 1172,
//     1172 if passive.
//
// # Usage
//
//	groups := plm.GroupByStyle(colorways)
//	report := reconcile.ReconcileStyles(ctx, store, groups, reconcile.Options{})
//
// Styles are processed sequentially. Each result records whether the style was
// updated, left unchanged, missing or failed; a re-index failure after a
// successful patch is recorded but not rolled back.
package reconcile
