// Package theme serves PLM themes over HTTP.
//
// A theme is fetched as its colorways grouped by style. The theme description
// carries an IDM PID whose attributes are resolved, flattened for export, or
// written back onto every colorway of the theme. A theme update finishes by
// reconciling the status and theme of each affected style.
package theme
