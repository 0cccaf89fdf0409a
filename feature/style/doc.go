// Package style updates one PLM style at a time: every colorway takes the
// attribute descriptions of its own theme, and the style is then reconciled
// against its full colorway set.
package style
