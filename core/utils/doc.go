// Package utils provides common utility functions for the theme-sync application.
// It includes helpers for loosely typed upstream values (numbers that arrive as
// strings, floats or json.Number) that don't fit into domain-specific packages.
package utils
