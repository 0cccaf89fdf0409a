package theme

import (
	"errors"
	"net/http"

	"theme-sync/core/idm"
	"theme-sync/core/ion"
	"theme-sync/core/token"
)

// Domain errors for theme operations.
var (
	// ErrNoThemeDescription is returned when a theme carries no PID in its description.
	ErrNoThemeDescription = errors.New("no theme description found")
	// ErrNoMappedAttributes is returned when an update has no attributes to write.
	ErrNoMappedAttributes = errors.New("mapped attributes not found")
	// ErrNoStyles is returned when no style uses the theme.
	ErrNoStyles = errors.New("no styles found for theme")
)

// MapHTTPStatus maps theme domain errors to appropriate HTTP status codes.
// Upstream failures take precedence over the domain error wrapping them.
func MapHTTPStatus(err error) int {
	if errors.Is(err, token.ErrAuth) || errors.Is(err, ion.ErrUpstreamFetch) || errors.Is(err, ion.ErrUpstreamWrite) {
		return http.StatusBadGateway
	}
	if errors.Is(err, idm.ErrParse) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNoStyles) || errors.Is(err, idm.ErrNoAttributes) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrNoMappedAttributes) || errors.Is(err, ErrNoThemeDescription) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
