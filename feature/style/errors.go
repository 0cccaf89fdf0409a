package style

import (
	"errors"
	"net/http"

	"theme-sync/core/ion"
	"theme-sync/core/token"
)

var (
	// ErrStyleNotFound is returned when PLM holds no style for the id.
	ErrStyleNotFound = errors.New("style not found")
	// ErrNoColorways is returned when the style owns no colorways.
	ErrNoColorways = errors.New("style has no colorways")
	// ErrNoColorwayPatches is returned when no colorway theme resolved to attributes.
	ErrNoColorwayPatches = errors.New("no colorways with mapped attributes")
)

// MapHTTPStatus maps style domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, token.ErrAuth), errors.Is(err, ion.ErrUpstreamFetch), errors.Is(err, ion.ErrUpstreamWrite):
		return http.StatusBadGateway
	case errors.Is(err, ErrStyleNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNoColorways), errors.Is(err, ErrNoColorwayPatches):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
