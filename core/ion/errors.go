package ion

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds for upstream calls.
var (
	// ErrUpstreamFetch wraps any failed read against PLM or IDM.
	ErrUpstreamFetch = errors.New("upstream fetch failed")
	// ErrUpstreamWrite wraps any failed PATCH/POST against PLM.
	ErrUpstreamWrite = errors.New("upstream write failed")
)

// maxBodySnippet caps how much of an upstream error body is kept.
const maxBodySnippet = 512

// UpstreamError describes a failed upstream call. It never carries request headers.
type UpstreamError struct {
	Kind       error
	Method     string
	Path       string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s %s: %v", e.Kind, e.Method, e.Path, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s: %s %s: status %d: %s", e.Kind, e.Method, e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %s %s: status %d", e.Kind, e.Method, e.Path, e.StatusCode)
}

// Unwrap exposes both the kind sentinel and the transport error.
func (e *UpstreamError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// kindFor classifies a request by method.
func kindFor(method string) error {
	if method == http.MethodGet || method == http.MethodHead {
		return ErrUpstreamFetch
	}
	return ErrUpstreamWrite
}

// StatusCode extracts the upstream HTTP status from err, or 0.
func StatusCode(err error) int {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.StatusCode
	}
	return 0
}

func snippet(b []byte) string {
	if len(b) > maxBodySnippet {
		return string(b[:maxBodySnippet]) + "..."
	}
	return string(b)
}
