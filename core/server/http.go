package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// TimestampLayout is the layout of every response timestamp.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp formats t for a response body.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// StatusLabel is the short error shown to clients for a failure status.
func StatusLabel(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "Invalid request"
	case fiber.StatusUnauthorized:
		return "Unauthorized"
	case fiber.StatusNotFound:
		return "Not found"
	case fiber.StatusUnprocessableEntity:
		return "Unprocessable request"
	case fiber.StatusBadGateway:
		return "Upstream failure"
	default:
		return "Internal server error"
	}
}

// SendError writes an ErrorResponse with the given status.
func SendError(c *fiber.Ctx, status int, label, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Error:     label,
		Message:   message,
		Timestamp: Timestamp(time.Now()),
	})
}

// Validation errors returned by PositiveID and OptionalBool.
var (
	ErrMissingID   = errors.New("id is required")
	ErrInvalidID   = errors.New("id must be a positive number")
	ErrInvalidBool = errors.New("value must be a boolean")
)

// ValidationError describes a rejected request body field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Label is the short error shown to clients.
func (e *ValidationError) Label() string {
	if errors.Is(e.Err, ErrMissingID) {
		return e.Field + " is required"
	}
	return "Invalid " + e.Field
}

// Message is the explanatory text shown to clients.
func (e *ValidationError) Message() string {
	if errors.Is(e.Err, ErrMissingID) {
		return "Please provide " + e.Field + " in request body"
	}
	if errors.Is(e.Err, ErrInvalidBool) {
		return e.Field + " must be true or false"
	}
	return e.Field + " must be a positive number"
}

// SendValidationError writes a 400 for a *ValidationError.
func SendValidationError(c *fiber.Ctx, err *ValidationError) error {
	return SendError(c, fiber.StatusBadRequest, err.Label(), err.Message())
}

// PositiveID reads field from a JSON object body. A missing, null or zero value
// is ErrMissingID; a non-integer or negative value is ErrInvalidID.
func PositiveID(body []byte, field string) (int, *ValidationError) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, &ValidationError{Field: field, Err: ErrMissingID}
	}

	raw, ok := payload[field]
	if !ok || string(raw) == "null" {
		return 0, &ValidationError{Field: field, Err: ErrMissingID}
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, &ValidationError{Field: field, Err: ErrInvalidID}
	}
	switch {
	case n == 0:
		return 0, &ValidationError{Field: field, Err: ErrMissingID}
	case n < 0 || n != float64(int(n)):
		return 0, &ValidationError{Field: field, Err: ErrInvalidID}
	}
	return int(n), nil
}

// PositiveIDs reads a non-empty list of positive ids from field.
func PositiveIDs(body []byte, field string) ([]int, *ValidationError) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &ValidationError{Field: field, Err: ErrMissingID}
	}

	raw, ok := payload[field]
	if !ok || string(raw) == "null" {
		return nil, &ValidationError{Field: field, Err: ErrMissingID}
	}

	var values []float64
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, &ValidationError{Field: field, Err: ErrInvalidID}
	}
	if len(values) == 0 {
		return nil, &ValidationError{Field: field, Err: ErrMissingID}
	}

	ids := make([]int, 0, len(values))
	for _, v := range values {
		if v <= 0 || v != float64(int(v)) {
			return nil, &ValidationError{Field: field, Err: ErrInvalidID}
		}
		ids = append(ids, int(v))
	}
	return ids, nil
}

// OptionalBool reads field from a JSON object body. A missing or null value is
// false; anything other than a JSON boolean is ErrInvalidBool.
func OptionalBool(body []byte, field string) (bool, *ValidationError) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return false, &ValidationError{Field: field, Err: ErrInvalidBool}
	}

	raw, ok := payload[field]
	if !ok || string(raw) == "null" {
		return false, nil
	}

	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, &ValidationError{Field: field, Err: ErrInvalidBool}
	}
	return v, nil
}

// Endpoint is one entry of the service banner.
type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Banner returns a handler describing the service and its endpoints.
func Banner(name, version string, endpoints []Endpoint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service":   name,
			"version":   version,
			"status":    "running",
			"endpoints": endpoints,
			"timestamp": Timestamp(time.Now()),
		})
	}
}
