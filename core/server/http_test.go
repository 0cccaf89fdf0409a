package server_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"theme-sync/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositiveID(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr error
	}{
		{"Valid", `{"ThemeId": 1174}`, 1174, nil},
		{"Missing", `{}`, 0, server.ErrMissingID},
		{"Null", `{"ThemeId": null}`, 0, server.ErrMissingID},
		{"Zero", `{"ThemeId": 0}`, 0, server.ErrMissingID},
		{"Negative", `{"ThemeId": -3}`, 0, server.ErrInvalidID},
		{"Fraction", `{"ThemeId": 1.5}`, 0, server.ErrInvalidID},
		{"String", `{"ThemeId": "12"}`, 0, server.ErrInvalidID},
		{"NotJSON", `ThemeId=12`, 0, server.ErrMissingID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, verr := server.PositiveID([]byte(tt.body), "ThemeId")
			if tt.wantErr != nil {
				require.NotNil(t, verr)
				assert.ErrorIs(t, verr, tt.wantErr)
				return
			}
			require.Nil(t, verr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidationError_Text(t *testing.T) {
	_, verr := server.PositiveID([]byte(`{}`), "ThemeId")
	require.NotNil(t, verr)
	assert.Equal(t, "ThemeId is required", verr.Label())
	assert.Equal(t, "Please provide ThemeId in request body", verr.Message())

	_, verr = server.PositiveID([]byte(`{"StyleId": -1}`), "StyleId")
	require.NotNil(t, verr)
	assert.Equal(t, "Invalid StyleId", verr.Label())
	assert.Equal(t, "StyleId must be a positive number", verr.Message())
}

func TestOptionalBool(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    bool
		wantErr bool
	}{
		{"True", `{"DryRun": true}`, true, false},
		{"False", `{"DryRun": false}`, false, false},
		{"Missing", `{"ThemeId": 1}`, false, false},
		{"Null", `{"DryRun": null}`, false, false},
		{"QuotedTrue", `{"DryRun": "true"}`, false, true},
		{"Number", `{"DryRun": 1}`, false, true},
		{"NotJSON", `DryRun=true`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, verr := server.OptionalBool([]byte(tt.body), "DryRun")
			if tt.wantErr {
				require.NotNil(t, verr)
				assert.ErrorIs(t, verr, server.ErrInvalidBool)
				assert.Equal(t, "Invalid DryRun", verr.Label())
				assert.Equal(t, "DryRun must be true or false", verr.Message())
				return
			}
			require.Nil(t, verr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPositiveIDs(t *testing.T) {
	ids, verr := server.PositiveIDs([]byte(`{"ThemeIds": [1, 2, 3]}`), "ThemeIds")
	require.Nil(t, verr)
	assert.Equal(t, []int{1, 2, 3}, ids)

	_, verr = server.PositiveIDs([]byte(`{"ThemeIds": []}`), "ThemeIds")
	assert.ErrorIs(t, verr, server.ErrMissingID)

	_, verr = server.PositiveIDs([]byte(`{"ThemeIds": [1, 0]}`), "ThemeIds")
	assert.ErrorIs(t, verr, server.ErrInvalidID)

	_, verr = server.PositiveIDs([]byte(`{"ThemeIds": 4}`), "ThemeIds")
	assert.ErrorIs(t, verr, server.ErrInvalidID)
}

func TestSendError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return server.SendError(c, fiber.StatusBadGateway, "Upstream failure", "boom")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	var body server.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "Upstream failure", body.Error)
	assert.Equal(t, "boom", body.Message)
	assert.NotEmpty(t, body.Timestamp)
}

func TestBanner(t *testing.T) {
	app := fiber.New()
	app.Get("/", server.Banner("theme-sync", "1.0.0", []server.Endpoint{{Method: "GET", Path: "/"}}))

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "theme-sync", body["service"])
	assert.Len(t, body["endpoints"], 1)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Not found", server.StatusLabel(fiber.StatusNotFound))
	assert.Equal(t, "Upstream failure", server.StatusLabel(fiber.StatusBadGateway))
	assert.Equal(t, "Internal server error", server.StatusLabel(fiber.StatusTeapot))
}
