package style_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"theme-sync/core/loader"
	"theme-sync/core/server"
	"theme-sync/feature/style"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func doUpdate(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/style/update", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandleUpdateStyle(t *testing.T) {
	f := newFixture()
	f.store.On("FetchStyleWithColorways", mock.Anything, 500).Return(pendingStyle(), styleColorways(), nil)
	f.withIDM()
	app := fiber.New()
	style.NewHandler(f.service).RegisterRoutes(app)

	resp := doUpdate(t, app, `{"StyleId":500,"DryRun":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report struct {
		StyleID int  `json:"styleId"`
		DryRun  bool `json:"dryRun"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 500, report.StyleID)
	assert.True(t, report.DryRun)
}

func TestHandleUpdateStyle_Errors(t *testing.T) {
	f := newFixture()
	f.store.On("FetchStyleWithColorways", mock.Anything, 404).Return(nil, nil, nil)
	app := fiber.New()
	style.NewHandler(f.service).RegisterRoutes(app)

	resp := doUpdate(t, app, `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out server.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "StyleId is required", out.Error)
	assert.Equal(t, "Please provide StyleId in request body", out.Message)

	resp = doUpdate(t, app, `{"StyleId":404}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleUpdateStyle_InvalidDryRun(t *testing.T) {
	f := newFixture()
	app := fiber.New()
	style.NewHandler(f.service).RegisterRoutes(app)

	resp := doUpdate(t, app, `{"StyleId":500,"DryRun":"true"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out server.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Invalid DryRun", out.Error)
	assert.Equal(t, "DryRun must be true or false", out.Message)

	f.store.AssertNotCalled(t, "FetchStyleWithColorways", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "PatchColorways", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "PatchStyle", mock.Anything, mock.Anything, mock.Anything)
}

func TestFeature(t *testing.T) {
	f := newFixture()
	feature := style.NewFeature(f.store, nil, nil)

	var _ loader.Feature = feature
	assert.Equal(t, "style", feature.Name())
	assert.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(fiber.New()))
}

func TestMapHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, style.MapHTTPStatus(style.ErrStyleNotFound))
	assert.Equal(t, http.StatusUnprocessableEntity, style.MapHTTPStatus(style.ErrNoColorways))
	assert.Equal(t, http.StatusUnprocessableEntity, style.MapHTTPStatus(style.ErrNoColorwayPatches))
	assert.Equal(t, http.StatusInternalServerError, style.MapHTTPStatus(assert.AnError))
}
