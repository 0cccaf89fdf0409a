package theme_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"theme-sync/core/idm"
	idmmocks "theme-sync/core/idm/mocks"
	"theme-sync/core/loader"
	plmmocks "theme-sync/core/plm/mocks"
	"theme-sync/feature/theme"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFeature(t *testing.T) {
	mapper := idm.NewMapper(new(idmmocks.Source), 0, zap.NewNop())
	feature := theme.NewFeature(new(plmmocks.Store), mapper, 4, zap.NewNop())

	assert.Equal(t, "theme", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())

	var _ loader.Feature = feature

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/theme/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
