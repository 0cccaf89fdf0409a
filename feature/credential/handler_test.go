package credential_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"theme-sync/core/loader"
	"theme-sync/core/token"
	"theme-sync/feature/credential"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockHolder struct {
	mock.Mock
}

func (m *mockHolder) Info() token.Info {
	return m.Called().Get(0).(token.Info)
}

func (m *mockHolder) Revoke(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newApp(holder credential.Holder) *fiber.App {
	app := fiber.New()
	feature := credential.NewFeature(holder, nil)
	_ = feature.Load(app)
	return app
}

func TestHandleInfo(t *testing.T) {
	expires := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	holder := new(mockHolder)
	holder.On("Info").Return(token.Info{HasToken: true, IsValid: true, ExpiresAt: &expires, TokenType: "Bearer"})

	resp, err := newApp(holder).Test(httptest.NewRequest(http.MethodGet, "/api/token", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out credential.InfoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.True(t, out.TokenInfo.HasToken)
	assert.Equal(t, "Bearer", out.TokenInfo.TokenType)
	require.NotNil(t, out.TokenInfo.ExpiresAt)
	assert.True(t, expires.Equal(*out.TokenInfo.ExpiresAt))
}

func TestHandleRevoke(t *testing.T) {
	holder := new(mockHolder)
	holder.On("Revoke", mock.Anything).Return(nil)

	resp, err := newApp(holder).Test(httptest.NewRequest(http.MethodPost, "/api/token/revoke", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	holder.AssertExpectations(t)
}

func TestHandleRevoke_Failure(t *testing.T) {
	holder := new(mockHolder)
	holder.On("Revoke", mock.Anything).Return(fmt.Errorf("%w: status 400", token.ErrAuth))

	resp, err := newApp(holder).Test(httptest.NewRequest(http.MethodPost, "/api/token/revoke", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestFeature(t *testing.T) {
	var f loader.Feature = credential.NewFeature(new(mockHolder), nil)
	assert.Equal(t, "credential", f.Name())
	assert.True(t, f.IsEnabled())
}
