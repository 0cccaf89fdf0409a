package token_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"theme-sync/core/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type provider struct {
	grants   atomic.Int32
	revokes  atomic.Int32
	response func(n int32) map[string]any
	revoke   int
	delay    time.Duration
	// basic credentials expected on both endpoints; zero values mean client/secret
	user, pass string
}

func (p *provider) checkBasicAuth(t *testing.T, r *http.Request) {
	wantUser, wantPass := p.user, p.pass
	if wantUser == "" {
		wantUser, wantPass = "client", "secret"
	}
	user, pass, ok := r.BasicAuth()
	assert.True(t, ok)
	assert.Equal(t, wantUser, user)
	assert.Equal(t, wantPass, pass)
}

func (p *provider) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/as/token.oauth2", func(w http.ResponseWriter, r *http.Request) {
		n := p.grants.Add(1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.PostForm.Get("grant_type"))
		assert.Equal(t, "access-key", r.PostForm.Get("username"))
		assert.Equal(t, "secret-key", r.PostForm.Get("password"))
		p.checkBasicAuth(t, r)

		if p.delay > 0 {
			time.Sleep(p.delay)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(p.response(n))
	})
	mux.HandleFunc("/as/revoke_token.oauth2", func(w http.ResponseWriter, r *http.Request) {
		p.revokes.Add(1)
		p.checkBasicAuth(t, r)
		assert.NoError(t, r.ParseForm())
		assert.NotEmpty(t, r.PostForm.Get("token"))
		status := p.revoke
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newCache(srv *httptest.Server) *token.Cache {
	return token.NewCache(testConfig(srv), srv.Client(), zap.NewNop())
}

func testConfig(srv *httptest.Server) token.Config {
	return token.Config{
		ProviderURL:    srv.URL + "/as/",
		TokenEndpoint:  "token.oauth2",
		RevokeEndpoint: "revoke_token.oauth2",
		ClientID:       "client",
		ClientSecret:   "secret",
		AccessKey:      "access-key",
		SecretKey:      "secret-key",
	}
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func tokenResponse(n int32) map[string]any {
	return map[string]any{
		"access_token": fmt.Sprintf("token-%d", n),
		"token_type":   "Bearer",
		"expires_in":   3600,
	}
}

func TestAuthorizationValue_ReusesCachedToken(t *testing.T) {
	p := &provider{response: tokenResponse}
	cache := newCache(p.server(t))
	clock := &fakeClock{now: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)}
	cache.SetClock(clock.Now)

	first, err := cache.AuthorizationValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-1", first)

	clock.Advance(30 * time.Minute)
	second, err := cache.AuthorizationValue(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), p.grants.Load())
}

func TestAuthorizationValue_RefreshesInsideBuffer(t *testing.T) {
	p := &provider{response: tokenResponse}
	cache := newCache(p.server(t))
	clock := &fakeClock{now: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)}
	cache.SetClock(clock.Now)

	_, err := cache.AuthorizationValue(context.Background())
	require.NoError(t, err)

	// 55 minutes in: exactly at expiry minus the buffer.
	clock.Advance(55 * time.Minute)
	value, err := cache.AuthorizationValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-2", value)
	assert.Equal(t, int32(2), p.grants.Load())

	value, err = cache.AuthorizationValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-2", value)
	assert.Equal(t, int32(2), p.grants.Load())
}

func TestAuthorizationValue_Defaults(t *testing.T) {
	p := &provider{response: func(int32) map[string]any {
		return map[string]any{"access_token": "abc"}
	}}
	cache := newCache(p.server(t))
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: start}
	cache.SetClock(clock.Now)

	value, err := cache.AuthorizationValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", value)

	info := cache.Info()
	assert.True(t, info.HasToken)
	assert.True(t, info.IsValid)
	require.NotNil(t, info.ExpiresAt)
	assert.Equal(t, start.Add(time.Hour), *info.ExpiresAt)
	assert.Equal(t, "Bearer", info.TokenType)
}

func TestAuthorizationValue_MissingAccessToken(t *testing.T) {
	p := &provider{response: func(int32) map[string]any {
		return map[string]any{"token_type": "Bearer", "expires_in": 3600}
	}}
	cache := newCache(p.server(t))

	_, err := cache.AuthorizationValue(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, token.ErrAuth)
	assert.False(t, cache.Info().HasToken)
}

func TestAuthorizationValue_TransportFailure(t *testing.T) {
	p := &provider{response: tokenResponse}
	srv := p.server(t)
	cache := newCache(srv)
	srv.Close()

	_, err := cache.AuthorizationValue(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, token.ErrAuth)
	assert.False(t, cache.Info().HasToken)
}

func TestAuthorizationValue_ConcurrentCallersShareOneGrant(t *testing.T) {
	p := &provider{response: tokenResponse, delay: 50 * time.Millisecond}
	cache := newCache(p.server(t))

	var wg sync.WaitGroup
	values := make([]string, 10)
	for i := range values {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := cache.AuthorizationValue(context.Background())
			assert.NoError(t, err)
			values[i] = v
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), p.grants.Load())
	for _, v := range values {
		assert.Equal(t, "Bearer token-1", v)
	}
}

func TestRevoke(t *testing.T) {
	t.Run("NoToken", func(t *testing.T) {
		p := &provider{response: tokenResponse}
		cache := newCache(p.server(t))

		assert.NoError(t, cache.Revoke(context.Background()))
		assert.Equal(t, int32(0), p.revokes.Load())
	})

	t.Run("ClearsState", func(t *testing.T) {
		p := &provider{response: tokenResponse}
		cache := newCache(p.server(t))
		_, err := cache.AuthorizationValue(context.Background())
		require.NoError(t, err)

		require.NoError(t, cache.Revoke(context.Background()))
		assert.Equal(t, int32(1), p.revokes.Load())
		assert.False(t, cache.Info().HasToken)
	})

	t.Run("ClearsStateOnFailure", func(t *testing.T) {
		p := &provider{response: tokenResponse, revoke: http.StatusBadRequest}
		cache := newCache(p.server(t))
		_, err := cache.AuthorizationValue(context.Background())
		require.NoError(t, err)

		err = cache.Revoke(context.Background())
		assert.ErrorIs(t, err, token.ErrAuth)
		assert.False(t, cache.Info().HasToken)

		_, err = cache.AuthorizationValue(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), p.grants.Load())
	})
}

func TestAuthorizationValue_CancelledCallerDoesNotFailOthers(t *testing.T) {
	p := &provider{response: tokenResponse, delay: 150 * time.Millisecond}
	cache := newCache(p.server(t))

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := cache.AuthorizationValue(ctx)
		firstErr <- err
	}()

	// let the first caller start the grant, then join it and cancel the starter
	time.Sleep(30 * time.Millisecond)
	secondVal := make(chan string, 1)
	go func() {
		v, err := cache.AuthorizationValue(context.Background())
		assert.NoError(t, err)
		secondVal <- v
	}()
	time.Sleep(30 * time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-firstErr, context.Canceled)
	assert.Equal(t, "Bearer token-1", <-secondVal)
	assert.Equal(t, int32(1), p.grants.Load())
	assert.True(t, cache.Info().IsValid)
}

func TestBasicAuthEncoding(t *testing.T) {
	const secret = "a+b/c=d"

	tests := []struct {
		name     string
		raw      bool
		wantPass string
	}{
		{"FormEncoded", false, "a%2Bb%2Fc%3Dd"},
		{"Raw", true, secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &provider{response: tokenResponse, user: "client", pass: tt.wantPass}
			srv := p.server(t)
			cfg := testConfig(srv)
			cfg.ClientSecret = secret
			cfg.RawBasicAuth = tt.raw
			cache := token.NewCache(cfg, srv.Client(), zap.NewNop())

			_, err := cache.AuthorizationValue(context.Background())
			require.NoError(t, err)
			require.NoError(t, cache.Revoke(context.Background()))
			assert.Equal(t, int32(1), p.grants.Load())
			assert.Equal(t, int32(1), p.revokes.Load())
		})
	}
}
