package token

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"theme-sync/core/utils"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

const (
	// RefreshBuffer is how long before expiry a credential is considered stale.
	RefreshBuffer = 5 * time.Minute
	// DefaultExpiresIn is used when the provider omits expires_in.
	DefaultExpiresIn = 3600 * time.Second
	// DefaultTokenType is used when the provider omits token_type.
	DefaultTokenType = "Bearer"
)

// ErrAuth is returned when a credential cannot be acquired or revoked.
var ErrAuth = errors.New("authentication failed")

// Credential is a cached bearer token with its absolute expiry.
type Credential struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
}

// Stale reports whether the credential must be replaced at the given instant.
func (c *Credential) Stale(now time.Time) bool {
	return c == nil || !now.Before(c.ExpiresAt.Add(-RefreshBuffer))
}

// Info describes the cached credential without exposing the token itself.
type Info struct {
	HasToken  bool       `json:"hasToken"`
	IsValid   bool       `json:"isValid"`
	ExpiresAt *time.Time `json:"expiryTime"`
	TokenType string     `json:"tokenType,omitempty"`
}

// Cache owns a single credential and refreshes it on demand.
type Cache struct {
	cfg    Config
	oauth  *oauth2.Config
	client *http.Client
	logger *zap.Logger
	now    func() time.Time

	mu   sync.RWMutex
	cred *Credential
	sf   singleflight.Group
}

// NewCache creates a credential cache. A nil client falls back to http.DefaultClient.
// The client's timeout bounds every grant, including grants whose caller has gone away.
func NewCache(cfg Config, client *http.Client, logger *zap.Logger) *Cache {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.RawBasicAuth {
		raw := *client
		raw.Transport = rawBasicAuth{base: client.Transport}
		client = &raw
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL(),
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock replaces the time source. Intended for tests.
func (c *Cache) SetClock(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// AuthorizationValue returns the value of the Authorization header, e.g. "Bearer <token>".
func (c *Cache) AuthorizationValue(ctx context.Context) (string, error) {
	cred, err := c.Credential(ctx)
	if err != nil {
		return "", err
	}
	return cred.TokenType + " " + cred.Token, nil
}

// Credential returns a valid credential, fetching a new one when the cached
// credential is missing or stale. The grant is shared by concurrent callers and
// outlives the caller that started it; each caller stops waiting when its own
// ctx is done.
func (c *Cache) Credential(ctx context.Context) (*Credential, error) {
	if cred := c.fresh(); cred != nil {
		return cred, nil
	}

	grantCtx := context.WithoutCancel(ctx)
	ch := c.sf.DoChan("credential", func() (any, error) {
		// Another caller may have refreshed while we waited.
		if cred := c.fresh(); cred != nil {
			return cred, nil
		}
		return c.fetch(grantCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Credential), nil
	}
}

func (c *Cache) fresh() *Credential {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.cred.Stale(c.now()) {
		return nil
	}
	return c.cred
}

func (c *Cache) fetch(ctx context.Context) (*Credential, error) {
	c.logger.Debug("Fetching new access token", zap.String("url", c.cfg.TokenURL()))

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.client)
	tok, err := c.oauth.PasswordCredentialsToken(ctx, c.cfg.AccessKey, c.cfg.SecretKey)
	if err != nil {
		c.logger.Error("Access token request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to acquire access token: %v", ErrAuth, err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("%w: invalid token response: access_token not found", ErrAuth)
	}

	tokenType := tok.TokenType
	if tokenType == "" {
		tokenType = DefaultTokenType
	}
	expiresIn := DefaultExpiresIn
	if secs := utils.ToInt(tok.Extra("expires_in")); secs > 0 {
		expiresIn = time.Duration(secs) * time.Second
	}

	c.mu.Lock()
	cred := &Credential{
		Token:     tok.AccessToken,
		TokenType: tokenType,
		ExpiresAt: c.now().Add(expiresIn),
	}
	c.cred = cred
	c.mu.Unlock()

	c.logger.Info("Access token acquired",
		zap.String("token_type", cred.TokenType),
		zap.Time("expires_at", cred.ExpiresAt),
	)
	return cred, nil
}

// Revoke notifies the provider that the current token is no longer needed and
// clears the cached credential. Local state is cleared even if the provider
// call fails; the failure is still returned.
func (c *Cache) Revoke(ctx context.Context) error {
	c.mu.Lock()
	cred := c.cred
	c.cred = nil
	c.mu.Unlock()

	if cred == nil {
		c.logger.Info("No token to revoke")
		return nil
	}

	form := url.Values{}
	form.Set("token", cred.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.RevokeURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to build revoke request: %v", ErrAuth, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(url.QueryEscape(c.cfg.ClientID), url.QueryEscape(c.cfg.ClientSecret))

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Token revoke failed", zap.Error(err))
		return fmt.Errorf("%w: failed to revoke token: %v", ErrAuth, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Token revoke rejected", zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: failed to revoke token: status %d", ErrAuth, resp.StatusCode)
	}

	c.logger.Info("Token revoked")
	return nil
}

// rawBasicAuth undoes the form encoding that RFC 6749 applies to client
// credentials in the Basic header, for providers that compare them verbatim.
type rawBasicAuth struct {
	base http.RoundTripper
}

func (t rawBasicAuth) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	id, secret, ok := req.BasicAuth()
	if !ok {
		return base.RoundTrip(req)
	}
	rawID, errID := url.QueryUnescape(id)
	rawSecret, errSecret := url.QueryUnescape(secret)
	if errID != nil || errSecret != nil {
		return base.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	req.SetBasicAuth(rawID, rawSecret)
	return base.RoundTrip(req)
}

// Info reports the state of the cached credential.
func (c *Cache) Info() Info {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.cred == nil {
		return Info{}
	}
	expires := c.cred.ExpiresAt
	return Info{
		HasToken:  true,
		IsValid:   !c.cred.Stale(c.now()),
		ExpiresAt: &expires,
		TokenType: c.cred.TokenType,
	}
}
