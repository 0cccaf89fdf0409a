package ion_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"theme-sync/core/ion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticAuth struct {
	value string
	err   error
}

func (a staticAuth) AuthorizationValue(context.Context) (string, error) {
	return a.value, a.err
}

func newTestClient(t *testing.T, handler http.HandlerFunc, auth ion.Authorizer) *ion.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return ion.NewClient(ion.Config{APIURL: srv.URL, TenantID: "TENANT"}, srv.Client(), auth, zap.NewNop())
}

func TestClient_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/TENANT/FASHIONPLM/odata2/api/odata2/STYLE", r.URL.Path)
		assert.Equal(t, "StyleId eq 5", r.URL.Query().Get("$filter"))
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"value":[{"StyleId":5}]}`)
	}, staticAuth{value: "Bearer abc"})

	var out struct {
		Value []struct {
			StyleID int `json:"StyleId"`
		} `json:"value"`
	}
	err := client.Get(context.Background(), "FASHIONPLM/odata2/api/odata2/STYLE", url.Values{"$filter": {"StyleId eq 5"}}, &out)
	require.NoError(t, err)
	require.Len(t, out.Value, 1)
	assert.Equal(t, 5, out.Value[0].StyleID)
}

func TestClient_ErrorClassification(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, `{"error":"boom"}`)
	}, staticAuth{value: "Bearer abc"})

	err := client.Get(context.Background(), "IDM/api/items/x", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ion.ErrUpstreamFetch)
	assert.Equal(t, http.StatusBadGateway, ion.StatusCode(err))
	assert.NotContains(t, err.Error(), "Bearer")

	err = client.Patch(context.Background(), "FASHIONPLM/odata2/api/odata2/STYLE(5)", map[string]int{"Status": 2}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ion.ErrUpstreamWrite)
	assert.False(t, errors.Is(err, ion.ErrUpstreamFetch))
}

func TestClient_AuthFailureShortCircuits(t *testing.T) {
	authErr := errors.New("no token")
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, staticAuth{err: authErr})

	err := client.Post(context.Background(), "FASHIONPLM/job/api/job/tasks", map[string]any{}, nil)
	assert.ErrorIs(t, err, authErr)
	assert.False(t, called)
}

func TestClient_EmptyBodyIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		data, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"Status":2}`, string(data))
		w.WriteHeader(http.StatusNoContent)
	}, staticAuth{value: "Bearer abc"})

	var out map[string]any
	err := client.Patch(context.Background(), "STYLE(1)", map[string]int{"Status": 2}, &out)
	assert.NoError(t, err)
	assert.Nil(t, out)
}

func TestNewHTTPClient_DefaultTimeout(t *testing.T) {
	c := ion.NewHTTPClient(ion.Config{})
	assert.Equal(t, "30s", c.Timeout.String())
}
