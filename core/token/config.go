package token

// Config holds the OAuth2 client and service-account credentials used for the
// password grant against the ION API identity provider.
type Config struct {
	// ProviderURL is the base URL of the identity provider, ending with a slash.
	ProviderURL string `mapstructure:"provider_url" default:""`
	// TokenEndpoint is appended to ProviderURL to build the grant URL.
	TokenEndpoint string `mapstructure:"token_endpoint" default:"token.oauth2"`
	// RevokeEndpoint is appended to ProviderURL to build the revoke URL.
	RevokeEndpoint string `mapstructure:"revoke_endpoint" default:"revoke_token.oauth2"`
	// ClientID is the OAuth2 client identifier (sent via HTTP Basic auth).
	ClientID string `mapstructure:"client_id" default:""`
	// ClientSecret is the OAuth2 client secret (sent via HTTP Basic auth).
	ClientSecret string `mapstructure:"client_secret" default:""`
	// RawBasicAuth sends ClientID and ClientSecret in the Basic header as-is
	// instead of form-encoded. Needed when the provider does not decode them and
	// the secret holds characters such as '+', '/' or '='.
	RawBasicAuth bool `mapstructure:"raw_basic_auth" default:"false"`
	// AccessKey is the service-account access key, used as the grant username.
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the service-account secret key, used as the grant password.
	SecretKey string `mapstructure:"secret_key" default:""`
}

// TokenURL returns the full grant endpoint URL.
func (c Config) TokenURL() string {
	return c.ProviderURL + c.TokenEndpoint
}

// RevokeURL returns the full revoke endpoint URL.
func (c Config) RevokeURL() string {
	return c.ProviderURL + c.RevokeEndpoint
}
