// Package token manages the bearer credential used by every upstream call.
//
// A single Cache instance is created at startup and shared by the PLM and IDM
// clients. It acquires a token with the OAuth2 password grant (service-account
// keys as username/password, client id/secret via Basic auth), keeps it until
// five minutes before expiry and refreshes it transparently.
//
// # Concurrency
//
// Refreshes go through a singleflight group, so concurrent callers that all
// observe a stale credential share one grant request instead of issuing N.
//
// # Usage
//
//	cache := token.NewCache(cfg.Auth, httpClient, logger)
//	value, err := cache.AuthorizationValue(ctx) // "Bearer eyJ..."
package token
