// Package ion provides the authorized JSON transport shared by the PLM and IDM clients.
//
// Every request carries the Authorization value supplied by an Authorizer
// (the credential cache in production). Non-2xx responses and transport
// failures are returned as *UpstreamError, classified as ErrUpstreamFetch for
// reads and ErrUpstreamWrite for writes so callers can record per-unit failures.
package ion
