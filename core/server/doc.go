// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// defines the listen port, the API key protecting every route and the request
// body limit.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by cmd/start.go to configure Fiber.
package server
