// Package middleware groups the Fiber middleware shared by every feature.
//
// Subpackages:
//
//   - rayid: tags each request with an X-Ray-ID, reusing the caller's when present,
//     and stores it in the request locals for logger.WithRayID.
//   - auth: enforces the X-API-Key header outside an allow-list of public paths.
//
// Register rayid before anything that logs, and auth after the public routes.
package middleware
