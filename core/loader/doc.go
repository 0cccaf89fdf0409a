// Package loader registers HTTP features with the Fiber app.
//
// A feature bundles a service and its routes behind the Feature interface.
// cmd/start.go constructs each feature with its dependencies, registers it
// on a Manager, and calls LoadAll once middleware is in place. Disabled
// features are skipped and logged.
package loader
