// Package credential exposes the cached ION API credential: its state and a
// revoke action.
package credential
