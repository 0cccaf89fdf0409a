// Package integrity checks that the upstream systems the service depends on
// are reachable: the identity provider, PLM and IDM.
package integrity
