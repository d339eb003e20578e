// Package api implements the HTTP layer of the Vatify SDK: request
// construction, JSON wire types, and mapping of non-2xx responses and
// transport failures into typed errors. The public vatify package wraps
// these into its single error surface.
package api
