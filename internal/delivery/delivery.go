// Package delivery defines the contract shared by all inbound servers.
package delivery

import "context"

// Delivery is a long-running inbound surface (HTTP server, scheduler loop).
// Serve blocks until the server stops; shutdown happens via fx lifecycle
// hooks registered by each implementation.
type Delivery interface {
	Serve(ctx context.Context) error
}
