// Package delivery defines the contract shared by the transports the binary serves.
package delivery

import "context"

// Delivery is a long-running transport started by the application.
// Serve blocks until the transport stops; shutdown is driven by the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
