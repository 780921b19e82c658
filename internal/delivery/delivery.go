// Package delivery holds the transports that expose the portal.
package delivery

import "context"

// Delivery is a long-running server started from the fx invoke hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
