// Package delivery defines the inbound surfaces started by the binaries.
package delivery

import "context"

// Delivery is a long-running inbound server.
type Delivery interface {
	Serve(ctx context.Context) error
}
