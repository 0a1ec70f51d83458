// Package delivery defines the entry points that expose the application to
// the outside world.
package delivery

import "context"

// Delivery is a server that accepts requests until its context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
