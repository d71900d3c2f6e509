// Package delivery defines the entry points that expose the application to the
// outside world.
package delivery

import "context"

// Delivery is a serving surface, such as an HTTP server. Serve blocks until the
// surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
