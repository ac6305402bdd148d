// Package delivery holds the entry points that drive the use cases: HTTP servers and schedulers.
package delivery

import "context"

// Delivery is a long-running component started by the application.
type Delivery interface {
	// Serve blocks until the component stops or fails.
	Serve(ctx context.Context) error
}
