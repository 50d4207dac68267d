// Package delivery defines the contract every transport entrypoint
// implements, so the application can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server, e.g. the HTTP API.
// Serve blocks until the server stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
