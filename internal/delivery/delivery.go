// Package delivery defines the contract every transport surface
// (storefront HTTP, webhook HTTP) implements so main can start them
// uniformly.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the
// server stops; shutdown is wired through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
