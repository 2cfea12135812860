// Package delivery defines the contract every transport-facing server of the
// application fulfils.
package delivery

import "context"

// Delivery is one serving surface of the application, such as the HTTP server.
// Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
