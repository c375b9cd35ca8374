// Package delivery contains the transports exposing the application.
package delivery

import "context"

// Delivery is a server started by the application once dependencies are wired
type Delivery interface {
	Serve(ctx context.Context) error
}
