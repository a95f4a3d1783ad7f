// Package delivery holds the servers exposing the coordinator.
package delivery

import "context"

// Delivery is a server started by the application and stopped through its fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
