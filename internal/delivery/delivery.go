// Package delivery defines the entry points that drive the use cases.
package delivery

import "context"

// Delivery is a caller of the use cases, such as the console demo.
type Delivery interface {
	Serve(ctx context.Context) error
}
