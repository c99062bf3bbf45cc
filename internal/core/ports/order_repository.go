package ports

import (
	"context"

	"grubdash/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for the order collection.
type OrderRepository interface {
	// FindByID retrieves an order by its identifier. A missing record yields
	// an error unwrapping to errs.ErrObjectNotFound.
	FindByID(ctx context.Context, id string) (*order.Order, error)

	// Append adds a newly created order to the end of the collection.
	Append(ctx context.Context, o *order.Order) error

	// Update persists a full-replace mutation of an existing order.
	Update(ctx context.Context, o *order.Order) error

	// RemoveByID deletes the order with the given identifier. Removing an
	// absent id is silent; existence has already been checked upstream.
	RemoveByID(ctx context.Context, id string) error

	// All returns the current collection, unfiltered, in insertion order.
	All(ctx context.Context) ([]*order.Order, error)
}
