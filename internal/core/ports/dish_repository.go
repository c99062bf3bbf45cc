package ports

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
)

// DishRepository defines the persistence contract for the dish collection.
// Records are owned by the repository; callers hold only transient
// references during a single request. All returns insertion order.
//
// The interface deliberately has no Remove: dishes are never deleted.
type DishRepository interface {
	// FindByID retrieves a dish by its identifier. A missing record yields
	// an error unwrapping to errs.ErrObjectNotFound.
	FindByID(ctx context.Context, id string) (*dish.Dish, error)

	// Append adds a newly created dish to the end of the collection.
	Append(ctx context.Context, d *dish.Dish) error

	// Update persists a full-replace mutation of an existing dish.
	Update(ctx context.Context, d *dish.Dish) error

	// All returns the current collection, unfiltered, in insertion order.
	All(ctx context.Context) ([]*dish.Dish, error)
}
