// Package dishes provides the pipeline+handler units for every dish
// operation: list, read, create, and update. Each handler composes its
// validation pipeline at construction time and runs it ahead of the
// mutation, so the ordered checks are fixed for the handler's lifetime.
package dishes

import (
	"context"

	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/ports"
)

// resourceLabel is the name dish validation messages address the client with.
const resourceLabel = "Dish"

func dishLookup(repo ports.DishRepository) validation.Lookup {
	return func(ctx context.Context, id string) (any, error) {
		d, err := repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}
