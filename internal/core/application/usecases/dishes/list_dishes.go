package dishes

import (
	"context"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

// ListDishesHandler returns the full dish collection, unfiltered, in
// storage order. No validation pipeline applies to list.
type ListDishesHandler struct {
	repo ports.DishRepository
}

// NewListDishesHandler creates the handler.
func NewListDishesHandler(repo ports.DishRepository) ListDishesHandler {
	return ListDishesHandler{repo: repo}
}

// Handle returns all dishes.
func (h ListDishesHandler) Handle(ctx context.Context) ([]*dish.Dish, error) {
	return h.repo.All(ctx)
}
