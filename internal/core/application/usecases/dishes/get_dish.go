package dishes

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

// GetDishHandler resolves a single dish by its route identifier.
type GetDishHandler struct {
	checks pipeline.Pipeline
}

// NewGetDishHandler creates the handler; the read pipeline is just the
// existence check.
func NewGetDishHandler(repo ports.DishRepository) GetDishHandler {
	return GetDishHandler{
		checks: pipeline.New(
			validation.Exists(resourceLabel, dishLookup(repo)),
		),
	}
}

// Handle returns the dish the existence check resolved.
func (h GetDishHandler) Handle(ctx context.Context, req *pipeline.Request) (*dish.Dish, error) {
	if err := h.checks.Run(ctx, req); err != nil {
		return nil, err
	}
	return req.Resolved().(*dish.Dish), nil
}
