package dishes

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

// CreateDishHandler validates a dish create payload and appends the new
// record to the collection.
//
// Check order: the four presence checks run first so a missing field never
// triggers a more specific format message, then the text and price format
// checks in field order.
type CreateDishHandler struct {
	repo   ports.DishRepository
	nextID ports.IDGenerator
	checks pipeline.Pipeline
}

// NewCreateDishHandler creates the handler and fixes its pipeline.
func NewCreateDishHandler(repo ports.DishRepository, nextID ports.IDGenerator) CreateDishHandler {
	return CreateDishHandler{
		repo:   repo,
		nextID: nextID,
		checks: pipeline.New(
			validation.HasField(resourceLabel, "name"),
			validation.HasField(resourceLabel, "description"),
			validation.HasField(resourceLabel, "price"),
			validation.HasField(resourceLabel, "image_url"),
			validation.NonEmptyText(resourceLabel, "name"),
			validation.NonEmptyText(resourceLabel, "description"),
			validation.PriceIsValid(),
			validation.NonEmptyText(resourceLabel, "image_url"),
		),
	}
}

// Handle runs the create pipeline, then constructs the dish with a freshly
// assigned id and the submitted fields taken as-is, and appends it.
func (h CreateDishHandler) Handle(ctx context.Context, req *pipeline.Request) (*dish.Dish, error) {
	if err := h.checks.Run(ctx, req); err != nil {
		return nil, err
	}

	created := dish.New(
		h.nextID(),
		req.Text("name"),
		req.Text("description"),
		req.Integer("price"),
		req.Text("image_url"),
	)
	if err := h.repo.Append(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}
