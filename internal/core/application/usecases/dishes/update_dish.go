package dishes

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/ports"
)

// UpdateDishHandler validates a dish update payload and overwrites all
// mutable fields of the resolved record. Updates are full replaces; the
// pipeline guarantees every field is present and valid.
//
// The body/route id-match check runs last, after every field check, so
// format errors surface before identity mismatches.
type UpdateDishHandler struct {
	repo   ports.DishRepository
	checks pipeline.Pipeline
}

// NewUpdateDishHandler creates the handler and fixes its pipeline.
func NewUpdateDishHandler(repo ports.DishRepository) UpdateDishHandler {
	return UpdateDishHandler{
		repo: repo,
		checks: pipeline.New(
			validation.Exists(resourceLabel, dishLookup(repo)),
			validation.HasField(resourceLabel, "name"),
			validation.HasField(resourceLabel, "description"),
			validation.HasField(resourceLabel, "price"),
			validation.HasField(resourceLabel, "image_url"),
			validation.NonEmptyText(resourceLabel, "name"),
			validation.NonEmptyText(resourceLabel, "description"),
			validation.PriceIsValid(),
			validation.NonEmptyText(resourceLabel, "image_url"),
			validation.BodyIDMatchesRoute(resourceLabel),
		),
	}
}

// Handle runs the update pipeline, then replaces every mutable field of the
// resolved dish with the submitted values. The id never changes.
func (h UpdateDishHandler) Handle(ctx context.Context, req *pipeline.Request) (*dish.Dish, error) {
	if err := h.checks.Run(ctx, req); err != nil {
		return nil, err
	}

	updated := req.Resolved().(*dish.Dish)
	updated.Name = req.Text("name")
	updated.Description = req.Text("description")
	updated.Price = req.Integer("price")
	updated.ImageURL = req.Text("image_url")

	if err := h.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
