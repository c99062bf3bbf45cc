package orders

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// UpdateOrderHandler validates an order update payload and overwrites all
// mutable fields of the resolved record in place.
//
// Check order matters: existence first so every later step can dereference
// the stored order, presence before format, the status gate after the field
// checks, and the body/route id match deliberately last so field-format
// errors surface before identity mismatches.
type UpdateOrderHandler struct {
	repo   ports.OrderRepository
	checks pipeline.Pipeline
}

// NewUpdateOrderHandler creates the handler and fixes its pipeline.
func NewUpdateOrderHandler(repo ports.OrderRepository) UpdateOrderHandler {
	return UpdateOrderHandler{
		repo: repo,
		checks: pipeline.New(
			validation.Exists(notFoundLabel, orderLookup(repo)),
			validation.HasField(resourceLabel, "deliverTo"),
			validation.HasField(resourceLabel, "mobileNumber"),
			validation.HasField(resourceLabel, "status"),
			validation.HasField(resourceLabel, "dishes"),
			validation.NonEmptyText(resourceLabel, "deliverTo"),
			validation.NonEmptyText(resourceLabel, "mobileNumber"),
			validation.HasAtLeastOneDish(),
			validation.DishQuantitiesAreValid(),
			validation.StatusIsValid(),
			validation.BodyIDMatchesRoute(resourceLabel),
		),
	}
}

// Handle runs the update pipeline, then replaces every mutable field of the
// resolved order with the submitted values. The id never changes.
func (h UpdateOrderHandler) Handle(ctx context.Context, req *pipeline.Request) (*order.Order, error) {
	if err := h.checks.Run(ctx, req); err != nil {
		return nil, err
	}

	updated := req.Resolved().(*order.Order)
	updated.DeliverTo = req.Text("deliverTo")
	updated.MobileNumber = req.Text("mobileNumber")
	updated.Status = order.Status(req.Text("status"))
	updated.Dishes = req.List("dishes")

	if err := h.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
