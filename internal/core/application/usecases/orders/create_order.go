package orders

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// CreateOrderHandler validates an order create payload and appends the new
// record to the collection. Creation never sets a status — pending is
// implicit until the first update writes one — so the create pipeline has
// no status checks.
type CreateOrderHandler struct {
	repo   ports.OrderRepository
	nextID ports.IDGenerator
	checks pipeline.Pipeline
}

// NewCreateOrderHandler creates the handler and fixes its pipeline.
func NewCreateOrderHandler(repo ports.OrderRepository, nextID ports.IDGenerator) CreateOrderHandler {
	return CreateOrderHandler{
		repo:   repo,
		nextID: nextID,
		checks: pipeline.New(
			validation.HasField(resourceLabel, "deliverTo"),
			validation.HasField(resourceLabel, "mobileNumber"),
			validation.HasField(resourceLabel, "dishes"),
			validation.NonEmptyText(resourceLabel, "deliverTo"),
			validation.NonEmptyText(resourceLabel, "mobileNumber"),
			validation.HasAtLeastOneDish(),
			validation.DishQuantitiesAreValid(),
		),
	}
}

// Handle runs the create pipeline, then constructs the order with a freshly
// assigned id and the submitted line items exactly as sent.
func (h CreateOrderHandler) Handle(ctx context.Context, req *pipeline.Request) (*order.Order, error) {
	if err := h.checks.Run(ctx, req); err != nil {
		return nil, err
	}

	created := order.New(
		h.nextID(),
		req.Text("deliverTo"),
		req.Text("mobileNumber"),
		req.List("dishes"),
	)
	if err := h.repo.Append(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}
