package orders

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/ports"
)

// DeleteOrderHandler removes an order from the collection. Deletion is
// permitted only while the stored status is pending; the pipeline rejects
// every other state before the mutation runs.
type DeleteOrderHandler struct {
	repo   ports.OrderRepository
	checks pipeline.Pipeline
}

// NewDeleteOrderHandler creates the handler and fixes its pipeline.
func NewDeleteOrderHandler(repo ports.OrderRepository) DeleteOrderHandler {
	return DeleteOrderHandler{
		repo: repo,
		checks: pipeline.New(
			validation.Exists(notFoundLabel, orderLookup(repo)),
			validation.DeletableOnlyWhenPending(),
		),
	}
}

// Handle runs the delete pipeline, then removes the resolved order by
// identity. Success carries no body; the boundary responds 204.
func (h DeleteOrderHandler) Handle(ctx context.Context, req *pipeline.Request) error {
	if err := h.checks.Run(ctx, req); err != nil {
		return err
	}
	return h.repo.RemoveByID(ctx, req.RouteID)
}
