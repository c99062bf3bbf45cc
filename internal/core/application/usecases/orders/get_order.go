package orders

import (
	"context"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// GetOrderHandler resolves a single order by its route identifier.
type GetOrderHandler struct {
	checks pipeline.Pipeline
}

// NewGetOrderHandler creates the handler; the read pipeline is just the
// existence check.
func NewGetOrderHandler(repo ports.OrderRepository) GetOrderHandler {
	return GetOrderHandler{
		checks: pipeline.New(
			validation.Exists(notFoundLabel, orderLookup(repo)),
		),
	}
}

// Handle returns the order the existence check resolved.
func (h GetOrderHandler) Handle(ctx context.Context, req *pipeline.Request) (*order.Order, error) {
	if err := h.checks.Run(ctx, req); err != nil {
		return nil, err
	}
	return req.Resolved().(*order.Order), nil
}
