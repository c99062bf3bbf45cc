package orders

import (
	"context"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/core/ports"
)

// ListOrdersHandler returns the full order collection, unfiltered, in
// storage order. No validation pipeline applies to list.
type ListOrdersHandler struct {
	repo ports.OrderRepository
}

// NewListOrdersHandler creates the handler.
func NewListOrdersHandler(repo ports.OrderRepository) ListOrdersHandler {
	return ListOrdersHandler{repo: repo}
}

// Handle returns all orders.
func (h ListOrdersHandler) Handle(ctx context.Context) ([]*order.Order, error) {
	return h.repo.All(ctx)
}
