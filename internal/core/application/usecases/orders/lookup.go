// Package orders provides the pipeline+handler units for every order
// operation: list, read, create, update, and delete. Handlers compose their
// validation pipelines at construction time; the ordered checks include the
// order status state machine gates (terminal delivered state, delete only
// while pending).
package orders

import (
	"context"

	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/ports"
)

// resourceLabel is the name order validation messages address the client
// with. The not-found message historically uses the lowercase form; see
// notFoundLabel.
const resourceLabel = "Order"

// notFoundLabel keeps the original lowercase "order id not found" wording.
const notFoundLabel = "order"

func orderLookup(repo ports.OrderRepository) validation.Lookup {
	return func(ctx context.Context, id string) (any, error) {
		o, err := repo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return o, nil
	}
}
