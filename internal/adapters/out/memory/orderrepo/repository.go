// Package orderrepo provides the in-memory order repository, the mutex-
// guarded insertion-ordered counterpart of the dish repository with removal
// support.
package orderrepo

import (
	"context"
	"sync"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"
)

// Repository holds the authoritative in-memory order collection.
type Repository struct {
	mu     sync.Mutex
	orders []*order.Order
}

// NewRepository creates an empty order repository.
func NewRepository() *Repository {
	return &Repository{}
}

// FindByID retrieves an order by id. A missing id yields an error unwrapping
// to errs.ErrObjectNotFound.
func (r *Repository) FindByID(_ context.Context, id string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderId", id)
}

// Append adds an order to the end of the collection.
func (r *Repository) Append(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, o)
	return nil
}

// Update replaces the stored record with the given one, matched by id.
func (r *Repository) Update(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, stored := range r.orders {
		if stored.ID == o.ID {
			r.orders[i] = o
			return nil
		}
	}
	return errs.NewObjectNotFoundError("orderId", o.ID)
}

// RemoveByID deletes the order with the given id. Removing an absent id is
// a silent no-op.
func (r *Repository) RemoveByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, stored := range r.orders {
		if stored.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

// All returns a snapshot of the collection in insertion order.
func (r *Repository) All(_ context.Context) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]*order.Order, len(r.orders))
	copy(snapshot, r.orders)
	return snapshot, nil
}
