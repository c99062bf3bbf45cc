// Package dishrepo provides the in-memory dish repository. The collection
// is an insertion-ordered slice guarded by a mutex: echo serves requests
// concurrently, and the repository is the single point where read-modify-
// write sequences must not interleave.
package dishrepo

import (
	"context"
	"sync"

	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/pkg/errs"
)

// Repository holds the authoritative in-memory dish collection.
type Repository struct {
	mu     sync.Mutex
	dishes []*dish.Dish
}

// NewRepository creates an empty dish repository.
func NewRepository() *Repository {
	return &Repository{}
}

// FindByID retrieves a dish by id. A missing id yields an error unwrapping
// to errs.ErrObjectNotFound.
func (r *Repository) FindByID(_ context.Context, id string) (*dish.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.dishes {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("dishId", id)
}

// Append adds a dish to the end of the collection.
func (r *Repository) Append(_ context.Context, d *dish.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dishes = append(r.dishes, d)
	return nil
}

// Update replaces the stored record with the given one, matched by id.
func (r *Repository) Update(_ context.Context, d *dish.Dish) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, stored := range r.dishes {
		if stored.ID == d.ID {
			r.dishes[i] = d
			return nil
		}
	}
	return errs.NewObjectNotFoundError("dishId", d.ID)
}

// All returns a snapshot of the collection in insertion order.
func (r *Repository) All(_ context.Context) ([]*dish.Dish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]*dish.Dish, len(r.dishes))
	copy(snapshot, r.dishes)
	return snapshot, nil
}
