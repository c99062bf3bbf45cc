// Package dish provides the menu item record. Dishes are created and
// updated through validated operations and are never deleted.
package dish

// Dish represents a single menu item. Price is in currency minor units and
// must be a positive integer; the remaining fields are non-empty text.
// Like order.Order, the record is plain data: the validation pipelines own
// every invariant and updates replace all fields atomically.
type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}

// New creates a dish from validated create-operation fields.
func New(id, name, description string, price int, imageURL string) *Dish {
	return &Dish{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
	}
}
