package order

// Order represents a customer order referencing dishes with quantities.
//
// The record is a plain data holder owned by its repository: all field
// invariants are enforced by the validation pipelines at the mutation
// boundary, never re-checked here. Updates are full replaces — the pipeline
// requires every mutable field to be present, so a partial record can only
// exist transiently inside a failed request.
//
// Dishes holds the line items exactly as the client submitted them (raw
// decoded JSON), because an order echoes its line items back unchanged.
type Order struct {
	ID           string `json:"id"`
	DeliverTo    string `json:"deliverTo"`
	MobileNumber string `json:"mobileNumber"`
	Status       Status `json:"status,omitempty"`
	Dishes       []any  `json:"dishes"`
}

// New creates an order from validated create-operation fields. Status is
// deliberately left unset: creation never assigns one, the first update does.
func New(id, deliverTo, mobileNumber string, dishes []any) *Order {
	return &Order{
		ID:           id,
		DeliverTo:    deliverTo,
		MobileNumber: mobileNumber,
		Dishes:       dishes,
	}
}
