package validation

import (
	"context"
	"errors"
	"fmt"
	"math"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"
)

// Lookup resolves a resource by its route identifier. Implementations wrap a
// repository FindByID; a missing record must unwrap to errs.ErrObjectNotFound.
type Lookup func(ctx context.Context, id string) (any, error)

// present reports whether a decoded JSON value counts as present. Presence is
// deliberately loose: nil, false, "" and 0 all count as absent, while arrays
// and objects always count as present — even empty ones. A price of 0 is
// therefore "missing", not "invalid"; later format checks rely on this
// ordering to never see an absent field.
func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

// integral reports whether a decoded JSON value is an integer-valued number.
func integral(v any) bool {
	f, ok := v.(float64)
	return ok && f == math.Trunc(f)
}

// HasField fails with 400 "<Resource> must include a <field>" when the named
// payload field is absent under the loose presence rules above.
func HasField(resource, field string) pipeline.Step {
	return func(_ context.Context, req *pipeline.Request) error {
		if present(req.Data[field]) {
			return nil
		}
		return errs.NewBadRequestError(fmt.Sprintf("%s must include a %s", resource, field))
	}
}

// NonEmptyText fails with the same message as HasField when the named field
// is a zero-length string. Non-string values pass; they are either already
// rejected by a preceding HasField or out of scope for this check.
func NonEmptyText(resource, field string) pipeline.Step {
	return func(_ context.Context, req *pipeline.Request) error {
		if s, ok := req.Data[field].(string); ok && len(s) == 0 {
			return errs.NewBadRequestError(fmt.Sprintf("%s must include a %s", resource, field))
		}
		return nil
	}
}

// PriceIsValid fails with 400 unless price is an integer-valued number
// strictly greater than zero.
func PriceIsValid() pipeline.Step {
	return func(_ context.Context, req *pipeline.Request) error {
		price, ok := req.Data["price"].(float64)
		if !ok || price <= 0 || price != math.Trunc(price) {
			return errs.NewBadRequestError("Dish must have a price that is an integer greater than 0")
		}
		return nil
	}
}

// HasAtLeastOneDish fails with 400 unless the dishes field is an array with
// at least one element.
func HasAtLeastOneDish() pipeline.Step {
	return func(_ context.Context, req *pipeline.Request) error {
		if items, ok := req.Data["dishes"].([]any); ok && len(items) != 0 {
			return nil
		}
		return errs.NewBadRequestError("Order must include at least one dish")
	}
}

// DishQuantitiesAreValid walks the dishes array and fails on the first line
// item (0-based index) whose quantity is absent, zero, or not an integer.
// It stops at the first offender rather than aggregating. Negative integers
// pass — a quirk of the original quantity rule that is kept for parity.
func DishQuantitiesAreValid() pipeline.Step {
	return func(_ context.Context, req *pipeline.Request) error {
		items, _ := req.Data["dishes"].([]any)
		for i, item := range items {
			line, _ := item.(map[string]any)
			quantity := line["quantity"]
			if !present(quantity) || !integral(quantity) {
				return errs.NewBadRequestError(
					fmt.Sprintf("Dish %d must have a quantity that is an integer greater than 0", i))
			}
		}
		return nil
	}
}

// StatusIsValid gates the status written by an order update.
//
// If the resolved order is already in a terminal state the update is refused
// outright, whatever status the client requested. Otherwise the submitted
// status must be one of the forward-progress values; a submitted "delivered"
// gets the same terminal-state message, and anything else gets the generic
// enumeration message.
func StatusIsValid() pipeline.Step {
	return func(_ context.Context, req *pipeline.Request) error {
		if stored, ok := req.Resolved().(*order.Order); ok && stored.Status.IsTerminal() {
			return errs.NewBadRequestError("A delivered order cannot be changed")
		}

		target := order.Status(req.Text("status"))
		switch {
		case target.IsUpdateTarget():
			return nil
		case target == order.Delivered:
			return errs.NewBadRequestError("A delivered order cannot be changed")
		default:
			return errs.NewBadRequestError("Order must have a status of pending, preparing, out-for-delivery, delivered")
		}
	}
}

// BodyIDMatchesRoute fails with 400 when the payload carries an id that
// differs from the route's identifier. An absent body id passes; no mismatch
// is possible. Update pipelines run this check last so that field-format
// errors surface before identity mismatches.
func BodyIDMatchesRoute(resource string) pipeline.Step {
	return func(_ context.Context, req *pipeline.Request) error {
		id := req.Data["id"]
		if !present(id) {
			return nil
		}
		if s, ok := id.(string); ok && s == req.RouteID {
			return nil
		}
		return errs.NewBadRequestError(fmt.Sprintf(
			"%s id does not match route id. %s: %v, Route: %s", resource, resource, id, req.RouteID))
	}
}

// Exists resolves the route's identifier through the lookup and binds the
// record into the request for downstream steps. A missing record fails with
// 404 "<label> id not found: <id>"; other lookup errors pass through as-is.
func Exists(label string, find Lookup) pipeline.Step {
	return func(ctx context.Context, req *pipeline.Request) error {
		record, err := find(ctx, req.RouteID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return errs.NewNotFoundError(fmt.Sprintf("%s id not found: %s", label, req.RouteID))
			}
			return err
		}
		req.Bind(record)
		return nil
	}
}

// DeletableOnlyWhenPending fails with 400 unless the resolved order's stored
// status is pending. A freshly created order has no explicit status yet and
// is therefore not deletable either.
func DeletableOnlyWhenPending() pipeline.Step {
	return func(_ context.Context, req *pipeline.Request) error {
		if stored, ok := req.Resolved().(*order.Order); ok && stored.Status.AllowsDeletion() {
			return nil
		}
		return errs.NewBadRequestError("An order cannot be deleted unless it is pending")
	}
}
