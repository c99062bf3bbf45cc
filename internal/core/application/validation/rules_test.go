package validation_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/core/application/validation"
	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, step pipeline.Step, req *pipeline.Request) error {
	t.Helper()
	return step(context.Background(), req)
}

func requireBadRequest(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	var reqErr *errs.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
	assert.Equal(t, message, reqErr.Message)
}

func TestHasField(t *testing.T) {
	t.Run("passes when field holds a value", func(t *testing.T) {
		req := &pipeline.Request{Data: map[string]any{"name": "Taco"}}
		require.NoError(t, run(t, validation.HasField("Dish", "name"), req))
	})

	t.Run("fails when field is missing", func(t *testing.T) {
		req := &pipeline.Request{Data: map[string]any{}}
		err := run(t, validation.HasField("Dish", "name"), req)
		requireBadRequest(t, err, "Dish must include a name")
	})

	t.Run("falsy values count as absent", func(t *testing.T) {
		falsy := map[string]any{
			"empty string": "",
			"zero":         float64(0),
			"null":         nil,
			"false":        false,
		}
		for name, value := range falsy {
			t.Run(name, func(t *testing.T) {
				req := &pipeline.Request{Data: map[string]any{"price": value}}
				err := run(t, validation.HasField("Dish", "price"), req)
				requireBadRequest(t, err, "Dish must include a price")
			})
		}
	})

	t.Run("arrays and objects always count as present", func(t *testing.T) {
		req := &pipeline.Request{Data: map[string]any{"dishes": []any{}}}
		require.NoError(t, run(t, validation.HasField("Order", "dishes"), req))

		req = &pipeline.Request{Data: map[string]any{"dishes": map[string]any{}}}
		require.NoError(t, run(t, validation.HasField("Order", "dishes"), req))
	})

	t.Run("nil data map counts every field as absent", func(t *testing.T) {
		req := &pipeline.Request{}
		err := run(t, validation.HasField("Order", "deliverTo"), req)
		requireBadRequest(t, err, "Order must include a deliverTo")
	})
}

func TestNonEmptyText(t *testing.T) {
	t.Run("passes for non-empty text", func(t *testing.T) {
		req := &pipeline.Request{Data: map[string]any{"deliverTo": "221B Baker St"}}
		require.NoError(t, run(t, validation.NonEmptyText("Order", "deliverTo"), req))
	})

	t.Run("fails for zero-length text", func(t *testing.T) {
		req := &pipeline.Request{Data: map[string]any{"deliverTo": ""}}
		err := run(t, validation.NonEmptyText("Order", "deliverTo"), req)
		requireBadRequest(t, err, "Order must include a deliverTo")
	})

	t.Run("non-string values pass", func(t *testing.T) {
		req := &pipeline.Request{Data: map[string]any{"deliverTo": float64(5)}}
		require.NoError(t, run(t, validation.NonEmptyText("Order", "deliverTo"), req))
	})
}

func TestPriceIsValid(t *testing.T) {
	t.Run("passes for a positive integer", func(t *testing.T) {
		req := &pipeline.Request{Data: map[string]any{"price": float64(8)}}
		require.NoError(t, run(t, validation.PriceIsValid(), req))
	})

	t.Run("rejects invalid prices", func(t *testing.T) {
		invalid := map[string]any{
			"negative":   float64(-5),
			"zero":       float64(0),
			"fractional": 2.5,
			"text":       "8",
			"missing":    nil,
		}
		for name, value := range invalid {
			t.Run(name, func(t *testing.T) {
				req := &pipeline.Request{Data: map[string]any{"price": value}}
				err := run(t, validation.PriceIsValid(), req)
				requireBadRequest(t, err, "Dish must have a price that is an integer greater than 0")
			})
		}
	})
}

func TestHasAtLeastOneDish(t *testing.T) {
	t.Run("passes for a non-empty array", func(t *testing.T) {
		req := &pipeline.Request{Data: map[string]any{
			"dishes": []any{map[string]any{"quantity": float64(1)}},
		}}
		require.NoError(t, run(t, validation.HasAtLeastOneDish(), req))
	})

	t.Run("rejects empty array, non-array, and missing field", func(t *testing.T) {
		for name, value := range map[string]any{
			"empty array": []any{},
			"text":        "dishes",
			"missing":     nil,
		} {
			t.Run(name, func(t *testing.T) {
				req := &pipeline.Request{Data: map[string]any{"dishes": value}}
				err := run(t, validation.HasAtLeastOneDish(), req)
				requireBadRequest(t, err, "Order must include at least one dish")
			})
		}
	})
}

func TestDishQuantitiesAreValid(t *testing.T) {
	lineItems := func(quantities ...any) map[string]any {
		items := make([]any, 0, len(quantities))
		for _, q := range quantities {
			items = append(items, map[string]any{"quantity": q})
		}
		return map[string]any{"dishes": items}
	}

	t.Run("passes when every quantity is a positive integer", func(t *testing.T) {
		req := &pipeline.Request{Data: lineItems(float64(2), float64(1))}
		require.NoError(t, run(t, validation.DishQuantitiesAreValid(), req))
	})

	t.Run("reports the first offending index only", func(t *testing.T) {
		req := &pipeline.Request{Data: lineItems(float64(2), float64(0), float64(-1))}
		err := run(t, validation.DishQuantitiesAreValid(), req)
		requireBadRequest(t, err, "Dish 1 must have a quantity that is an integer greater than 0")
	})

	t.Run("rejects missing, zero, and fractional quantities", func(t *testing.T) {
		for name, value := range map[string]any{
			"missing":    nil,
			"zero":       float64(0),
			"fractional": 1.5,
			"text":       "2",
		} {
			t.Run(name, func(t *testing.T) {
				req := &pipeline.Request{Data: lineItems(value)}
				err := run(t, validation.DishQuantitiesAreValid(), req)
				requireBadRequest(t, err, "Dish 0 must have a quantity that is an integer greater than 0")
			})
		}
	})

	t.Run("negative integers pass", func(t *testing.T) {
		// Long-standing behavior of the quantity rule: only zero, absent,
		// and non-integer values are rejected.
		req := &pipeline.Request{Data: lineItems(float64(-1))}
		require.NoError(t, run(t, validation.DishQuantitiesAreValid(), req))
	})
}

func TestStatusIsValid(t *testing.T) {
	t.Run("forward-progress statuses pass", func(t *testing.T) {
		for _, status := range []string{"pending", "preparing", "out-for-delivery"} {
			t.Run(status, func(t *testing.T) {
				req := &pipeline.Request{Data: map[string]any{"status": status}}
				require.NoError(t, run(t, validation.StatusIsValid(), req))
			})
		}
	})

	t.Run("submitting delivered gets the terminal-state message", func(t *testing.T) {
		req := &pipeline.Request{Data: map[string]any{"status": "delivered"}}
		err := run(t, validation.StatusIsValid(), req)
		requireBadRequest(t, err, "A delivered order cannot be changed")
	})

	t.Run("unknown statuses get the enumeration message", func(t *testing.T) {
		for _, status := range []string{"invalid", "", "Pending"} {
			t.Run(fmt.Sprintf("status %q", status), func(t *testing.T) {
				req := &pipeline.Request{Data: map[string]any{"status": status}}
				err := run(t, validation.StatusIsValid(), req)
				requireBadRequest(t, err,
					"Order must have a status of pending, preparing, out-for-delivery, delivered")
			})
		}
	})

	t.Run("stored delivered order refuses any update", func(t *testing.T) {
		for _, requested := range []string{"pending", "preparing", "out-for-delivery", "delivered"} {
			t.Run("requesting "+requested, func(t *testing.T) {
				req := &pipeline.Request{Data: map[string]any{"status": requested}}
				req.Bind(&order.Order{ID: "1", Status: order.Delivered})

				err := run(t, validation.StatusIsValid(), req)
				requireBadRequest(t, err, "A delivered order cannot be changed")
			})
		}
	})
}

func TestBodyIDMatchesRoute(t *testing.T) {
	t.Run("absent body id passes", func(t *testing.T) {
		for name, value := range map[string]any{
			"missing":      nil,
			"empty string": "",
		} {
			t.Run(name, func(t *testing.T) {
				req := &pipeline.Request{RouteID: "5", Data: map[string]any{"id": value}}
				require.NoError(t, run(t, validation.BodyIDMatchesRoute("Order"), req))
			})
		}
	})

	t.Run("matching id passes", func(t *testing.T) {
		req := &pipeline.Request{RouteID: "5", Data: map[string]any{"id": "5"}}
		require.NoError(t, run(t, validation.BodyIDMatchesRoute("Order"), req))
	})

	t.Run("mismatching id fails with both ids in the message", func(t *testing.T) {
		req := &pipeline.Request{RouteID: "5", Data: map[string]any{"id": "999"}}
		err := run(t, validation.BodyIDMatchesRoute("Order"), req)
		requireBadRequest(t, err, "Order id does not match route id. Order: 999, Route: 5")
	})

	t.Run("numeric body id never matches a route string", func(t *testing.T) {
		req := &pipeline.Request{RouteID: "5", Data: map[string]any{"id": float64(5)}}
		err := run(t, validation.BodyIDMatchesRoute("Dish"), req)
		requireBadRequest(t, err, "Dish id does not match route id. Dish: 5, Route: 5")
	})
}

func TestExists(t *testing.T) {
	found := func(record any) validation.Lookup {
		return func(_ context.Context, _ string) (any, error) { return record, nil }
	}
	missing := func(_ context.Context, id string) (any, error) {
		return nil, errs.NewObjectNotFoundError("dishId", id)
	}

	t.Run("binds the resolved record", func(t *testing.T) {
		record := &order.Order{ID: "42"}
		req := &pipeline.Request{RouteID: "42"}

		require.NoError(t, run(t, validation.Exists("order", found(record)), req))
		assert.Same(t, record, req.Resolved())
	})

	t.Run("missing record fails with 404 and the route id", func(t *testing.T) {
		req := &pipeline.Request{RouteID: "abc"}
		err := run(t, validation.Exists("Dish", missing), req)

		var reqErr *errs.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusNotFound, reqErr.Status)
		assert.Equal(t, "Dish id not found: abc", reqErr.Message)
		assert.Nil(t, req.Resolved())
	})

	t.Run("other lookup errors pass through untouched", func(t *testing.T) {
		broken := errors.New("connection refused")
		lookup := func(_ context.Context, _ string) (any, error) { return nil, broken }

		err := run(t, validation.Exists("Dish", lookup), &pipeline.Request{RouteID: "1"})
		assert.Equal(t, broken, err)
	})
}

func TestDeletableOnlyWhenPending(t *testing.T) {
	t.Run("pending order may be deleted", func(t *testing.T) {
		req := &pipeline.Request{}
		req.Bind(&order.Order{ID: "1", Status: order.Pending})
		require.NoError(t, run(t, validation.DeletableOnlyWhenPending(), req))
	})

	t.Run("any other state refuses deletion", func(t *testing.T) {
		states := []order.Status{order.Preparing, order.OutForDelivery, order.Delivered, order.Unknown}
		for _, status := range states {
			t.Run(fmt.Sprintf("status %q", string(status)), func(t *testing.T) {
				req := &pipeline.Request{}
				req.Bind(&order.Order{ID: "1", Status: status})

				err := run(t, validation.DeletableOnlyWhenPending(), req)
				requireBadRequest(t, err, "An order cannot be deleted unless it is pending")
			})
		}
	})
}
