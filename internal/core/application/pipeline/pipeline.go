package pipeline

import "context"

// Request is the per-request context threaded through a pipeline. It carries
// the route identifier, the decoded payload of the {data: {...}} envelope,
// and the record a resource-existence step has resolved for downstream steps.
type Request struct {
	// RouteID is the resource identifier extracted from the route, e.g. the
	// :dishId or :orderId path parameter. Empty for collection routes.
	RouteID string

	// Data is the decoded content of the request body's data envelope.
	// A nil map is valid and behaves as an empty payload.
	Data map[string]any

	resolved any
}

// Bind stores the record resolved by an existence check so later steps and
// the operation handler can dereference it without a second lookup.
func (r *Request) Bind(record any) {
	r.resolved = record
}

// Resolved returns the record bound by Bind, or nil if no existence check
// has run on this request.
func (r *Request) Resolved() any {
	return r.resolved
}

// Text returns the named payload field as a string, or "" when the field is
// absent or not textual.
func (r *Request) Text(field string) string {
	s, _ := r.Data[field].(string)
	return s
}

// Integer returns the named payload field as an int. JSON numbers decode as
// float64; the fraction is truncated, so callers must have validated the
// field as integral first.
func (r *Request) Integer(field string) int {
	f, _ := r.Data[field].(float64)
	return int(f)
}

// List returns the named payload field as a raw JSON array, or nil when the
// field is absent or not an array.
func (r *Request) List(field string) []any {
	l, _ := r.Data[field].([]any)
	return l
}

// Step is a single validation predicate over the request. A nil return passes
// control to the next step; a non-nil error terminates the pipeline and is
// propagated verbatim to the response boundary.
type Step func(ctx context.Context, req *Request) error

// Pipeline is a fixed, ordered list of steps evaluated ahead of an operation
// handler. Construction fixes the order; Run interprets it.
type Pipeline struct {
	steps []Step
}

// New creates a pipeline that evaluates the given steps in argument order.
func New(steps ...Step) Pipeline {
	return Pipeline{steps: steps}
}

// Run executes the steps in order and short-circuits on the first failure.
// The first failing step's error is returned unchanged; no aggregation of
// multiple failures takes place.
func (p Pipeline) Run(ctx context.Context, req *Request) error {
	for _, step := range p.steps {
		if err := step(ctx, req); err != nil {
			return err
		}
	}
	return nil
}
