// Package validation provides the atomic checks that validation pipelines
// are composed from: payload presence and format predicates, resource
// existence resolution, and the order state-machine gates.
//
// Every primitive is a factory returning a pipeline.Step, parameterized by
// resource name and field so the same check serves both dishes and orders.
// A failing primitive terminates its pipeline with a *errs.RequestError
// whose message is rendered to the client verbatim, so the message strings
// here are part of the API contract.
package validation
