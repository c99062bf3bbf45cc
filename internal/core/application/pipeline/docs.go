// Package pipeline implements the ordered validation pipelines that gate
// every operation on a resource.
//
// A pipeline is a fixed sequence of Step predicates interpreted by Run over a
// shared per-request context. Execution is fail-fast: the first step to
// return an error ends the pipeline and that error — normally a
// *errs.RequestError carrying {status, message} — travels unchanged to the
// response boundary.
//
// Steps communicate through the Request: an existence step resolves a stored
// record and binds it with Bind, and downstream steps (state gates, identity
// checks) read it back with Resolved. Ordering is therefore part of a
// pipeline's contract, not an optimization: presence checks run before
// format checks, and existence checks run before anything that dereferences
// the resolved record.
package pipeline
