// Package order provides the order record and its status state machine.
//
// Key business rules:
//   - An order must name a recipient, a mobile number, and at least one
//     dish line item with a positive integer quantity.
//   - Creation never sets a status; pending is implicit until the first
//     update writes one explicitly.
//   - Status may be overwritten to pending, preparing, or out-for-delivery;
//     delivered is terminal and freezes the record.
//   - An order may be deleted only while pending.
//
// All of these rules are enforced by the validation pipelines in the
// application layer; the types here carry the data and the status
// predicates the pipelines consult.
package order
