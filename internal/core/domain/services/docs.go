// Package services provides domain services for the burger counter.
//
// The package includes:
//   - DeliveryPricing: computes delivery fees from neighborhood names
//
// Domain services hold business rules that don't naturally belong to a single
// aggregate root. DeliveryPricing is pure and stateless; the fee it returns
// becomes part of the order's price snapshot.
package services
