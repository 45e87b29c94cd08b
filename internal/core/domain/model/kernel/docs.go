// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds primitives that carry domain meaning but belong to no
// single aggregate: UUID identifiers and Money amounts. Both are immutable
// value objects constructed through factory functions that enforce their
// invariants, so aggregates can accept them without re-validating.
package kernel
