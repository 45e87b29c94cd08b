// Package ledger contains the cash-register ledger model.
//
// A Movement is an immutable, append-only record of money moving through the
// register. Amounts are always stored positive; the Kind (entry, exit,
// credit) carries the direction. Every successfully created order appends
// exactly one entry movement for its total, in the same transaction as the
// order itself.
package ledger
