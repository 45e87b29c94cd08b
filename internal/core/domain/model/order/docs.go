// Package order contains the Order aggregate and its value objects.
//
// Order is the heart of the system: it snapshots pricing at creation time,
// owns its delivery address, and walks a fixed status lifecycle
// (Accepted -> Preparing -> OutForDelivery -> Completed, with Cancelled
// reachable from any non-terminal state). The aggregate enforces the
// total = item price + delivery fee invariant on construction and restore.
package order
