// Package order contains the order aggregate and its lifecycle state machine.
//
// The lifecycle is strictly linear: Ordered → Ready → Delivered → Paid. Each
// step is gated to exactly one role (Chef, Waiter, Admin respectively), and the
// per-role work queues are derived from the same transition table, so every
// role only ever sees the slice of orders it is responsible for acting on.
//
// Orders are owned by the remote store; instances in this process are cached
// copies. Advancing an order returns an updated copy rather than mutating in
// place, and the caller swaps its cache entry only after the store has
// acknowledged the new status.
package order
