// Package order contains the order fulfillment aggregate and its supporting
// value objects: the status state machine with its canonical transition table,
// the stage registry and per-sub-process checklists, delivery routing, the
// advisory progress calculator, and the append-only audit history.
//
// The aggregate is the unit of mutation. Every command loads a snapshot,
// mutates through an Order method, and stores the result under the per-order
// compare-and-set discipline enforced by the repository; two conflicting
// writers never merge silently.
package order
