// Package loadorder models the ordered, enableable mod list.
//
// A List is a value: every mutation returns a new List, so concurrent
// readers never observe a half-applied reorder. The slice order is both the
// display order and the load order; positions among enabled entries are a
// dense 0..N-1 permutation by construction. Persistence lives in the state
// package; this one is pure.
package loadorder
