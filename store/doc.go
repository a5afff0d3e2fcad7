// Package store provides implementations of the core.Store persistence
// contract: an in-process store for tests, examples and single-process
// prototypes, and shared pagination helpers used by the durable backends.
//
// All implementations scope every row by owning principal and paginate lists
// with a keyset cursor over the (created_at, insertion-order) sort key, so
// pages stay stable while new rows arrive.
package store
