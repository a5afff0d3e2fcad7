// Package core centralizes the domain contracts of threadkit: the persisted
// entity types (threads, thread items, attachments, widget snapshots), the
// keyset pagination envelope, the action descriptor model with its static
// registration table, the opaque stream-event type forwarded from external
// producers, and the Store interface that persistence backends implement.
//
// Keeping contracts here (rather than in the implementation packages) lets
// higher layers depend on interfaces only, so storage backends and
// presentation renderers can be swapped without touching calling code.
package core
