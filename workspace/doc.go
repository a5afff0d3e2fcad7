// Package workspace implements an interactive productivity widget: an inbox,
// a task list and a calendar surfaced as one stateful widget instance.
//
// A Widget carries loaded domain records plus the current view State. Actions
// received from the client drive state transitions through the Machine, which
// persists a snapshot after every change and streams rendered trees (and any
// interleaved caller events) back over a channel. The Renderer turns each
// state into a widget.Root tree; consumers diff consecutive trees with
// widget.Diff to obtain minimal patches.
package workspace
