package core

import (
	"context"
	"encoding/json"
)

// StreamEvent is an opaque event supplied by an external producer (a model
// generation stream, a persistence-confirmation stream). The runtime forwards
// these unchanged; it only uses "first event arrived" as a synchronization
// signal during commit sequencing.
type StreamEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Producer lazily yields an ordered sequence of stream events. The returned
// channel must be closed when the sequence ends. Producers carry their own
// cancellation semantics via ctx; the runtime passes it through and otherwise
// does not interpret the events.
type Producer func(ctx context.Context) <-chan StreamEvent

// NoEvents is a Producer that yields nothing. Useful as a default for actions
// whose caller has no generate/save stream to interleave.
func NoEvents(context.Context) <-chan StreamEvent {
	ch := make(chan StreamEvent)
	close(ch)
	return ch
}
