package testutil

import (
	"context"

	"github.com/hupe1980/threadkit/core"
)

// Events returns a Producer yielding one stream event per given type, in
// order, then closing.
func Events(types ...string) core.Producer {
	return func(ctx context.Context) <-chan core.StreamEvent {
		ch := make(chan core.StreamEvent, len(types))
		for _, t := range types {
			ch <- core.StreamEvent{Type: t}
		}
		close(ch)
		return ch
	}
}
