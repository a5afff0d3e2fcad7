package workspace

import (
	"github.com/hupe1980/threadkit/core"
	"github.com/hupe1980/threadkit/widget"
)

// Output is one element of the stream an action handler emits: either a
// rendered widget tree or a passthrough stream event, never both.
type Output struct {
	Widget widget.Root
	Event  *core.StreamEvent
}

// FromWidget wraps a rendered tree.
func FromWidget(root widget.Root) Output {
	return Output{Widget: root}
}

// FromEvent wraps a passthrough stream event.
func FromEvent(ev core.StreamEvent) Output {
	return Output{Event: &ev}
}
