package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streamingCard(value string) Card {
	return Card{
		Children: []Component{
			Title{Value: "Draft"},
			Text{ID: "body", Value: value, Streaming: true, MinLines: 6},
		},
	}
}

func TestDiffIdenticalTrees(t *testing.T) {
	events, err := Diff(streamingCard("Hi Aline,"), streamingCard("Hi Aline,"))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDiffStreamingTextAppend(t *testing.T) {
	events, err := Diff(streamingCard("Hi Aline,"), streamingCard("Hi Aline,\n\nThursday works"))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventStreamingTextDelta, events[0].Type)
	assert.Equal(t, "body", events[0].ComponentID)
	assert.Equal(t, "\n\nThursday works", events[0].Delta)
	assert.Nil(t, events[0].Root)
}

func TestDiffMultipleStreamingTextsFallBack(t *testing.T) {
	// The in-place append patch applies to exactly one diverging node; two
	// concurrently growing texts redraw the whole tree.
	before := Card{Children: []Component{
		Text{ID: "a", Value: "one", Streaming: true},
		Text{ID: "b", Value: "two", Streaming: true},
	}}
	after := Card{Children: []Component{
		Text{ID: "a", Value: "one plus", Streaming: true},
		Text{ID: "b", Value: "two plus", Streaming: true},
	}}

	events, err := Diff(before, after)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventRootUpdated, events[0].Type)
	assert.Equal(t, after, events[0].Root)
}

func TestDiffStructuralChange(t *testing.T) {
	before := streamingCard("Hi")
	after := streamingCard("Hi")
	after.Children = append(after.Children, Divider{})

	events, err := Diff(before, after)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventRootUpdated, events[0].Type)
	assert.Equal(t, after, events[0].Root)
}

func TestDiffFullUpdateCases(t *testing.T) {
	tests := []struct {
		name   string
		before Root
		after  Root
	}{
		{
			name:   "value shrank",
			before: streamingCard("Hi Aline, Thursday works"),
			after:  streamingCard("Hi Aline,"),
		},
		{
			name:   "value replaced rather than extended",
			before: streamingCard("Hi Aline,"),
			after:  streamingCard("Hello Bob,"),
		},
		{
			name: "non streaming text changed",
			before: Card{Children: []Component{
				Text{ID: "body", Value: "Hi"},
			}},
			after: Card{Children: []Component{
				Text{ID: "body", Value: "Hi there"},
			}},
		},
		{
			name: "streaming text without id",
			before: Card{Children: []Component{
				Text{Value: "Hi", Streaming: true},
			}},
			after: Card{Children: []Component{
				Text{Value: "Hi there", Streaming: true},
			}},
		},
		{
			name:   "sibling attribute changed alongside append",
			before: streamingCard("Hi"),
			after: Card{Children: []Component{
				Title{Value: "Draft v2"},
				Text{ID: "body", Value: "Hi there", Streaming: true, MinLines: 6},
			}},
		},
		{
			name:   "root type changed",
			before: streamingCard("Hi"),
			after:  ListView{Children: []Component{ListViewItem{}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := Diff(tt.before, tt.after)
			require.NoError(t, err)
			require.Len(t, events, 1)
			assert.Equal(t, EventRootUpdated, events[0].Type)
			assert.Equal(t, tt.after, events[0].Root)
		})
	}
}

func TestDiffNilBefore(t *testing.T) {
	after := streamingCard("Hi")
	events, err := Diff(nil, after)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventRootUpdated, events[0].Type)
}
