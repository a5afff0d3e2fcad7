package testutil

import (
	"encoding/json"
	"time"

	"github.com/hupe1980/threadkit/core"
)

// ThreadBuilder provides a fluent helper for constructing threads in tests.
// Example:
//
//	th := NewThreadBuilder("th-1").Title("support").CreatedAt(ts).Build()
//
// Chain only the parts you need; sensible defaults are applied.
type ThreadBuilder struct {
	id        string
	title     string
	createdAt time.Time
	metadata  map[string]string
}

// NewThreadBuilder creates a builder for a thread with the given id. An empty
// id is replaced with a generated one.
func NewThreadBuilder(id string) *ThreadBuilder {
	if id == "" {
		id = core.NewID("th")
	}
	return &ThreadBuilder{id: id, createdAt: time.Now().UTC()}
}

// Title sets the thread title (chainable).
func (b *ThreadBuilder) Title(t string) *ThreadBuilder { b.title = t; return b }

// CreatedAt overrides the creation timestamp (chainable). Use in tests where
// ordering matters.
func (b *ThreadBuilder) CreatedAt(ts time.Time) *ThreadBuilder { b.createdAt = ts; return b }

// Meta sets or overwrites a metadata key/value pair (chainable).
func (b *ThreadBuilder) Meta(key, val string) *ThreadBuilder {
	if b.metadata == nil {
		b.metadata = map[string]string{}
	}
	b.metadata[key] = val
	return b
}

// Build returns the assembled core.Thread.
func (b *ThreadBuilder) Build() core.Thread {
	return core.Thread{
		ID:        b.id,
		Title:     b.title,
		CreatedAt: b.createdAt,
		Metadata:  b.metadata,
	}
}

// ItemBuilder provides a fluent helper for constructing thread items in
// tests.
// Example:
//
//	item := NewItemBuilder("th-1").Type("message").Text("hello").Build()
type ItemBuilder struct {
	id        string
	threadID  string
	createdAt time.Time
	itemType  string
	payload   json.RawMessage
}

// NewItemBuilder creates a builder for an item within the given thread with a
// generated id.
func NewItemBuilder(threadID string) *ItemBuilder {
	return &ItemBuilder{
		id:        core.NewID("item"),
		threadID:  threadID,
		createdAt: time.Now().UTC(),
	}
}

// ID overrides the auto-generated item ID (chainable).
func (b *ItemBuilder) ID(id string) *ItemBuilder { b.id = id; return b }

// CreatedAt overrides the creation timestamp (chainable).
func (b *ItemBuilder) CreatedAt(ts time.Time) *ItemBuilder { b.createdAt = ts; return b }

// Type sets the item type tag (chainable).
func (b *ItemBuilder) Type(t string) *ItemBuilder { b.itemType = t; return b }

// Payload sets the raw payload (chainable).
func (b *ItemBuilder) Payload(p json.RawMessage) *ItemBuilder { b.payload = p; return b }

// Text sets a minimal message payload with the given text (chainable).
func (b *ItemBuilder) Text(text string) *ItemBuilder {
	data, _ := json.Marshal(map[string]string{"text": text})
	b.itemType = "message"
	b.payload = data
	return b
}

// Build returns the assembled core.ThreadItem.
func (b *ItemBuilder) Build() core.ThreadItem {
	return core.ThreadItem{
		ID:        b.id,
		ThreadID:  b.threadID,
		CreatedAt: b.createdAt,
		Type:      b.itemType,
		Payload:   b.payload,
	}
}
