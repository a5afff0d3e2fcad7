package core

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Principal is the opaque identity under which all persisted entities are
// scoped. Every store operation takes one; the store never returns rows
// belonging to a different principal.
type Principal string

// Thread is a conversation container. Items hang off it ordered by their
// creation timestamp.
type Thread struct {
	ID        string            `json:"id"`
	Title     string            `json:"title,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// ThreadItem is an ordered entry within a thread: a message, a widget
// snapshot, or any other typed payload the caller stores. CreatedAt orders
// items within a thread; insertion order breaks ties.
type ThreadItem struct {
	ID        string          `json:"id"`
	ThreadID  string          `json:"thread_id"`
	CreatedAt time.Time       `json:"created_at"`
	Type      string          `json:"type,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Attachment is a stored file/blob reference. Attachments are owned by a
// principal but not scoped to a thread.
type Attachment struct {
	ID       string          `json:"id"`
	Name     string          `json:"name,omitempty"`
	MimeType string          `json:"mime_type,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// WidgetSnapshot is the serialized state of one interactive widget instance.
// The store treats Data as opaque; saves replace the row wholesale
// (last-writer-wins, no merge).
type WidgetSnapshot struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// NewID returns a prefixed unique identifier, e.g. "th_6f1c...".
func NewID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
