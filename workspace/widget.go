package workspace

import (
	"encoding/json"

	"github.com/hupe1980/threadkit/core"
)

// Widget is one stateful widget instance: the records it has loaded plus the
// view state currently shown. It round-trips through core.WidgetSnapshot for
// persistence.
type Widget struct {
	ID     string          `json:"id"`
	Emails []Email         `json:"emails,omitempty"`
	Tasks  []Task          `json:"tasks,omitempty"`
	Events []CalendarEvent `json:"events,omitempty"`
	State  State           `json:"state"`
}

// NewWidget returns a fresh widget showing the index.
func NewWidget() *Widget {
	return &Widget{
		ID:    core.NewID("wig"),
		State: NewIndex(SectionIndex, "Fetched widgets"),
	}
}

// MarshalJSON encodes the widget with the state's type discriminator.
func (w Widget) MarshalJSON() ([]byte, error) {
	state, err := MarshalState(w.State)
	if err != nil {
		return nil, err
	}
	type alias Widget
	return json.Marshal(struct {
		alias
		// Shadows the interface field with its tagged wire form.
		State json.RawMessage `json:"state"`
	}{alias: alias(w), State: state})
}

// UnmarshalJSON decodes the widget, dispatching the state on its tag.
func (w *Widget) UnmarshalJSON(data []byte) error {
	type alias Widget
	aux := struct {
		*alias
		State json.RawMessage `json:"state"`
	}{alias: (*alias)(w)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	state, err := UnmarshalState(aux.State)
	if err != nil {
		return err
	}
	w.State = state
	return nil
}

// Snapshot serializes the widget for persistence.
func (w *Widget) Snapshot() (core.WidgetSnapshot, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return core.WidgetSnapshot{}, err
	}
	return core.WidgetSnapshot{ID: w.ID, Data: data}, nil
}

// FromSnapshot restores a widget from its persisted form.
func FromSnapshot(snap core.WidgetSnapshot) (*Widget, error) {
	var w Widget
	if err := json.Unmarshal(snap.Data, &w); err != nil {
		return nil, err
	}
	return &w, nil
}
