package widget

import (
	"encoding/json"
	"fmt"
)

// The wire form of every component carries a "type" discriminator next to its
// attributes. Marshaling goes through per-type aliases so the discriminator
// is emitted without recursion; unmarshaling probes the discriminator and
// dispatches to the concrete type.

// MarshalJSON implements json.Marshaler for Card.
func (c Card) MarshalJSON() ([]byte, error) {
	type alias Card
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"Card", alias(c)})
}

// MarshalJSON implements json.Marshaler for ListView.
func (l ListView) MarshalJSON() ([]byte, error) {
	type alias ListView
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"ListView", alias(l)})
}

// MarshalJSON implements json.Marshaler for ListViewItem.
func (l ListViewItem) MarshalJSON() ([]byte, error) {
	type alias ListViewItem
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"ListViewItem", alias(l)})
}

// MarshalJSON implements json.Marshaler for Row.
func (r Row) MarshalJSON() ([]byte, error) {
	type alias Row
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"Row", alias(r)})
}

// MarshalJSON implements json.Marshaler for Col.
func (c Col) MarshalJSON() ([]byte, error) {
	type alias Col
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"Col", alias(c)})
}

// MarshalJSON implements json.Marshaler for Box.
func (b Box) MarshalJSON() ([]byte, error) {
	type alias Box
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"Box", alias(b)})
}

// MarshalJSON implements json.Marshaler for Text.
func (t Text) MarshalJSON() ([]byte, error) {
	type alias Text
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"Text", alias(t)})
}

// MarshalJSON implements json.Marshaler for Title.
func (t Title) MarshalJSON() ([]byte, error) {
	type alias Title
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"Title", alias(t)})
}

// MarshalJSON implements json.Marshaler for Markdown.
func (m Markdown) MarshalJSON() ([]byte, error) {
	type alias Markdown
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"Markdown", alias(m)})
}

// MarshalJSON implements json.Marshaler for Icon.
func (i Icon) MarshalJSON() ([]byte, error) {
	type alias Icon
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"Icon", alias(i)})
}

// MarshalJSON implements json.Marshaler for Image.
func (i Image) MarshalJSON() ([]byte, error) {
	type alias Image
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"Image", alias(i)})
}

// MarshalJSON implements json.Marshaler for Button.
func (b Button) MarshalJSON() ([]byte, error) {
	type alias Button
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"Button", alias(b)})
}

// MarshalJSON implements json.Marshaler for Divider.
func (d Divider) MarshalJSON() ([]byte, error) {
	type alias Divider
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"Divider", alias(d)})
}

// MarshalJSON implements json.Marshaler for Spacer.
func (s Spacer) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{"Spacer"})
}

// MarshalJSON implements json.Marshaler for Select.
func (s Select) MarshalJSON() ([]byte, error) {
	type alias Select
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"Select", alias(s)})
}

// MarshalJSON implements json.Marshaler for DatePicker.
func (d DatePicker) MarshalJSON() ([]byte, error) {
	type alias DatePicker
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"DatePicker", alias(d)})
}

// MarshalJSON implements json.Marshaler for Transition.
func (t Transition) MarshalJSON() ([]byte, error) {
	type alias Transition
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"Transition", alias(t)})
}

// UnmarshalJSON implements json.Unmarshaler for Card.
func (c *Card) UnmarshalJSON(data []byte) error {
	type alias Card
	aux := struct {
		*alias
		Children []json.RawMessage `json:"children"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	kids, err := decodeChildren(aux.Children)
	if err != nil {
		return err
	}
	c.Children = kids
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for ListView.
func (l *ListView) UnmarshalJSON(data []byte) error {
	type alias ListView
	aux := struct {
		*alias
		Children []json.RawMessage `json:"children"`
	}{alias: (*alias)(l)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	kids, err := decodeChildren(aux.Children)
	if err != nil {
		return err
	}
	l.Children = kids
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for ListViewItem.
func (l *ListViewItem) UnmarshalJSON(data []byte) error {
	type alias ListViewItem
	aux := struct {
		*alias
		Children []json.RawMessage `json:"children"`
	}{alias: (*alias)(l)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	kids, err := decodeChildren(aux.Children)
	if err != nil {
		return err
	}
	l.Children = kids
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for Row.
func (r *Row) UnmarshalJSON(data []byte) error {
	type alias Row
	aux := struct {
		*alias
		Children []json.RawMessage `json:"children"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	kids, err := decodeChildren(aux.Children)
	if err != nil {
		return err
	}
	r.Children = kids
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for Col.
func (c *Col) UnmarshalJSON(data []byte) error {
	type alias Col
	aux := struct {
		*alias
		Children []json.RawMessage `json:"children"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	kids, err := decodeChildren(aux.Children)
	if err != nil {
		return err
	}
	c.Children = kids
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for Box.
func (b *Box) UnmarshalJSON(data []byte) error {
	type alias Box
	aux := struct {
		*alias
		Children []json.RawMessage `json:"children"`
	}{alias: (*alias)(b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	kids, err := decodeChildren(aux.Children)
	if err != nil {
		return err
	}
	b.Children = kids
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for Transition.
func (t *Transition) UnmarshalJSON(data []byte) error {
	type alias Transition
	aux := struct {
		*alias
		Children json.RawMessage `json:"children"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Children) == 0 || string(aux.Children) == "null" {
		t.Children = nil
		return nil
	}
	child, err := DecodeComponent(aux.Children)
	if err != nil {
		return err
	}
	t.Children = child
	return nil
}

func decodeChildren(raw []json.RawMessage) ([]Component, error) {
	if raw == nil {
		return nil, nil
	}
	kids := make([]Component, 0, len(raw))
	for _, r := range raw {
		c, err := DecodeComponent(r)
		if err != nil {
			return nil, err
		}
		kids = append(kids, c)
	}
	return kids, nil
}

// DecodeComponent decodes a single component from its wire form, dispatching
// on the "type" discriminator.
func DecodeComponent(data []byte) (Component, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	switch probe.Type {
	case "Card":
		var v Card
		return v, json.Unmarshal(data, &v)
	case "ListView":
		var v ListView
		return v, json.Unmarshal(data, &v)
	case "ListViewItem":
		var v ListViewItem
		return v, json.Unmarshal(data, &v)
	case "Row":
		var v Row
		return v, json.Unmarshal(data, &v)
	case "Col":
		var v Col
		return v, json.Unmarshal(data, &v)
	case "Box":
		var v Box
		return v, json.Unmarshal(data, &v)
	case "Text":
		var v Text
		return v, json.Unmarshal(data, &v)
	case "Title":
		var v Title
		return v, json.Unmarshal(data, &v)
	case "Markdown":
		var v Markdown
		return v, json.Unmarshal(data, &v)
	case "Icon":
		var v Icon
		return v, json.Unmarshal(data, &v)
	case "Image":
		var v Image
		return v, json.Unmarshal(data, &v)
	case "Button":
		var v Button
		return v, json.Unmarshal(data, &v)
	case "Divider":
		var v Divider
		return v, json.Unmarshal(data, &v)
	case "Spacer":
		var v Spacer
		return v, json.Unmarshal(data, &v)
	case "Select":
		var v Select
		return v, json.Unmarshal(data, &v)
	case "DatePicker":
		var v DatePicker
		return v, json.Unmarshal(data, &v)
	case "Transition":
		var v Transition
		return v, json.Unmarshal(data, &v)
	default:
		return nil, fmt.Errorf("widget: unknown component type %q", probe.Type)
	}
}

// DecodeRoot decodes a root component (Card or ListView) from its wire form.
func DecodeRoot(data []byte) (Root, error) {
	c, err := DecodeComponent(data)
	if err != nil {
		return nil, err
	}
	root, ok := c.(Root)
	if !ok {
		return nil, fmt.Errorf("widget: component %T is not a valid root", c)
	}
	return root, nil
}
