package widget

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/threadkit/core"
)

func TestMarshalOmitsUnsetFields(t *testing.T) {
	raw, err := json.Marshal(Text{Value: "hello"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Text","value":"hello"}`, string(raw))

	raw, err = json.Marshal(Divider{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Divider"}`, string(raw))

	raw, err = json.Marshal(Spacer{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Spacer"}`, string(raw))
}

func TestMarshalCard(t *testing.T) {
	card := Card{
		Size:   "md",
		Status: &Status{Text: "Fetched inbox"},
		Children: []Component{
			Title{Value: "Inbox"},
			Row{
				Gap: 2,
				Children: []Component{
					Icon{Name: "mail", Color: "secondary"},
					Text{Value: "3 unread"},
				},
			},
		},
	}

	raw, err := json.Marshal(card)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "Card", fields["type"])
	assert.Equal(t, "md", fields["size"])
	assert.NotContains(t, fields, "collapsed")
	assert.NotContains(t, fields, "asForm")
	assert.Len(t, fields["children"], 2)
}

func TestMarshalButtonAction(t *testing.T) {
	btn := Button{
		Label: "Send",
		Color: "primary",
		OnClickAction: &core.ActionConfig{
			Type:    "sample.send_email",
			Payload: map[string]string{"email_id": "em_1"},
		},
	}

	raw, err := json.Marshal(btn)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "Button", fields["type"])

	action, ok := fields["onClickAction"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sample.send_email", action["type"])
}

func TestDecodeRoundTrip(t *testing.T) {
	original := ListView{
		Limit: 10,
		Children: []Component{
			ListViewItem{
				OnClickAction: &core.ActionConfig{Type: "sample.view_email"},
				Gap:           3,
				Children: []Component{
					Col{Children: []Component{
						Text{Value: "Aline", Weight: "semibold"},
						Text{Value: "Lunch on Thursday?", Color: "secondary"},
					}},
					Spacer{},
					Icon{Name: "chevron-right"},
				},
			},
		},
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	root, err := DecodeRoot(raw)
	require.NoError(t, err)

	lv, ok := root.(ListView)
	require.True(t, ok)
	assert.Equal(t, 10, lv.Limit)
	require.Len(t, lv.Children, 1)

	item, ok := lv.Children[0].(ListViewItem)
	require.True(t, ok)
	assert.Equal(t, 3, item.Gap)
	require.Len(t, item.Children, 3)

	col, ok := item.Children[0].(Col)
	require.True(t, ok)
	require.Len(t, col.Children, 2)
	assert.Equal(t, Text{Value: "Aline", Weight: "semibold"}, col.Children[0])
	_, ok = item.Children[1].(Spacer)
	assert.True(t, ok)
}

func TestDecodeTransition(t *testing.T) {
	raw, err := json.Marshal(Card{Children: []Component{
		Transition{Children: Text{Value: "done"}},
		Transition{},
	}})
	require.NoError(t, err)

	root, err := DecodeRoot(raw)
	require.NoError(t, err)

	card := root.(Card)
	require.Len(t, card.Children, 2)
	tr := card.Children[0].(Transition)
	assert.Equal(t, Text{Value: "done"}, tr.Children)
	assert.Nil(t, card.Children[1].(Transition).Children)
}

func TestDecodeUnknownType(t *testing.T) {
	_, err := DecodeComponent([]byte(`{"type":"Carousel"}`))
	assert.ErrorContains(t, err, "unknown component type")
}

func TestDecodeRootRejectsNonRoot(t *testing.T) {
	_, err := DecodeRoot([]byte(`{"type":"Text","value":"hi"}`))
	assert.ErrorContains(t, err, "not a valid root")
}
