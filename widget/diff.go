package widget

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Patch event types emitted by Diff.
const (
	// EventRootUpdated replaces the whole rendered tree.
	EventRootUpdated = "widget.root.updated"
	// EventStreamingTextDelta appends bytes to a streaming Text node in place.
	EventStreamingTextDelta = "widget.streaming_text.value_delta"
)

// PatchEvent is one incremental update derived from two consecutive render
// snapshots. Root is set for EventRootUpdated; ComponentID and Delta are set
// for EventStreamingTextDelta.
type PatchEvent struct {
	Type        string `json:"type"`
	Root        Root   `json:"root,omitempty"`
	ComponentID string `json:"component_id,omitempty"`
	Delta       string `json:"delta,omitempty"`
}

// Diff computes the minimal patch sequence transforming before into after.
//
// Identical trees yield no events. If the only divergence is exactly one
// streaming Text node whose ID is equal and non-empty and whose value grew by
// strict suffix append, a single EventStreamingTextDelta is emitted. Any
// other divergence, including more than one diverging streaming node,
// collapses to a single EventRootUpdated carrying the after tree.
func Diff(before, after Root) ([]PatchEvent, error) {
	if before == nil {
		if after == nil {
			return nil, nil
		}
		return []PatchEvent{{Type: EventRootUpdated, Root: after}}, nil
	}
	if after == nil {
		return nil, fmt.Errorf("widget: diff to a nil root")
	}

	a, err := toNode(before)
	if err != nil {
		return nil, err
	}
	b, err := toNode(after)
	if err != nil {
		return nil, err
	}

	var deltas []PatchEvent
	if !compatible(a, b, &deltas) || len(deltas) > 1 {
		return []PatchEvent{{Type: EventRootUpdated, Root: after}}, nil
	}
	return deltas, nil
}

// gnode is a component reduced to its wire form: discriminator, raw-encoded
// attributes, and children. Attribute equality is raw-bytes equality, which
// holds because marshaling is deterministic for a fixed struct type.
type gnode struct {
	typ      string
	attrs    map[string]string
	children []gnode
}

func toNode(c Component) (gnode, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return gnode{}, err
	}
	return parseNode(raw)
}

func parseNode(raw []byte) (gnode, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return gnode{}, err
	}

	var n gnode
	if err := json.Unmarshal(fields["type"], &n.typ); err != nil {
		return gnode{}, fmt.Errorf("widget: node missing type discriminator: %w", err)
	}

	n.attrs = make(map[string]string, len(fields))
	for k, v := range fields {
		if k == "type" || k == "children" {
			continue
		}
		n.attrs[k] = string(v)
	}

	if kids, ok := fields["children"]; ok && string(kids) != "null" {
		trimmed := strings.TrimSpace(string(kids))
		switch {
		case strings.HasPrefix(trimmed, "["):
			var raws []json.RawMessage
			if err := json.Unmarshal(kids, &raws); err != nil {
				return gnode{}, err
			}
			for _, r := range raws {
				child, err := parseNode(r)
				if err != nil {
					return gnode{}, err
				}
				n.children = append(n.children, child)
			}
		default:
			child, err := parseNode(kids)
			if err != nil {
				return gnode{}, err
			}
			n.children = append(n.children, child)
		}
	}
	return n, nil
}

// compatible reports whether b is reachable from a via streaming text deltas
// alone, appending the deltas it finds along the way. The caller decides
// whether the number of collected deltas still qualifies for an in-place
// patch.
func compatible(a, b gnode, deltas *[]PatchEvent) bool {
	if a.typ != b.typ || len(a.children) != len(b.children) {
		return false
	}
	if !attrsEqual(a.attrs, b.attrs) {
		if a.typ != "Text" {
			return false
		}
		ev, ok := textDelta(a, b)
		if !ok {
			return false
		}
		*deltas = append(*deltas, ev)
	}
	for i := range a.children {
		if !compatible(a.children[i], b.children[i], deltas) {
			return false
		}
	}
	return true
}

func attrsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// textDelta checks whether two diverging Text nodes qualify for an in-place
// append: same non-empty id, streaming on both sides, every other attribute
// unchanged, and the after value a strict extension of the before value.
func textDelta(a, b gnode) (PatchEvent, bool) {
	for k, v := range a.attrs {
		if k == "value" {
			continue
		}
		if b.attrs[k] != v {
			return PatchEvent{}, false
		}
	}
	for k := range b.attrs {
		if k == "value" {
			continue
		}
		if _, ok := a.attrs[k]; !ok {
			return PatchEvent{}, false
		}
	}

	var id, beforeVal, afterVal string
	var streaming bool
	if err := json.Unmarshal([]byte(a.attrs["id"]), &id); err != nil || id == "" {
		return PatchEvent{}, false
	}
	if raw, ok := a.attrs["streaming"]; !ok || json.Unmarshal([]byte(raw), &streaming) != nil || !streaming {
		return PatchEvent{}, false
	}
	if err := json.Unmarshal([]byte(a.attrs["value"]), &beforeVal); err != nil {
		return PatchEvent{}, false
	}
	if err := json.Unmarshal([]byte(b.attrs["value"]), &afterVal); err != nil {
		return PatchEvent{}, false
	}
	if len(afterVal) <= len(beforeVal) || !strings.HasPrefix(afterVal, beforeVal) {
		return PatchEvent{}, false
	}
	return PatchEvent{
		Type:        EventStreamingTextDelta,
		ComponentID: id,
		Delta:       afterVal[len(beforeVal):],
	}, true
}
