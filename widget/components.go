package widget

import (
	"github.com/hupe1980/threadkit/core"
)

// Component is a polymorphic widget tree node. Concrete types implement the
// unexported isComponent marker enabling a closed set.
type Component interface{ isComponent() }

// Root is the subset of components legal at the root of a widget tree.
type Root interface {
	Component
	isRoot()
}

// Status is the display header shown while a widget works or after it
// settles ("Sending", "Fetched inbox", ...).
type Status struct {
	Text    string `json:"text"`
	Favicon string `json:"favicon,omitempty"`
}

// CardAction pairs a button label with the action descriptor it dispatches.
// Used for a card's confirm / cancel affordances.
type CardAction struct {
	Label  string            `json:"label"`
	Action core.ActionConfig `json:"action"`
}

// Editable marks a text node as a named form field.
type Editable struct {
	Name      string `json:"name"`
	AutoFocus bool   `json:"autoFocus,omitempty"`
	Required  bool   `json:"required,omitempty"`
}

// SelectOption is one choice of a Select component.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Card is a framed container, optionally acting as a form with confirm /
// cancel affordances.
type Card struct {
	Key       string      `json:"key,omitempty"`
	Size      string      `json:"size,omitempty"`
	Padding   any         `json:"padding,omitempty"`
	Status    *Status     `json:"status,omitempty"`
	Collapsed bool        `json:"collapsed,omitempty"`
	AsForm    bool        `json:"asForm,omitempty"`
	Confirm   *CardAction `json:"confirm,omitempty"`
	Cancel    *CardAction `json:"cancel,omitempty"`
	Children  []Component `json:"children"`
}

// ListView is a scrollable list container of ListViewItem rows.
type ListView struct {
	Key      string      `json:"key,omitempty"`
	Status   *Status     `json:"status,omitempty"`
	Limit    int         `json:"limit,omitempty"`
	Children []Component `json:"children"`
}

// ListViewItem is a single, optionally clickable, list row.
type ListViewItem struct {
	Key           string             `json:"key,omitempty"`
	OnClickAction *core.ActionConfig `json:"onClickAction,omitempty"`
	Gap           int                `json:"gap,omitempty"`
	Align         string             `json:"align,omitempty"`
	Children      []Component        `json:"children"`
}

// Row lays children out horizontally.
type Row struct {
	Key        string      `json:"key,omitempty"`
	Gap        int         `json:"gap,omitempty"`
	Align      string      `json:"align,omitempty"`
	Justify    string      `json:"justify,omitempty"`
	Flex       string      `json:"flex,omitempty"`
	Wrap       string      `json:"wrap,omitempty"`
	Width      any         `json:"width,omitempty"`
	Height     any         `json:"height,omitempty"`
	Padding    any         `json:"padding,omitempty"`
	Margin     any         `json:"margin,omitempty"`
	Background string      `json:"background,omitempty"`
	Radius     string      `json:"radius,omitempty"`
	Border     any         `json:"border,omitempty"`
	Children   []Component `json:"children"`
}

// Col lays children out vertically.
type Col struct {
	Key        string      `json:"key,omitempty"`
	Gap        int         `json:"gap,omitempty"`
	Align      string      `json:"align,omitempty"`
	Flex       string      `json:"flex,omitempty"`
	Width      any         `json:"width,omitempty"`
	Padding    any         `json:"padding,omitempty"`
	Margin     any         `json:"margin,omitempty"`
	Background string      `json:"background,omitempty"`
	Border     any         `json:"border,omitempty"`
	Children   []Component `json:"children"`
}

// Box is a generic decorated block (color chips, markers).
type Box struct {
	Key        string      `json:"key,omitempty"`
	Background string      `json:"background,omitempty"`
	Width      any         `json:"width,omitempty"`
	Size       any         `json:"size,omitempty"`
	Radius     string      `json:"radius,omitempty"`
	Children   []Component `json:"children,omitempty"`
}

// Text is a text leaf. A node with Streaming set is a live token stream; the
// diff engine emits byte-level deltas for it instead of full redraws, keyed
// by ID.
type Text struct {
	ID        string    `json:"id,omitempty"`
	Key       string    `json:"key,omitempty"`
	Value     string    `json:"value"`
	Streaming bool      `json:"streaming,omitempty"`
	Italic    bool      `json:"italic,omitempty"`
	Color     string    `json:"color,omitempty"`
	Size      string    `json:"size,omitempty"`
	Weight    string    `json:"weight,omitempty"`
	Width     any       `json:"width,omitempty"`
	MaxLines  int       `json:"maxLines,omitempty"`
	MinLines  int       `json:"minLines,omitempty"`
	Editable  *Editable `json:"editable,omitempty"`
}

// Title is an emphasized heading leaf.
type Title struct {
	Value  string `json:"value"`
	Color  string `json:"color,omitempty"`
	Size   string `json:"size,omitempty"`
	Weight string `json:"weight,omitempty"`
}

// Markdown renders its value as markdown.
type Markdown struct {
	Value string `json:"value"`
}

// Icon is a named glyph leaf.
type Icon struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Image is an image leaf.
type Image struct {
	Src    string `json:"src"`
	Size   any    `json:"size,omitempty"`
	Width  any    `json:"width,omitempty"`
	Height any    `json:"height,omitempty"`
	Radius string `json:"radius,omitempty"`
	Fit    string `json:"fit,omitempty"`
	Frame  bool   `json:"frame,omitempty"`
}

// Button dispatches its action descriptor when clicked.
type Button struct {
	Label         string             `json:"label"`
	OnClickAction *core.ActionConfig `json:"onClickAction,omitempty"`
	Color         string             `json:"color,omitempty"`
	Variant       string             `json:"variant,omitempty"`
	Size          string             `json:"size,omitempty"`
	IconStart     string             `json:"iconStart,omitempty"`
	IconSize      string             `json:"iconSize,omitempty"`
	Pill          bool               `json:"pill,omitempty"`
	Uniform       bool               `json:"uniform,omitempty"`
}

// Divider is a separator line.
type Divider struct {
	Flush bool `json:"flush,omitempty"`
}

// Spacer consumes the remaining space of its row.
type Spacer struct{}

// Select is a dropdown form field.
type Select struct {
	Name           string             `json:"name"`
	DefaultValue   string             `json:"defaultValue,omitempty"`
	Options        []SelectOption     `json:"options"`
	Pill           bool               `json:"pill,omitempty"`
	Disabled       bool               `json:"disabled,omitempty"`
	OnChangeAction *core.ActionConfig `json:"onChangeAction,omitempty"`
}

// DatePicker is a date form field.
type DatePicker struct {
	Name         string `json:"name"`
	DefaultValue string `json:"defaultValue,omitempty"`
	Pill         bool   `json:"pill,omitempty"`
	Disabled     bool   `json:"disabled,omitempty"`
}

// Transition wraps an optional child whose appearance / disappearance should
// animate. A nil child renders nothing.
type Transition struct {
	Children Component `json:"children,omitempty"`
}

func (Card) isComponent()         {}
func (ListView) isComponent()     {}
func (ListViewItem) isComponent() {}
func (Row) isComponent()          {}
func (Col) isComponent()          {}
func (Box) isComponent()          {}
func (Text) isComponent()         {}
func (Title) isComponent()        {}
func (Markdown) isComponent()     {}
func (Icon) isComponent()         {}
func (Image) isComponent()        {}
func (Button) isComponent()       {}
func (Divider) isComponent()      {}
func (Spacer) isComponent()       {}
func (Select) isComponent()       {}
func (DatePicker) isComponent()   {}
func (Transition) isComponent()   {}

func (Card) isRoot()     {}
func (ListView) isRoot() {}
