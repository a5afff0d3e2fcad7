package workspace

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/threadkit/widget"
)

func newTestRenderer() *Renderer {
	r := NewRenderer("https://assets.example.com/")
	r.Now = func() time.Time { return testNow }
	return r
}

func renderJSON(t *testing.T, r *Renderer, w *Widget) string {
	t.Helper()
	root := r.Render(w)
	require.NotNil(t, root)
	data, err := json.Marshal(root)
	require.NoError(t, err)
	return string(data)
}

func TestRendererAsset(t *testing.T) {
	r := newTestRenderer()
	assert.Equal(t, "https://assets.example.com/david.png", r.Asset("david.png"))

	bare := NewRenderer("https://assets.example.com")
	assert.Equal(t, "https://assets.example.com/david.png", bare.Asset("david.png"))
}

func TestRenderKeysPerState(t *testing.T) {
	asset := func(p string) string { return p }
	tests := []struct {
		state   State
		wantKey string
	}{
		{NewIndex(SectionIndex, "Fetched widgets"), "index.pick"},
		{NewIndex(SectionEmail, ""), "index.email"},
		{NewIndex(SectionTasks, ""), "index.tasks"},
		{NewIndex(SectionCalendar, ""), "index.calendar"},
		{&EmailDraft{Email: DraftEmail{Subject: "s"}}, "email.draft"},
		{&EmailView{Email: fixtureEmails(asset)[0]}, "email.view"},
		{&EmailsList{Emails: fixtureEmails(asset)}, "email.inbox"},
		{&TaskDraft{Todo: draftTaskFixture()}, "tasks.draft"},
		{&TaskView{Task: fixtureTasks()[0]}, "tasks.view"},
		{&TasksList{Tasks: fixtureTasks()}, "tasks.list"},
		{&CalendarEventDraft{Event: draftEventFixture()}, "calendar.draft"},
		{&CalendarEventView{Event: fixtureEvents()[0]}, "calendar.view"},
		{&CalendarEventsList{Events: fixtureEvents()}, "calendar.list"},
	}

	r := newTestRenderer()
	for _, tt := range tests {
		t.Run(tt.wantKey, func(t *testing.T) {
			w := &Widget{ID: "wig_test", State: tt.state}
			data := renderJSON(t, r, w)
			assert.Contains(t, data, `"key":"`+tt.wantKey+`"`)
		})
	}
}

func TestRenderedTreesDecode(t *testing.T) {
	// Every rendered tree must survive the wire codec.
	r := newTestRenderer()
	w := NewWidget()
	w.Emails = fixtureEmails(r.Asset)
	w.Tasks = fixtureTasks()
	w.Events = fixtureEvents()

	states := []State{
		w.State,
		&EmailDraft{Email: DraftEmail{Subject: "s", Body: "b"}, Streaming: true},
		&EmailView{Email: w.Emails[0], ShowBackButton: true},
		&EmailsList{Emails: w.Emails},
		&TaskDraft{Todo: draftTaskFixture()},
		&TaskView{Task: w.Tasks[0], ShowBackButton: true},
		&TasksList{Tasks: w.Tasks},
		&CalendarEventDraft{Event: draftEventFixture()},
		&CalendarEventView{Event: w.Events[0], ShowBackButton: true},
		&CalendarEventsList{Events: w.Events},
	}

	for _, s := range states {
		t.Run(stateType(s), func(t *testing.T) {
			w.State = s
			root := r.Render(w)
			require.NotNil(t, root)

			data, err := json.Marshal(root)
			require.NoError(t, err)
			_, err = widget.DecodeRoot(data)
			require.NoError(t, err)
		})
	}
}

func TestRenderStatusLine(t *testing.T) {
	r := newTestRenderer()
	w := &Widget{ID: "wig_test", State: NewIndex(SectionIndex, "Fetched widgets")}

	data := renderJSON(t, r, w)
	assert.Contains(t, data, `"text":"Fetched widgets"`)
	assert.Contains(t, data, "https://assets.example.com/favicon.svg")

	// No status line, no header.
	w.State = NewIndex(SectionIndex, "")
	data = renderJSON(t, r, w)
	assert.NotContains(t, data, `"status"`)
}

func TestRenderEmailDraftEditing(t *testing.T) {
	r := newTestRenderer()
	w := &Widget{ID: "wig_test"}

	w.State = &EmailDraft{Email: DraftEmail{Subject: "s", Body: "b"}}
	data := renderJSON(t, r, w)
	assert.Contains(t, data, `"editable"`)
	assert.Contains(t, data, `"confirm"`)
	assert.Contains(t, data, "Send email")

	// Sending locks the form fields.
	w.State = &EmailDraft{ViewMeta: ViewMeta{StatusText: "Sending"}, Email: DraftEmail{Subject: "s"}}
	data = renderJSON(t, r, w)
	assert.NotContains(t, data, `"editable"`)

	// Collapsed drafts lose their confirm and cancel affordances.
	w.State = &EmailDraft{ViewMeta: ViewMeta{Collapsed: true}, Email: DraftEmail{Subject: "s"}}
	data = renderJSON(t, r, w)
	assert.NotContains(t, data, `"confirm"`)
	assert.NotContains(t, data, `"editable"`)
	assert.Contains(t, data, `"collapsed":true`)
}

func TestRenderEmailPreviewCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", emailPreview("a\n\nb\tc"))

	long := ""
	for i := 0; i < 60; i++ {
		long += "0123456789"
	}
	assert.Len(t, emailPreview(long), 500)
}

func TestRenderTaskDraftCustomTimeframe(t *testing.T) {
	r := newTestRenderer()
	todo := draftTaskFixture()
	todo.Timeframe = TimeframeCustom
	todo.DueDate = time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	w := &Widget{ID: "wig_test", State: &TaskDraft{Todo: todo}}

	data := renderJSON(t, r, w)
	assert.Contains(t, data, `"DatePicker"`)
	assert.Contains(t, data, "2024-08-01")

	todo.Timeframe = TimeframeTomorrow
	w.State = &TaskDraft{Todo: todo}
	data = renderJSON(t, r, w)
	assert.NotContains(t, data, `"DatePicker"`)
}

func TestRenderTasksListToggleVariants(t *testing.T) {
	r := newTestRenderer()
	tasks := fixtureTasks()[:2]
	tasks[0].Completed = true
	tasks[1].Completed = false
	w := &Widget{ID: "wig_test", State: &TasksList{Tasks: tasks}}

	data := renderJSON(t, r, w)
	assert.Contains(t, data, `"variant":"solid"`)
	assert.Contains(t, data, `"variant":"outline"`)
	assert.Contains(t, data, `"iconStart":"check"`)
}

func TestRenderStreamingBodyMarksTextNode(t *testing.T) {
	r := newTestRenderer()
	w := &Widget{ID: "wig_test"}

	w.State = &EmailDraft{Email: DraftEmail{Subject: "s", Body: "Hello"}, Streaming: true}
	data := renderJSON(t, r, w)
	assert.Contains(t, data, `"id":"email_body"`)
	assert.Contains(t, data, `"streaming":true`)

	// The send affordance carries the draft body, so consecutive streaming
	// renders differ beyond the text node and redraw in full.
	treeA := r.Render(w)
	w.State = &EmailDraft{Email: DraftEmail{Subject: "s", Body: "Hello world"}, Streaming: true}
	treeB := r.Render(w)

	patches, err := widget.Diff(treeA, treeB)
	require.NoError(t, err)
	require.Len(t, patches, 1)
	assert.Equal(t, widget.EventRootUpdated, patches[0].Type)
}
