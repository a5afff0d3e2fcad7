package workspace

import (
	"encoding/json"
	"fmt"
)

// State discriminator tags as persisted in snapshots.
const (
	StateIndex              = "index"
	StateEmailDraft         = "email_draft"
	StateEmailView          = "email_view"
	StateEmailsList         = "emails_list"
	StateTaskDraft          = "task_draft"
	StateTaskView           = "task_view"
	StateTasksList          = "tasks_list"
	StateCalendarEventDraft = "calendar_event_draft"
	StateCalendarEventView  = "calendar_event_view"
	StateCalendarEventsList = "calendar_events_list"
)

// Sections of the index view.
const (
	SectionIndex    = "index"
	SectionEmail    = "email"
	SectionCalendar = "calendar"
	SectionTasks    = "tasks"
)

// State is the current view of a widget instance. The set is closed; concrete
// states implement the unexported marker and carry a ViewMeta for the shared
// display header fields.
type State interface {
	isState()
	// Meta returns a pointer to the shared header fields for in-place edits.
	Meta() *ViewMeta
}

// ViewMeta holds the display header fields every state shares.
type ViewMeta struct {
	StatusText string `json:"status_text,omitempty"`
	StatusIcon string `json:"status_icon,omitempty"`
	Collapsed  bool   `json:"collapsed,omitempty"`
}

// Meta implements State.
func (m *ViewMeta) Meta() *ViewMeta { return m }

// Index is the top-level picker, optionally narrowed to one section.
type Index struct {
	ViewMeta
	Selected string `json:"selected"`
}

// EmailDraft is an email under composition, possibly still streaming its body.
type EmailDraft struct {
	ViewMeta
	Email     DraftEmail `json:"email"`
	Streaming bool       `json:"streaming"`
}

// EmailView shows a single email.
type EmailView struct {
	ViewMeta
	Email          Email `json:"email"`
	ShowBackButton bool  `json:"show_back_button"`
}

// EmailsList shows the inbox.
type EmailsList struct {
	ViewMeta
	Emails []Email `json:"emails"`
}

// TaskDraft is a task under composition.
type TaskDraft struct {
	ViewMeta
	Todo DraftTask `json:"todo"`
}

// TaskView shows a single task.
type TaskView struct {
	ViewMeta
	Task           Task `json:"task"`
	ShowBackButton bool `json:"show_back_button"`
}

// TasksList shows all tasks.
type TasksList struct {
	ViewMeta
	Tasks []Task `json:"tasks"`
}

// CalendarEventDraft is a calendar event under composition.
type CalendarEventDraft struct {
	ViewMeta
	Event DraftCalendarEvent `json:"event"`
}

// CalendarEventView shows a single calendar event.
type CalendarEventView struct {
	ViewMeta
	Event          CalendarEvent `json:"event"`
	ShowBackButton bool          `json:"show_back_button"`
}

// CalendarEventsList shows the schedule.
type CalendarEventsList struct {
	ViewMeta
	Events []CalendarEvent `json:"events"`
}

func (*Index) isState()              {}
func (*EmailDraft) isState()         {}
func (*EmailView) isState()          {}
func (*EmailsList) isState()         {}
func (*TaskDraft) isState()          {}
func (*TaskView) isState()           {}
func (*TasksList) isState()          {}
func (*CalendarEventDraft) isState() {}
func (*CalendarEventView) isState()  {}
func (*CalendarEventsList) isState() {}

// Default status icons per state family.
const (
	iconDefault   = "favicon.svg"
	iconGmail     = "gmail-status-icon.png"
	iconGmailSend = "gmail-send-status-icon.png"
	iconLinear    = "linear-status-icon.png"
	iconCalendar  = "calendar-status-icon.png"
)

func sectionIcon(section string) string {
	switch section {
	case SectionEmail:
		return iconGmail
	case SectionCalendar:
		return iconCalendar
	case SectionTasks:
		return iconLinear
	default:
		return iconDefault
	}
}

// NewIndex builds an index state narrowed to the given section with the
// section's status icon applied.
func NewIndex(selected, statusText string) *Index {
	return &Index{
		ViewMeta: ViewMeta{StatusText: statusText, StatusIcon: sectionIcon(selected)},
		Selected: selected,
	}
}

func stateType(s State) string {
	switch s.(type) {
	case *Index:
		return StateIndex
	case *EmailDraft:
		return StateEmailDraft
	case *EmailView:
		return StateEmailView
	case *EmailsList:
		return StateEmailsList
	case *TaskDraft:
		return StateTaskDraft
	case *TaskView:
		return StateTaskView
	case *TasksList:
		return StateTasksList
	case *CalendarEventDraft:
		return StateCalendarEventDraft
	case *CalendarEventView:
		return StateCalendarEventView
	case *CalendarEventsList:
		return StateCalendarEventsList
	default:
		return ""
	}
}

// MarshalState encodes a state with its type discriminator for persistence.
func MarshalState(s State) ([]byte, error) {
	tag := stateType(s)
	if tag == "" {
		return nil, fmt.Errorf("workspace: unknown state type %T", s)
	}
	body, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	fields["type"] = json.RawMessage(fmt.Sprintf("%q", tag))
	return json.Marshal(fields)
}

// UnmarshalState decodes a persisted state by its type discriminator.
func UnmarshalState(data []byte) (State, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	var s State
	switch probe.Type {
	case StateIndex:
		s = &Index{}
	case StateEmailDraft:
		s = &EmailDraft{}
	case StateEmailView:
		s = &EmailView{}
	case StateEmailsList:
		s = &EmailsList{}
	case StateTaskDraft:
		s = &TaskDraft{}
	case StateTaskView:
		s = &TaskView{}
	case StateTasksList:
		s = &TasksList{}
	case StateCalendarEventDraft:
		s = &CalendarEventDraft{}
	case StateCalendarEventView:
		s = &CalendarEventView{}
	case StateCalendarEventsList:
		s = &CalendarEventsList{}
	default:
		return nil, fmt.Errorf("workspace: unknown state type %q", probe.Type)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}
