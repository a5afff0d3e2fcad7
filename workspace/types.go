package workspace

import (
	"fmt"
	"time"
)

// Task priorities.
const (
	PriorityLow  = "low"
	PriorityHigh = "high"
)

// Draft task timeframes.
const (
	TimeframeToday    = "today"
	TimeframeTomorrow = "tomorrow"
	TimeframeWeek     = "week"
	TimeframeMonth    = "month"
	TimeframeCustom   = "custom"
)

// Calendars an event can belong to.
const (
	CalendarWork     = "Work"
	CalendarPersonal = "Personal"
)

// DraftEmail is an email under composition.
type DraftEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	To      string `json:"to"`
}

// Email is a sent or received email.
type Email struct {
	DraftEmail
	ID          string `json:"id"`
	SenderImage string `json:"sender_image"`
	Sender      string `json:"sender"`
	SenderType  string `json:"sender_type"` // org or person
	SentAt      string `json:"sent_at"`
}

// DraftTask is a task under composition. DueDate stays zero until resolved
// from the timeframe.
type DraftTask struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Timeframe   string    `json:"timeframe"`
	DueDate     time.Time `json:"due_date,omitzero"`
}

// Task is a created task.
type Task struct {
	DraftTask
	ID        string `json:"id"`
	Completed bool   `json:"completed"`
}

// DraftCalendarEvent is a calendar event under composition.
type DraftCalendarEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Calendar    string `json:"calendar"`
}

// CalendarEvent is a created calendar event.
type CalendarEvent struct {
	DraftCalendarEvent
	ID string `json:"id"`
}

// EnsureDueDate resolves a zero due date from the timeframe relative to now.
func (t *DraftTask) EnsureDueDate(now time.Time) {
	if !t.DueDate.IsZero() {
		return
	}
	t.DueDate = dueDateFor(t.Timeframe, now)
}

func dueDateFor(timeframe string, now time.Time) time.Time {
	endOfDay := func(d time.Time) time.Time {
		return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, d.Location())
	}
	switch timeframe {
	case TimeframeToday:
		return endOfDay(now)
	case TimeframeTomorrow:
		return endOfDay(now.AddDate(0, 0, 1))
	case TimeframeWeek:
		// End of this week (Sunday).
		daysUntilSunday := (7 - int(now.Weekday())) % 7
		return endOfDay(now.AddDate(0, 0, daysUntilSunday))
	case TimeframeMonth:
		firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
		return endOfDay(firstOfNext.AddDate(0, 0, -1))
	default:
		return endOfDay(now)
	}
}

// PriorityColor maps the priority to its display color.
func (t DraftTask) PriorityColor() string {
	if t.Priority == PriorityHigh {
		return "red-400"
	}
	return "secondary"
}

// UrgencyColor colors the due date by how soon it falls.
func (t DraftTask) UrgencyColor(now time.Time) string {
	due := t.DueDate
	if due.IsZero() {
		due = dueDateFor(t.Timeframe, now)
	}
	days := int(due.Sub(now).Hours() / 24)
	if days < 1 {
		return "red-400"
	}
	if days < 3 {
		return "yellow-600"
	}
	return "secondary"
}

// HumanizedDueDate renders the due date relative to now ("Due tomorrow",
// "Due 3 days ago", "Due on Jul 25").
func (t DraftTask) HumanizedDueDate(now time.Time) string {
	due := t.DueDate
	if due.IsZero() {
		due = dueDateFor(t.Timeframe, now)
	}

	if due.Before(now) {
		daysOverdue := int(now.Sub(due).Hours() / 24)
		switch daysOverdue {
		case 0:
			return "Due today"
		case 1:
			return "Due yesterday"
		default:
			return fmt.Sprintf("Due %d days ago", daysOverdue)
		}
	}

	days := int(due.Sub(now).Hours() / 24)
	switch {
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	case days <= 7:
		return fmt.Sprintf("Due in %d days", days)
	case days <= 14:
		return "Due next week"
	default:
		return "Due on " + due.Format("Jan 02")
	}
}

// CalendarColor maps the calendar to its display color.
func (e DraftCalendarEvent) CalendarColor() string {
	if e.Calendar == CalendarWork {
		return "blue-400"
	}
	return "red-400"
}

// Time renders the event time range.
func (e DraftCalendarEvent) Time() string {
	return e.StartTime + " - " + e.EndTime
}
