package workspace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// A Tuesday.
var typesNow = time.Date(2024, 7, 16, 10, 0, 0, 0, time.UTC)

func TestDueDateForTimeframes(t *testing.T) {
	tests := []struct {
		timeframe string
		wantDay   int
		wantMonth time.Month
	}{
		{TimeframeToday, 16, time.July},
		{TimeframeTomorrow, 17, time.July},
		{TimeframeWeek, 21, time.July},  // following Sunday
		{TimeframeMonth, 31, time.July}, // last day of month
	}

	for _, tt := range tests {
		t.Run(tt.timeframe, func(t *testing.T) {
			due := dueDateFor(tt.timeframe, typesNow)
			assert.Equal(t, tt.wantDay, due.Day())
			assert.Equal(t, tt.wantMonth, due.Month())
			assert.Equal(t, 23, due.Hour())
		})
	}
}

func TestEnsureDueDateKeepsExplicitDate(t *testing.T) {
	explicit := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	task := DraftTask{Timeframe: TimeframeCustom, DueDate: explicit}
	task.EnsureDueDate(typesNow)
	assert.Equal(t, explicit, task.DueDate)

	task = DraftTask{Timeframe: TimeframeTomorrow}
	task.EnsureDueDate(typesNow)
	assert.Equal(t, 17, task.DueDate.Day())
}

func TestHumanizedDueDate(t *testing.T) {
	at := func(days int) time.Time { return typesNow.AddDate(0, 0, days) }

	tests := []struct {
		name string
		due  time.Time
		want string
	}{
		{"later today", typesNow.Add(2 * time.Hour), "Due today"},
		{"tomorrow", at(1).Add(time.Hour), "Due tomorrow"},
		{"in three days", at(3).Add(time.Hour), "Due in 3 days"},
		{"next week", at(10), "Due next week"},
		{"far out", at(30), "Due on " + at(30).Format("Jan 02")},
		{"earlier today", typesNow.Add(-2 * time.Hour), "Due today"},
		{"yesterday", at(-1).Add(-time.Hour), "Due yesterday"},
		{"long overdue", at(-5), "Due 5 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := DraftTask{DueDate: tt.due}
			assert.Equal(t, tt.want, task.HumanizedDueDate(typesNow))
		})
	}
}

func TestUrgencyColor(t *testing.T) {
	assert.Equal(t, "red-400", DraftTask{DueDate: typesNow.Add(3 * time.Hour)}.UrgencyColor(typesNow))
	assert.Equal(t, "yellow-600", DraftTask{DueDate: typesNow.AddDate(0, 0, 2)}.UrgencyColor(typesNow))
	assert.Equal(t, "secondary", DraftTask{DueDate: typesNow.AddDate(0, 0, 10)}.UrgencyColor(typesNow))
}

func TestPriorityColor(t *testing.T) {
	assert.Equal(t, "red-400", DraftTask{Priority: PriorityHigh}.PriorityColor())
	assert.Equal(t, "secondary", DraftTask{Priority: PriorityLow}.PriorityColor())
}

func TestCalendarColorAndTime(t *testing.T) {
	work := DraftCalendarEvent{Calendar: CalendarWork, StartTime: "9:00", EndTime: "10:30 AM"}
	assert.Equal(t, "blue-400", work.CalendarColor())
	assert.Equal(t, "9:00 - 10:30 AM", work.Time())

	personal := DraftCalendarEvent{Calendar: CalendarPersonal}
	assert.Equal(t, "red-400", personal.CalendarColor())
}
