package workspace

import "github.com/hupe1980/threadkit/core"

// Action catalog of the workspace widget.
const (
	ActionShowWidget         core.ActionType = "sample.show_widget"
	ActionDraftEmail         core.ActionType = "sample.draft_email"
	ActionShowInbox          core.ActionType = "sample.show_inbox"
	ActionSendEmail          core.ActionType = "sample.send_email"
	ActionDiscardEmail       core.ActionType = "sample.discard_email"
	ActionViewEmail          core.ActionType = "sample.view_email"
	ActionDraftTask          core.ActionType = "sample.draft_task"
	ActionUpdateDraftTask    core.ActionType = "sample.update_draft_task"
	ActionCreateTask         core.ActionType = "sample.create_task"
	ActionCancelTask         core.ActionType = "sample.cancel_task"
	ActionViewTasks          core.ActionType = "sample.view_tasks"
	ActionViewTask           core.ActionType = "sample.view_task"
	ActionToggleTaskComplete core.ActionType = "sample.toggle_task_complete"
	ActionDraftEvent         core.ActionType = "sample.draft_event"
	ActionCreateEvent        core.ActionType = "sample.create_event"
	ActionDiscardEvent       core.ActionType = "sample.discard_event"
	ActionViewSchedule       core.ActionType = "sample.view_schedule"
	ActionViewEvent          core.ActionType = "sample.view_event"
)

// BasePayload identifies the widget instance an action targets. Every payload
// embeds it.
type BasePayload struct {
	WidgetID string `json:"widget_id"`
}

// ShowWidgetPayload selects an index section.
type ShowWidgetPayload struct {
	BasePayload
	Widget string `json:"widget"` // email, calendar, tasks or index
}

// SendEmailPayload carries the composed email to send.
type SendEmailPayload struct {
	BasePayload
	Email DraftEmail `json:"email"`
}

// ViewEmailPayload opens one email from the inbox.
type ViewEmailPayload struct {
	BasePayload
	EmailID string `json:"email_id"`
}

// UpdateDraftTaskPayload carries edited draft task fields.
type UpdateDraftTaskPayload struct {
	BasePayload
	Todo DraftTask `json:"todo"`
}

// CreateTaskPayload carries the draft task to create.
type CreateTaskPayload struct {
	BasePayload
	Todo DraftTask `json:"todo"`
}

// ViewTaskPayload opens one task from the list.
type ViewTaskPayload struct {
	BasePayload
	TaskID string `json:"task_id"`
}

// ToggleTaskCompletePayload flips a task's completion.
type ToggleTaskCompletePayload struct {
	BasePayload
	TaskID string `json:"task_id"`
}

// CreateEventPayload carries the draft event to add to the calendar.
type CreateEventPayload struct {
	BasePayload
	Event DraftCalendarEvent `json:"event"`
}

// ViewEventPayload opens one event from the schedule.
type ViewEventPayload struct {
	BasePayload
	EventID string `json:"event_id"`
}

func init() {
	core.RegisterAction(ActionShowWidget, func() any { return &ShowWidgetPayload{} })
	core.RegisterAction(ActionDraftEmail, func() any { return &BasePayload{} })
	core.RegisterAction(ActionShowInbox, func() any { return &BasePayload{} })
	core.RegisterAction(ActionSendEmail, func() any { return &SendEmailPayload{} })
	core.RegisterAction(ActionDiscardEmail, func() any { return &BasePayload{} })
	core.RegisterAction(ActionViewEmail, func() any { return &ViewEmailPayload{} })
	core.RegisterAction(ActionDraftTask, func() any { return &BasePayload{} })
	core.RegisterAction(ActionUpdateDraftTask, func() any { return &UpdateDraftTaskPayload{} })
	core.RegisterAction(ActionCreateTask, func() any { return &CreateTaskPayload{} })
	core.RegisterAction(ActionCancelTask, func() any { return &BasePayload{} })
	core.RegisterAction(ActionViewTasks, func() any { return &BasePayload{} })
	core.RegisterAction(ActionViewTask, func() any { return &ViewTaskPayload{} })
	core.RegisterAction(ActionToggleTaskComplete, func() any { return &ToggleTaskCompletePayload{} })
	core.RegisterAction(ActionDraftEvent, func() any { return &BasePayload{} })
	core.RegisterAction(ActionCreateEvent, func() any { return &CreateEventPayload{} })
	core.RegisterAction(ActionDiscardEvent, func() any { return &BasePayload{} })
	core.RegisterAction(ActionViewSchedule, func() any { return &BasePayload{} })
	core.RegisterAction(ActionViewEvent, func() any { return &ViewEventPayload{} })
}
