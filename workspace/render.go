package workspace

import (
	"regexp"
	"strings"
	"time"

	"github.com/hupe1980/threadkit/core"
	"github.com/hupe1980/threadkit/widget"
)

// Renderer turns a widget's state into its component tree. AssetBase prefixes
// every image and favicon path; Now is swappable for deterministic tests.
type Renderer struct {
	AssetBase string
	Now       func() time.Time
}

// NewRenderer builds a renderer serving assets from base.
func NewRenderer(base string) *Renderer {
	return &Renderer{AssetBase: base, Now: time.Now}
}

// Asset returns the absolute URL of a static asset.
func (r *Renderer) Asset(path string) string {
	return strings.TrimRight(r.AssetBase, "/") + "/" + path
}

func (r *Renderer) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// Render builds the component tree for the widget's current state.
func (r *Renderer) Render(w *Widget) widget.Root {
	switch s := w.State.(type) {
	case *Index:
		return r.renderIndex(w.ID, s)
	case *EmailDraft:
		return r.renderEmailDraft(w.ID, s)
	case *EmailView:
		return r.renderEmailView(w.ID, s)
	case *EmailsList:
		return r.renderEmailsList(w.ID, s)
	case *TaskDraft:
		return r.renderTaskDraft(w.ID, s)
	case *TaskView:
		return r.renderTaskView(w.ID, s)
	case *TasksList:
		return r.renderTasksList(w.ID, s)
	case *CalendarEventDraft:
		return r.renderCalendarEventDraft(w.ID, s)
	case *CalendarEventView:
		return r.renderCalendarEventView(w.ID, s)
	case *CalendarEventsList:
		return r.renderCalendarEventsList(w.ID, s)
	default:
		return nil
	}
}

// status maps the shared header fields to a display status, nil when no
// status line is set.
func (r *Renderer) status(m ViewMeta) *widget.Status {
	if m.StatusText == "" {
		return nil
	}
	icon := m.StatusIcon
	if icon == "" {
		icon = iconDefault
	}
	return &widget.Status{Text: m.StatusText, Favicon: r.Asset(icon)}
}

func ref(a core.ActionConfig) *core.ActionConfig { return &a }

func backButtonListItem(action core.ActionConfig) widget.ListViewItem {
	action.LoadingBehavior = core.LoadingContainer
	return widget.ListViewItem{
		OnClickAction: ref(action),
		Gap:           3,
		Children: []widget.Component{
			widget.Button{
				Size:          "3xs",
				IconStart:     "chevron-left",
				Color:         "primary",
				Variant:       "soft",
				IconSize:      "sm",
				Pill:          true,
				Uniform:       true,
				OnClickAction: ref(action),
			},
			widget.Text{Value: "Back", Color: "emphasis"},
		},
	}
}

// INDEX TEMPLATES

func (r *Renderer) renderIndex(id string, state *Index) widget.Root {
	switch state.Selected {
	case SectionEmail:
		return r.renderEmailSection(id, state)
	case SectionCalendar:
		return r.renderCalendarSection(id, state)
	case SectionTasks:
		return r.renderTasksSection(id, state)
	default:
		return r.renderSectionPicker(id, state)
	}
}

func (r *Renderer) renderSectionPicker(id string, state *Index) widget.Root {
	pickItem := func(section, image, title, subtitle string) widget.ListViewItem {
		return widget.ListViewItem{
			OnClickAction: ref(core.NewActionConfig(
				ActionShowWidget,
				ShowWidgetPayload{BasePayload: BasePayload{WidgetID: id}, Widget: section},
				core.WithLoadingBehavior(core.LoadingContainer),
			)),
			Gap: 3,
			Children: []widget.Component{
				widget.Image{Src: r.Asset(image), Size: "60px", Frame: true},
				widget.Col{Children: []widget.Component{
					widget.Text{Value: title, Weight: "medium", Color: "emphasis"},
					widget.Text{Value: subtitle, Color: "secondary"},
				}},
			},
		}
	}
	return widget.ListView{
		Key:    "index.pick",
		Status: r.status(state.ViewMeta),
		Children: []widget.Component{
			pickItem(SectionEmail, "gmail-list-icon.png", "Email widget", "Craft and preview an email before sending"),
			pickItem(SectionCalendar, "calendar-list-icon.png", "Calendar widget", "Add events to your calendar"),
			pickItem(SectionTasks, "linear-list-icon.png", "Tasks widget", "Manage your tasks and to-dos"),
		},
	}
}

func (r *Renderer) sectionItem(action core.ActionConfig, image, label string) widget.ListViewItem {
	return widget.ListViewItem{
		OnClickAction: ref(action),
		Gap:           3,
		Children: []widget.Component{
			widget.Image{Src: r.Asset(image), Size: "40px", Frame: true},
			widget.Text{Value: label, Color: "emphasis"},
		},
	}
}

func (r *Renderer) renderEmailSection(id string, state *Index) widget.Root {
	base := BasePayload{WidgetID: id}
	return widget.ListView{
		Key:    "index.email",
		Status: r.status(state.ViewMeta),
		Children: []widget.Component{
			backButtonListItem(core.NewActionConfig(ActionShowWidget, ShowWidgetPayload{BasePayload: base, Widget: SectionIndex})),
			r.sectionItem(
				core.NewActionConfig(ActionShowInbox, base, core.WithLoadingBehavior(core.LoadingContainer)),
				"gmail-inbox-icon.png", "View inbox",
			),
			r.sectionItem(
				core.NewActionConfig(ActionDraftEmail, base),
				"gmail-send-icon.png", "Send an email",
			),
		},
	}
}

func (r *Renderer) renderTasksSection(id string, state *Index) widget.Root {
	base := BasePayload{WidgetID: id}
	return widget.ListView{
		Key:    "index.tasks",
		Status: r.status(state.ViewMeta),
		Children: []widget.Component{
			backButtonListItem(core.NewActionConfig(ActionShowWidget, ShowWidgetPayload{BasePayload: base, Widget: SectionIndex})),
			r.sectionItem(
				core.NewActionConfig(ActionViewTasks, base, core.WithLoadingBehavior(core.LoadingContainer)),
				"linear-view-icon.png", "View tasks",
			),
			r.sectionItem(
				core.NewActionConfig(ActionDraftTask, base, core.WithLoadingBehavior(core.LoadingContainer)),
				"linear-create-icon.png", "Create a task",
			),
		},
	}
}

func (r *Renderer) renderCalendarSection(id string, state *Index) widget.Root {
	base := BasePayload{WidgetID: id}
	return widget.ListView{
		Key:    "index.calendar",
		Status: r.status(state.ViewMeta),
		Children: []widget.Component{
			backButtonListItem(core.NewActionConfig(ActionShowWidget, ShowWidgetPayload{BasePayload: base, Widget: SectionIndex})),
			r.sectionItem(
				core.NewActionConfig(ActionViewSchedule, base, core.WithLoadingBehavior(core.LoadingContainer)),
				"calendar-schedule-icon.png", "View schedule",
			),
			r.sectionItem(
				core.NewActionConfig(ActionDraftEvent, base, core.WithLoadingBehavior(core.LoadingContainer)),
				"calendar-create-icon.png", "Create an event",
			),
		},
	}
}

// EMAIL TEMPLATES

func (r *Renderer) renderEmailDraft(id string, state *EmailDraft) widget.Root {
	base := BasePayload{WidgetID: id}
	editable := !state.Collapsed && state.StatusText != "Sending"

	var confirm, cancel *widget.CardAction
	if !state.Collapsed {
		confirm = &widget.CardAction{
			Label: "Send email",
			Action: core.NewActionConfig(
				ActionSendEmail,
				SendEmailPayload{BasePayload: base, Email: state.Email},
				core.WithLoadingBehavior(core.LoadingSelf),
			),
		}
		cancel = &widget.CardAction{
			Label:  "Discard",
			Action: core.NewActionConfig(ActionDiscardEmail, base),
		}
	}

	subject := widget.Text{Value: state.Email.Subject}
	if editable {
		subject.Editable = &widget.Editable{Name: "subject", Required: true}
	}
	body := widget.Text{
		Width:     "100%",
		Value:     state.Email.Body,
		Streaming: state.Streaming,
		ID:        "email_body",
		MinLines:  10,
	}
	if editable {
		body.Editable = &widget.Editable{Name: "body", AutoFocus: true, Required: true}
	}

	return widget.Card{
		Key:       "email.draft",
		Size:      "lg",
		Status:    r.status(state.ViewMeta),
		Collapsed: state.Collapsed,
		AsForm:    true,
		Confirm:   confirm,
		Cancel:    cancel,
		Children: []widget.Component{
			widget.Col{
				Gap: 3,
				Children: []widget.Component{
					widget.Row{
						Gap:   4,
						Align: "baseline",
						Children: []widget.Component{
							widget.Text{Value: "TO", Weight: "semibold", Color: "tertiary", Size: "xs", Width: 64},
							widget.Text{Value: state.Email.To},
						},
					},
					widget.Divider{},
					widget.Row{
						Gap:   4,
						Align: "baseline",
						Children: []widget.Component{
							widget.Text{Value: "SUBJECT", Weight: "semibold", Color: "tertiary", Size: "xs", Width: 64},
							subject,
						},
					},
					widget.Divider{},
					widget.Row{
						Flex:     "auto",
						Children: []widget.Component{body},
					},
				},
			},
		},
	}
}

func (r *Renderer) renderEmailView(id string, state *EmailView) widget.Root {
	children := []widget.Component{
		widget.Row{
			Gap: 3,
			Children: []widget.Component{
				widget.Image{Src: state.Email.SenderImage, Size: 40, Radius: "full", Frame: true},
				widget.Col{Children: []widget.Component{
					widget.Text{Value: state.Email.Sender, Weight: "semibold", Size: "md", Color: "emphasis"},
					widget.Text{Value: "To: " + state.Email.To, Size: "sm", Color: "secondary"},
				}},
				widget.Spacer{},
				widget.Text{Value: state.Email.SentAt, Size: "sm", Color: "secondary"},
			},
		},
		widget.Divider{Flush: true},
		widget.Col{
			Gap: 6,
			Children: []widget.Component{
				widget.Text{Value: state.Email.Subject, Weight: "semibold", Size: "xl", Color: "emphasis"},
				widget.Markdown{Value: state.Email.Body},
			},
		},
	}

	if state.ShowBackButton {
		children = append(children,
			widget.Divider{Flush: true},
			widget.Row{Children: []widget.Component{
				widget.Button{
					OnClickAction: ref(core.NewActionConfig(
						ActionShowInbox,
						BasePayload{WidgetID: id},
						core.WithLoadingBehavior(core.LoadingContainer),
					)),
					Label:     "Back",
					Color:     "primary",
					Variant:   "outline",
					Pill:      true,
					IconStart: "chevron-left",
				},
			}},
		)
	}

	return widget.Card{
		Key:      "email.view",
		Size:     "lg",
		Status:   r.status(state.ViewMeta),
		Children: children,
	}
}

var collapseSpace = regexp.MustCompile(`\s+`)

func emailPreview(body string) string {
	flat := collapseSpace.ReplaceAllString(body, " ")
	if len(flat) > 500 {
		flat = flat[:500]
	}
	return flat
}

func (r *Renderer) renderEmailsList(id string, state *EmailsList) widget.Root {
	children := []widget.Component{
		backButtonListItem(core.NewActionConfig(
			ActionShowWidget,
			ShowWidgetPayload{BasePayload: BasePayload{WidgetID: id}, Widget: SectionEmail},
			core.WithLoadingBehavior(core.LoadingContainer),
		)),
	}
	for _, email := range state.Emails {
		radius := "full"
		if email.SenderType == "org" {
			radius = "md"
		}
		children = append(children, widget.ListViewItem{
			OnClickAction: ref(core.NewActionConfig(
				ActionViewEmail,
				ViewEmailPayload{BasePayload: BasePayload{WidgetID: id}, EmailID: email.ID},
			)),
			Gap:   3,
			Align: "start",
			Key:   email.ID,
			Children: []widget.Component{
				widget.Image{Src: email.SenderImage, Size: "40px", Radius: radius, Frame: true},
				widget.Col{Children: []widget.Component{
					widget.Row{
						Align: "start",
						Children: []widget.Component{
							widget.Col{Children: []widget.Component{
								widget.Text{Value: email.Sender, Weight: "semibold", Color: "emphasis"},
								widget.Text{Value: email.Subject, Color: "emphasis", Size: "sm"},
							}},
							widget.Spacer{},
							widget.Text{Value: email.SentAt, Size: "sm", Color: "secondary"},
						},
					},
					widget.Text{Value: emailPreview(email.Body), Size: "sm", Color: "secondary", MaxLines: 2},
				}},
			},
		})
	}
	return widget.ListView{
		Key:      "email.inbox",
		Status:   r.status(state.ViewMeta),
		Children: children,
	}
}

// TASK TEMPLATES

func (r *Renderer) renderTaskDraft(id string, state *TaskDraft) widget.Root {
	base := BasePayload{WidgetID: id}
	disabled := state.Collapsed || state.StatusText == "Creating task"

	var confirm, cancel *widget.CardAction
	if !state.Collapsed {
		confirm = &widget.CardAction{
			Label: "Create task",
			Action: core.NewActionConfig(
				ActionCreateTask,
				CreateTaskPayload{BasePayload: base, Todo: state.Todo},
				core.WithLoadingBehavior(core.LoadingSelf),
			),
		}
		cancel = &widget.CardAction{
			Label:  "Cancel",
			Action: core.NewActionConfig(ActionCancelTask, base),
		}
	}

	title := widget.Text{Value: state.Todo.Title, Weight: "semibold", Color: "emphasis", Size: "lg"}
	description := widget.Text{Value: state.Todo.Description, Color: "emphasis", MinLines: 6}
	if !disabled {
		title.Editable = &widget.Editable{Name: "todo.title", Required: true}
		description.Editable = &widget.Editable{Name: "todo.description", AutoFocus: true}
	}

	controls := []widget.Component{
		widget.Select{
			Name:         "todo.priority",
			Disabled:     disabled,
			DefaultValue: state.Todo.Priority,
			Pill:         true,
			Options: []widget.SelectOption{
				{Value: PriorityLow, Label: "Low priority"},
				{Value: PriorityHigh, Label: "High priority"},
			},
		},
		widget.Select{
			Name:         "todo.timeframe",
			Disabled:     disabled,
			DefaultValue: state.Todo.Timeframe,
			OnChangeAction: ref(core.NewActionConfig(
				ActionUpdateDraftTask,
				UpdateDraftTaskPayload{BasePayload: base, Todo: state.Todo},
			)),
			Pill: true,
			Options: []widget.SelectOption{
				{Value: TimeframeToday, Label: "Due today"},
				{Value: TimeframeTomorrow, Label: "Due tomorrow"},
				{Value: TimeframeWeek, Label: "Due by end of week"},
				{Value: TimeframeMonth, Label: "Due by end of month"},
				{Value: TimeframeCustom, Label: "Specific date"},
			},
		},
	}
	if state.Todo.Timeframe == TimeframeCustom {
		controls = append(controls, widget.Row{
			Gap: 2,
			Children: []widget.Component{
				widget.Text{Value: "Due by", Size: "sm", Color: "secondary"},
				widget.DatePicker{
					Name:         "todo.due_date",
					DefaultValue: state.Todo.DueDate.Format("2006-01-02"),
					Pill:         true,
					Disabled:     disabled,
				},
			},
		})
	}

	return widget.Card{
		Key:       "tasks.draft",
		Size:      "lg",
		Padding:   0,
		Status:    r.status(state.ViewMeta),
		Collapsed: state.Collapsed,
		AsForm:    true,
		Confirm:   confirm,
		Cancel:    cancel,
		Children: []widget.Component{
			widget.Col{
				Padding:  4,
				Gap:      2,
				Children: []widget.Component{title, description},
			},
			widget.Col{
				Padding:    map[string]any{"x": 4, "y": 3.5},
				Background: "surface-secondary",
				Border:     map[string]any{"top": map[string]any{"size": 1, "color": "subtle"}},
				Children: []widget.Component{
					widget.Row{
						Gap: 2,
						Children: []widget.Component{
							widget.Row{
								Gap:      2,
								Width:    "fit-content",
								Wrap:     "wrap",
								Children: controls,
							},
						},
					},
				},
			},
		},
	}
}

func (r *Renderer) renderTaskView(id string, state *TaskView) widget.Root {
	base := BasePayload{WidgetID: id}
	now := r.now()

	var parts []widget.Component
	if state.ShowBackButton {
		parts = append(parts,
			widget.Row{
				Margin: map[string]any{"x": -2, "top": -2, "bottom": -1},
				Children: []widget.Component{
					widget.Button{
						OnClickAction: ref(core.NewActionConfig(ActionViewTasks, base, core.WithLoadingBehavior(core.LoadingContainer))),
						Label:         "Back",
						Color:         "secondary",
						Variant:       "ghost",
						IconStart:     "chevron-left",
						Size:          "xs",
						Pill:          true,
					},
				},
			},
			widget.Divider{Flush: true},
		)
	}

	var dueRow widget.Component
	if state.Task.Completed {
		dueRow = widget.Row{
			Key:        "task.completed",
			Gap:        1,
			Height:     22,
			Margin:     map[string]any{"top": 1},
			Justify:    "start",
			Width:      "fit-content",
			Padding:    map[string]any{"left": 1, "right": 2},
			Background: "blue-50",
			Radius:     "full",
			Children: []widget.Component{
				widget.Icon{Name: "check-circle-filled", Color: "blue-400"},
				widget.Text{Value: "Complete", Color: "blue-400", Size: "xs", Weight: "semibold"},
			},
		}
	} else {
		dueRow = widget.Row{
			Align:  "center",
			Height: 26,
			Children: []widget.Component{
				widget.Text{
					Key:   "task.due_date",
					Value: state.Task.HumanizedDueDate(now),
					Color: "tertiary",
					Size:  "sm",
				},
			},
		}
	}

	parts = append(parts,
		widget.Col{
			Gap: 1,
			Children: []widget.Component{
				widget.Text{
					Value:  state.Task.Priority + " priority",
					Color:  state.Task.PriorityColor(),
					Size:   "sm",
					Weight: "medium",
				},
				widget.Title{Value: state.Task.Title, Color: "emphasis", Weight: "semibold", Size: "lg"},
				dueRow,
			},
		},
		widget.Divider{Flush: true},
		widget.Text{Value: state.Task.Description, MinLines: 6},
	)

	var toggle widget.Component
	if !state.Task.Completed {
		toggle = widget.Col{
			Align: "start",
			Children: []widget.Component{
				widget.Button{
					OnClickAction: ref(core.NewActionConfig(
						ActionToggleTaskComplete,
						ToggleTaskCompletePayload{BasePayload: base, TaskID: state.Task.ID},
					)),
					Label:     "Mark complete",
					Color:     "secondary",
					Variant:   "outline",
					IconStart: "check-circle",
					Pill:      true,
				},
			},
		}
	}
	parts = append(parts, widget.Transition{Children: toggle})

	return widget.Card{
		Key:    "tasks.view",
		Size:   "lg",
		Status: r.status(state.ViewMeta),
		Children: []widget.Component{
			widget.Col{Gap: 3, Children: parts},
		},
	}
}

func (r *Renderer) renderTasksList(id string, state *TasksList) widget.Root {
	base := BasePayload{WidgetID: id}
	now := r.now()

	children := []widget.Component{
		backButtonListItem(core.NewActionConfig(
			ActionShowWidget,
			ShowWidgetPayload{BasePayload: base, Widget: SectionTasks},
		)),
	}
	for _, task := range state.Tasks {
		toggleBtn := widget.Button{
			Size:     "3xs",
			Variant:  "outline",
			Color:    "primary",
			Uniform:  true,
			Pill:     true,
			IconSize: "lg",
			OnClickAction: ref(core.NewActionConfig(
				ActionToggleTaskComplete,
				ToggleTaskCompletePayload{BasePayload: base, TaskID: task.ID},
			)),
		}
		if task.Completed {
			toggleBtn.Variant = "solid"
			toggleBtn.Color = "info"
			toggleBtn.IconStart = "check"
		}

		var dueRow widget.Component
		if !task.Completed {
			dueRow = widget.Row{
				Padding: map[string]any{"left": 8.5},
				Children: []widget.Component{
					widget.Text{
						Value:  task.HumanizedDueDate(now),
						Size:   "sm",
						Weight: "medium",
						Color:  task.UrgencyColor(now),
					},
				},
			}
		}

		children = append(children, widget.ListViewItem{
			OnClickAction: ref(core.NewActionConfig(
				ActionViewTask,
				ViewTaskPayload{BasePayload: base, TaskID: task.ID},
			)),
			Children: []widget.Component{
				widget.Col{Children: []widget.Component{
					widget.Row{
						Gap: 3,
						Children: []widget.Component{
							toggleBtn,
							widget.Text{Value: task.Title, Weight: "medium", Color: "emphasis"},
						},
					},
					widget.Transition{Children: dueRow},
				}},
			},
		})
	}

	return widget.ListView{
		Key:      "tasks.list",
		Status:   r.status(state.ViewMeta),
		Limit:    5,
		Children: children,
	}
}

// CALENDAR TEMPLATES

func scheduleSlot(background, title, timeRange string, dashed bool) widget.Row {
	row := widget.Row{
		Padding: 2,
		Radius:  "md",
		Align:   "stretch",
		Gap:     3,
		Children: []widget.Component{
			widget.Box{Background: background, Width: 4, Radius: "full"},
			widget.Col{Children: []widget.Component{
				widget.Text{Value: title, Weight: "medium"},
				widget.Text{Value: timeRange, Size: "xs", Color: "secondary"},
			}},
		},
	}
	if dashed {
		row.Border = map[string]any{"style": "dashed", "size": 1}
	} else {
		row.Background = "surface-tertiary"
	}
	return row
}

func (r *Renderer) renderCalendarEventDraft(id string, state *CalendarEventDraft) widget.Root {
	base := BasePayload{WidgetID: id}

	var confirm, cancel *widget.CardAction
	if !state.Collapsed {
		confirm = &widget.CardAction{
			Label: "Add to calendar",
			Action: core.NewActionConfig(
				ActionCreateEvent,
				CreateEventPayload{BasePayload: base, Event: state.Event},
				core.WithLoadingBehavior(core.LoadingSelf),
			),
		}
		cancel = &widget.CardAction{
			Label:  "Discard",
			Action: core.NewActionConfig(ActionDiscardEvent, base),
		}
	}

	return widget.Card{
		Key:       "calendar.draft",
		Status:    r.status(state.ViewMeta),
		Collapsed: state.Collapsed,
		Confirm:   confirm,
		Cancel:    cancel,
		Children: []widget.Component{
			widget.Row{
				Align:   "stretch",
				Justify: "stretch",
				Children: []widget.Component{
					widget.Col{
						Width: "64px",
						Children: []widget.Component{
							widget.Text{Value: "Wed", Size: "xs", Color: "tertiary", Weight: "semibold"},
							widget.Title{Value: "16", Size: "xl", Color: "emphasis", Weight: "semibold"},
						},
					},
					widget.Col{
						Gap:  2,
						Flex: "auto",
						Children: []widget.Component{
							scheduleSlot("red-400", "Lunch", "12:00 - 12:45 PM", false),
							scheduleSlot(state.Event.CalendarColor(), state.Event.Title, state.Event.Time(), true),
							scheduleSlot("red-400", "Team standup", "3:30 - 4:00 PM", false),
						},
					},
				},
			},
		},
	}
}

func (r *Renderer) renderCalendarEventView(id string, state *CalendarEventView) widget.Root {
	var parts []widget.Component
	if state.ShowBackButton {
		parts = append(parts,
			widget.Row{
				Margin: map[string]any{"x": -2, "top": -2, "bottom": -2},
				Children: []widget.Component{
					widget.Button{
						OnClickAction: ref(core.NewActionConfig(
							ActionViewSchedule,
							BasePayload{WidgetID: id},
							core.WithLoadingBehavior(core.LoadingContainer),
						)),
						Label:     "Back",
						Color:     "secondary",
						Variant:   "ghost",
						IconStart: "chevron-left",
						Size:      "xs",
						Pill:      true,
					},
				},
			},
			widget.Divider{Flush: true},
		)
	}

	parts = append(parts,
		widget.Col{
			Gap: 1,
			Children: []widget.Component{
				widget.Row{
					Gap: 2,
					Children: []widget.Component{
						widget.Box{Radius: "full", Background: state.Event.CalendarColor(), Size: 8},
						widget.Text{Value: state.Event.Calendar, Size: "sm", Color: "emphasis", Weight: "medium"},
					},
				},
				widget.Text{Value: state.Event.Title, Size: "xl", Weight: "semibold"},
				widget.Row{
					Gap: 2,
					Children: []widget.Component{
						widget.Text{Value: state.Event.Date, Color: "emphasis"},
						widget.Text{Value: state.Event.Time(), Color: "tertiary"},
					},
				},
			},
		},
		widget.Image{
			Src:    r.Asset("map.png"),
			Radius: "sm",
			Width:  "100%",
			Height: "230px",
			Fit:    "cover",
		},
	)

	return widget.Card{
		Key:    "calendar.view",
		Size:   "lg",
		Status: r.status(state.ViewMeta),
		Children: []widget.Component{
			widget.Col{Gap: 4, Children: parts},
		},
	}
}

func (r *Renderer) renderCalendarEventsList(id string, state *CalendarEventsList) widget.Root {
	base := BasePayload{WidgetID: id}
	children := []widget.Component{
		backButtonListItem(core.NewActionConfig(
			ActionShowWidget,
			ShowWidgetPayload{BasePayload: base, Widget: SectionCalendar},
			core.WithLoadingBehavior(core.LoadingContainer),
		)),
	}
	for _, event := range state.Events {
		children = append(children, widget.ListViewItem{
			OnClickAction: ref(core.NewActionConfig(
				ActionViewEvent,
				ViewEventPayload{BasePayload: base, EventID: event.ID},
				core.WithLoadingBehavior(core.LoadingContainer),
			)),
			Align: "stretch",
			Gap:   4,
			Children: []widget.Component{
				widget.Box{Radius: "full", Background: event.CalendarColor(), Width: 4},
				widget.Col{Children: []widget.Component{
					widget.Text{Value: event.Title, Weight: "medium"},
					widget.Text{Value: event.Time(), Size: "xs", Color: "secondary"},
				}},
			},
		})
	}
	return widget.ListView{
		Key:      "calendar.list",
		Status:   r.status(state.ViewMeta),
		Limit:    5,
		Children: children,
	}
}
