package workspace

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/threadkit/core"
	"github.com/hupe1980/threadkit/logging"
)

// MachineOptions configures a Machine.
type MachineOptions struct {
	// Logger receives action and store diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
	// FetchDelay simulates the latency of the backing services when fixture
	// data is loaded on first access.
	FetchDelay time.Duration
	// EventBufferSize is the output channel capacity.
	EventBufferSize int
}

// Machine drives a widget instance through its action-induced state
// transitions. Every transition persists a snapshot before its rendered tree
// is emitted, so a consumer that observes a render can rely on the matching
// state being durable.
type Machine struct {
	store      core.Store
	owner      core.Principal
	render     *Renderer
	logger     logging.Logger
	fetchDelay time.Duration
	bufferSize int
}

// NewMachine builds a machine persisting through store under owner and
// rendering with render.
func NewMachine(store core.Store, owner core.Principal, render *Renderer, optFns ...func(o *MachineOptions)) *Machine {
	opts := MachineOptions{
		Logger:          logging.NoOpLogger{},
		EventBufferSize: 16,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Machine{
		store:      store,
		owner:      owner,
		render:     render,
		logger:     opts.Logger,
		fetchDelay: opts.FetchDelay,
		bufferSize: opts.EventBufferSize,
	}
}

// Handle dispatches one action against the widget. Payload decoding,
// precondition checks and record lookups happen synchronously: a non-nil
// error means nothing was emitted and nothing was persisted. On success the
// returned channels deliver the transition's outputs and at most one
// mid-flight error; both are closed when the action completes.
//
// generate and save interleave caller-supplied event streams into commits:
// save's events are drained first, then the post-commit tree is emitted upon
// generate's first event. Pass nil for either to skip it.
func (m *Machine) Handle(ctx context.Context, w *Widget, action core.Action, generate, save core.Producer) (<-chan Output, <-chan error, error) {
	payload, err := core.DecodePayload(action)
	if err != nil {
		return nil, nil, err
	}
	if generate == nil {
		generate = core.NoEvents
	}
	if save == nil {
		save = core.NoEvents
	}

	run, err := m.plan(w, action.Type, payload, generate, save)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan Output, m.bufferSize)
	errs := make(chan error, 1)
	fromState := stateType(w.State)
	start := time.Now()

	go func() {
		defer close(out)
		defer close(errs)
		e := &emitter{ctx: ctx, m: m, w: w, out: out, errs: errs}
		run(e)
		if l, ok := m.logger.(*logging.RuntimeLogger); ok {
			l.WithWidget(w.ID).LogActionHandled(string(action.Type), fromState, stateType(w.State), e.emitted, time.Since(start), e.err)
		} else if e.err != nil {
			m.logger.Error("action failed", "action", action.Type, "widget_id", w.ID, "error", e.err)
		}
	}()
	return out, errs, nil
}

// plan validates the action against the current state and returns the
// transition to run. All precondition and lookup failures surface here,
// before any output or persistence happens.
func (m *Machine) plan(w *Widget, t core.ActionType, payload any, generate, save core.Producer) (func(e *emitter), error) {
	now := m.render.now()

	switch t {
	case ActionShowWidget:
		p := payload.(*ShowWidgetPayload)
		switch p.Widget {
		case SectionIndex, SectionEmail, SectionCalendar, SectionTasks:
		default:
			return nil, fmt.Errorf("unknown index section %q", p.Widget)
		}
		statusText := "Fetched widgets"
		if p.Widget != SectionIndex {
			statusText = fmt.Sprintf("Fetched %s widget", p.Widget)
		}
		return func(e *emitter) {
			e.state(NewIndex(p.Widget, statusText))
		}, nil

	case ActionDraftEmail:
		return func(e *emitter) {
			next := &EmailDraft{
				ViewMeta:  ViewMeta{StatusText: "Drafting email", StatusIcon: iconGmailSend},
				Email:     DraftEmail{Subject: "ThreadKit Roadmap", To: "david@threadkit.studio"},
				Streaming: true,
			}
			if !e.state(next) {
				return
			}
			for _, chunk := range strings.SplitAfter(draftEmailBody, " ") {
				next.Email.Body += chunk
				if !e.state(next) {
					return
				}
			}
			next.StatusText = "Drafted email"
			next.Streaming = false
			e.state(next)
		}, nil

	case ActionShowInbox:
		return func(e *emitter) {
			if len(e.w.Emails) == 0 {
				if !e.withStatus("Fetching inbox") || !e.sleep(m.fetchDelay) {
					return
				}
				e.w.Emails = fixtureEmails(m.render.Asset)
			}
			e.state(&EmailsList{
				ViewMeta: ViewMeta{StatusText: "Fetched inbox", StatusIcon: iconGmail},
				Emails:   e.w.Emails,
			})
		}, nil

	case ActionSendEmail:
		p := payload.(*SendEmailPayload)
		draft, ok := w.State.(*EmailDraft)
		if !ok {
			return nil, fmt.Errorf("send email from %s state: %w", stateType(w.State), core.ErrInvalidTransition)
		}
		return func(e *emitter) {
			draft.Email = p.Email
			draft.StatusText = "Sending"
			if !e.state(draft) {
				return
			}
			sent := Email{
				DraftEmail:  p.Email,
				ID:          core.NewID("email"),
				Sender:      "Zach Johnston",
				SenderImage: m.render.Asset("zach.png"),
				SenderType:  "person",
				SentAt:      "Just now",
			}
			next := &EmailView{
				ViewMeta: ViewMeta{StatusText: "Sent email", StatusIcon: iconGmailSend},
				Email:    sent,
			}
			e.saveAndGenerate(next, generate, save)
		}, nil

	case ActionDiscardEmail:
		if _, ok := w.State.(*EmailDraft); !ok {
			return nil, fmt.Errorf("discard email from %s state: %w", stateType(w.State), core.ErrInvalidTransition)
		}
		return m.discard("Discarded email draft", generate, save), nil

	case ActionViewEmail:
		p := payload.(*ViewEmailPayload)
		email, err := findEmail(w.Emails, p.EmailID)
		if err != nil {
			return nil, err
		}
		statusText := w.State.Meta().StatusText
		return func(e *emitter) {
			e.state(&EmailView{
				ViewMeta:       ViewMeta{StatusText: statusText, StatusIcon: iconGmail},
				Email:          email,
				ShowBackButton: true,
			})
		}, nil

	case ActionDraftTask:
		return func(e *emitter) {
			todo := draftTaskFixture()
			todo.EnsureDueDate(now)
			e.state(&TaskDraft{
				ViewMeta: ViewMeta{StatusText: "Drafted task", StatusIcon: iconLinear},
				Todo:     todo,
			})
		}, nil

	case ActionUpdateDraftTask:
		p := payload.(*UpdateDraftTaskPayload)
		draft, ok := w.State.(*TaskDraft)
		if !ok {
			return nil, fmt.Errorf("update draft task from %s state: %w", stateType(w.State), core.ErrInvalidTransition)
		}
		return func(e *emitter) {
			p.Todo.EnsureDueDate(now)
			draft.Todo = p.Todo
			e.state(draft)
		}, nil

	case ActionCreateTask:
		p := payload.(*CreateTaskPayload)
		draft, ok := w.State.(*TaskDraft)
		if !ok {
			return nil, fmt.Errorf("create task from %s state: %w", stateType(w.State), core.ErrInvalidTransition)
		}
		return func(e *emitter) {
			p.Todo.EnsureDueDate(now)
			draft.Todo = p.Todo
			draft.StatusText = "Creating task"
			if !e.state(draft) {
				return
			}
			task := Task{DraftTask: p.Todo, ID: core.NewID("task")}
			e.w.Tasks = append(e.w.Tasks, task)
			next := &TaskView{
				ViewMeta: ViewMeta{StatusText: "Created task", StatusIcon: iconLinear},
				Task:     task,
			}
			e.saveAndGenerate(next, generate, save)
		}, nil

	case ActionCancelTask:
		if _, ok := w.State.(*TaskDraft); !ok {
			return nil, fmt.Errorf("cancel task from %s state: %w", stateType(w.State), core.ErrInvalidTransition)
		}
		return m.discard("Discarded task draft", generate, save), nil

	case ActionViewTasks:
		return func(e *emitter) {
			if len(e.w.Tasks) == 0 {
				if !e.withStatus("Fetching tasks") || !e.sleep(m.fetchDelay) {
					return
				}
				e.w.Tasks = fixtureTasks()
			}
			e.state(&TasksList{
				ViewMeta: ViewMeta{StatusText: "Fetched tasks", StatusIcon: iconLinear},
				Tasks:    e.w.Tasks,
			})
		}, nil

	case ActionViewTask:
		p := payload.(*ViewTaskPayload)
		task, _, err := findTask(w.Tasks, p.TaskID)
		if err != nil {
			return nil, err
		}
		statusText := w.State.Meta().StatusText
		return func(e *emitter) {
			e.state(&TaskView{
				ViewMeta:       ViewMeta{StatusText: statusText, StatusIcon: iconLinear},
				Task:           task,
				ShowBackButton: true,
			})
		}, nil

	case ActionToggleTaskComplete:
		p := payload.(*ToggleTaskCompletePayload)
		_, idx, err := findTask(w.Tasks, p.TaskID)
		if err != nil {
			return nil, err
		}
		return func(e *emitter) {
			e.w.Tasks[idx].Completed = !e.w.Tasks[idx].Completed
			switch s := e.w.State.(type) {
			case *TasksList:
				s.Tasks = e.w.Tasks
			case *TaskView:
				s.Task = e.w.Tasks[idx]
			}
			e.state(e.w.State)
		}, nil

	case ActionDraftEvent:
		return func(e *emitter) {
			e.state(&CalendarEventDraft{
				ViewMeta: ViewMeta{StatusText: "Drafted calendar event", StatusIcon: iconCalendar},
				Event:    draftEventFixture(),
			})
		}, nil

	case ActionCreateEvent:
		p := payload.(*CreateEventPayload)
		if _, ok := w.State.(*CalendarEventDraft); !ok {
			return nil, fmt.Errorf("create event from %s state: %w", stateType(w.State), core.ErrInvalidTransition)
		}
		return func(e *emitter) {
			if !e.withStatus("Creating calendar event") {
				return
			}
			event := CalendarEvent{DraftCalendarEvent: p.Event, ID: core.NewID("event")}
			e.w.Events = append(e.w.Events, event)
			next := &CalendarEventView{
				ViewMeta: ViewMeta{StatusText: "Added event to calendar", StatusIcon: iconCalendar},
				Event:    event,
			}
			e.saveAndGenerate(next, generate, save)
		}, nil

	case ActionDiscardEvent:
		if _, ok := w.State.(*CalendarEventDraft); !ok {
			return nil, fmt.Errorf("discard event from %s state: %w", stateType(w.State), core.ErrInvalidTransition)
		}
		return m.discard("Discarded draft event", generate, save), nil

	case ActionViewSchedule:
		return func(e *emitter) {
			if len(e.w.Events) == 0 {
				if !e.withStatus("Fetching schedule") || !e.sleep(m.fetchDelay) {
					return
				}
				e.w.Events = fixtureEvents()
			}
			e.state(&CalendarEventsList{
				ViewMeta: ViewMeta{StatusText: "Fetched schedule", StatusIcon: iconCalendar},
				Events:   e.w.Events,
			})
		}, nil

	case ActionViewEvent:
		p := payload.(*ViewEventPayload)
		event, err := findEvent(w.Events, p.EventID)
		if err != nil {
			return nil, err
		}
		statusText := w.State.Meta().StatusText
		return func(e *emitter) {
			e.state(&CalendarEventView{
				ViewMeta:       ViewMeta{StatusText: statusText, StatusIcon: iconCalendar},
				Event:          event,
				ShowBackButton: true,
			})
		}, nil

	default:
		return nil, fmt.Errorf("action type %q: %w", t, core.ErrUnhandledVariant)
	}
}

// discard collapses the current draft in place and runs the commit sequence
// without changing the state variant.
func (m *Machine) discard(finalStatus string, generate, save core.Producer) func(e *emitter) {
	return func(e *emitter) {
		if !e.withStatus("Discarding") {
			return
		}
		meta := e.w.State.Meta()
		meta.StatusText = finalStatus
		meta.Collapsed = true
		e.saveAndGenerate(e.w.State, generate, save)
	}
}

func findEmail(emails []Email, id string) (Email, error) {
	for _, em := range emails {
		if em.ID == id {
			return em, nil
		}
	}
	return Email{}, fmt.Errorf("email %s: %w", id, core.ErrNotFound)
}

func findTask(tasks []Task, id string) (Task, int, error) {
	for i, t := range tasks {
		if t.ID == id {
			return t, i, nil
		}
	}
	return Task{}, 0, fmt.Errorf("task %s: %w", id, core.ErrNotFound)
}

func findEvent(events []CalendarEvent, id string) (CalendarEvent, error) {
	for _, ev := range events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return CalendarEvent{}, fmt.Errorf("event %s: %w", id, core.ErrNotFound)
}

// emitter carries the per-dispatch channels and bookkeeping for one running
// transition.
type emitter struct {
	ctx     context.Context
	m       *Machine
	w       *Widget
	out     chan<- Output
	errs    chan<- error
	emitted int
	err     error
}

// state commits next as the widget's state: persist the snapshot, then emit
// the rendered tree. Returns false when the run should stop.
func (e *emitter) state(next State) bool {
	e.w.State = next
	snap, err := e.w.Snapshot()
	if err != nil {
		return e.fail(err)
	}
	if err := e.m.store.SaveWidget(e.ctx, e.m.owner, snap); err != nil {
		return e.fail(err)
	}
	return e.send(FromWidget(e.m.render.Render(e.w)))
}

// withStatus re-renders the current state with an updated status line.
func (e *emitter) withStatus(text string) bool {
	e.w.State.Meta().StatusText = text
	return e.state(e.w.State)
}

func (e *emitter) send(o Output) bool {
	select {
	case e.out <- o:
		e.emitted++
		return true
	case <-e.ctx.Done():
		return e.fail(e.ctx.Err())
	}
}

func (e *emitter) fail(err error) bool {
	e.err = err
	select {
	case e.errs <- err:
	default:
	}
	return false
}

func (e *emitter) sleep(d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-e.ctx.Done():
		return e.fail(e.ctx.Err())
	}
}

// saveAndGenerate runs the commit sequence: persist next as the widget's
// state, drain save's events, then emit the post-commit tree upon generate's
// first event and forward the rest. When generate yields nothing the state is
// durable but its tree is never shown.
func (e *emitter) saveAndGenerate(next State, generate, save core.Producer) bool {
	e.w.State = next
	snap, err := e.w.Snapshot()
	if err != nil {
		return e.fail(err)
	}
	if err := e.m.store.SaveWidget(e.ctx, e.m.owner, snap); err != nil {
		return e.fail(err)
	}

	for ev := range save(e.ctx) {
		if !e.send(FromEvent(ev)) {
			return false
		}
	}
	first := true
	for ev := range generate(e.ctx) {
		if first {
			first = false
			if !e.send(FromWidget(e.m.render.Render(e.w))) {
				return false
			}
		}
		if !e.send(FromEvent(ev)) {
			return false
		}
	}
	return true
}
