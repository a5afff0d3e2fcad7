package threadkit

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/threadkit/config"
	"github.com/hupe1980/threadkit/core"
	"github.com/hupe1980/threadkit/internal/testutil"
	"github.com/hupe1980/threadkit/logging"
	"github.com/hupe1980/threadkit/widget"
	"github.com/hupe1980/threadkit/workspace"
)

const owner = core.Principal("user_1")

func widgetAction(t *testing.T, typ core.ActionType, payload any) core.Action {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return core.Action{Type: typ, Payload: data}
}

func TestCreateAndPageThreads(t *testing.T) {
	k := New()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := k.CreateThread(ctx, owner, "thread")
		require.NoError(t, err)
	}

	var seen int
	after := ""
	for {
		page, err := k.Threads(ctx, owner, 2, after, core.OrderAsc)
		require.NoError(t, err)
		seen += len(page.Data)
		if !page.HasMore {
			break
		}
		after = page.After
	}
	assert.Equal(t, 5, seen)
}

func TestThreadsDefaultLimit(t *testing.T) {
	k := New(func(o *Options) { o.PageLimit = 3 })
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := k.CreateThread(ctx, owner, "thread")
		require.NoError(t, err)
	}

	page, err := k.Threads(ctx, owner, 0, "", core.OrderAsc)
	require.NoError(t, err)
	assert.Len(t, page.Data, 3)
	assert.True(t, page.HasMore)
}

func TestAddAndPageItems(t *testing.T) {
	k := New()
	ctx := context.Background()

	th, err := k.CreateThread(ctx, owner, "support")
	require.NoError(t, err)

	base := time.Now().UTC()
	for i := 0; i < 4; i++ {
		item := testutil.NewItemBuilder(th.ID).
			Text("hello").
			CreatedAt(base.Add(time.Duration(i) * time.Second)).
			Build()
		_, err := k.AddItem(ctx, owner, item)
		require.NoError(t, err)
	}

	page, err := k.Items(ctx, owner, th.ID, 10, "", core.OrderDesc)
	require.NoError(t, err)
	require.Len(t, page.Data, 4)
	assert.False(t, page.HasMore)
	assert.True(t, page.Data[0].CreatedAt.After(page.Data[3].CreatedAt))
}

func TestAddItemFillsDefaults(t *testing.T) {
	k := New()
	ctx := context.Background()

	th, err := k.CreateThread(ctx, owner, "support")
	require.NoError(t, err)

	item, err := k.AddItem(ctx, owner, core.ThreadItem{ThreadID: th.ID, Type: "message"})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestWidgetActionRoundTrip(t *testing.T) {
	k := New()
	ctx := context.Background()

	w, err := k.NewWidget(ctx, owner)
	require.NoError(t, err)

	outputs, err := k.HandleActionSync(ctx, owner, w,
		widgetAction(t, workspace.ActionShowInbox, workspace.BasePayload{WidgetID: w.ID}),
		nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, outputs)

	restored, err := k.LoadWidget(ctx, owner, w.ID)
	require.NoError(t, err)
	_, ok := restored.State.(*workspace.EmailsList)
	assert.True(t, ok)
	assert.Len(t, restored.Emails, 3)
}

func TestHandleActionSyncRejectsBadTransition(t *testing.T) {
	k := New()
	ctx := context.Background()

	w, err := k.NewWidget(ctx, owner)
	require.NoError(t, err)

	_, err = k.HandleActionSync(ctx, owner, w,
		widgetAction(t, workspace.ActionDiscardEmail, workspace.BasePayload{WidgetID: w.ID}),
		nil, nil)
	require.ErrorIs(t, err, core.ErrInvalidTransition)
}

func TestHandleActionForwardsProducers(t *testing.T) {
	k := New()
	ctx := context.Background()

	w, err := k.NewWidget(ctx, owner)
	require.NoError(t, err)

	// Move into a draft first.
	_, err = k.HandleActionSync(ctx, owner, w,
		widgetAction(t, workspace.ActionDraftEvent, workspace.BasePayload{WidgetID: w.ID}),
		nil, nil)
	require.NoError(t, err)

	draft, ok := w.State.(*workspace.CalendarEventDraft)
	require.True(t, ok)

	outputs, err := k.HandleActionSync(ctx, owner, w,
		widgetAction(t, workspace.ActionCreateEvent, workspace.CreateEventPayload{
			BasePayload: workspace.BasePayload{WidgetID: w.ID},
			Event:       draft.Event,
		}),
		testutil.Events("thread.item.done"),
		testutil.Events("thread.item.added"),
	)
	require.NoError(t, err)

	var eventTypes []string
	for _, o := range outputs {
		if o.Event != nil {
			eventTypes = append(eventTypes, o.Event.Type)
		}
	}
	assert.Equal(t, []string{"thread.item.added", "thread.item.done"}, eventTypes)
}

func TestDiffRenders(t *testing.T) {
	k := New()
	ctx := context.Background()

	w, err := k.NewWidget(ctx, owner)
	require.NoError(t, err)

	outputs, err := k.HandleActionSync(ctx, owner, w,
		widgetAction(t, workspace.ActionViewTasks, workspace.BasePayload{WidgetID: w.ID}),
		nil, nil)
	require.NoError(t, err)
	require.Len(t, outputs, 2)

	// Status interstitial to task list is a structural change.
	patches, err := k.DiffRenders(outputs)
	require.NoError(t, err)
	require.Len(t, patches, 1)
	assert.Equal(t, widget.EventRootUpdated, patches[0].Type)
}

func TestDiffRendersLogsPatches(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LogLevelDebug,
		Format: "json",
		Output: &buf,
	})

	k := New(func(o *Options) { o.Logger = logger })
	ctx := context.Background()

	w, err := k.NewWidget(ctx, owner)
	require.NoError(t, err)

	outputs, err := k.HandleActionSync(ctx, owner, w,
		widgetAction(t, workspace.ActionViewTasks, workspace.BasePayload{WidgetID: w.ID}),
		nil, nil)
	require.NoError(t, err)

	_, err = k.DiffRenders(outputs)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Render diff computed")
	assert.Contains(t, buf.String(), widget.EventRootUpdated)
}

func TestHandleActionDrainOrder(t *testing.T) {
	k := New()
	ctx := context.Background()

	w, err := k.NewWidget(ctx, owner)
	require.NoError(t, err)

	outCh, errsCh, err := k.HandleAction(ctx, owner, w,
		widgetAction(t, workspace.ActionViewTasks, workspace.BasePayload{WidgetID: w.ID}),
		nil, nil)
	require.NoError(t, err)

	// Buffered outputs stay readable after the error channel closes.
	for range errsCh {
	}
	var outputs []workspace.Output
	for o := range outCh {
		outputs = append(outputs, o)
	}
	assert.Len(t, outputs, 2)
}

func TestNewFromConfigMemory(t *testing.T) {
	cfg := config.Default()
	k, err := NewFromConfig(cfg)
	require.NoError(t, err)
	defer k.Close()

	_, err = k.CreateThread(context.Background(), owner, "t")
	require.NoError(t, err)
}

func TestNewFromConfigPebble(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Backend = "pebble"
	cfg.Storage.Path = t.TempDir()

	k, err := NewFromConfig(cfg)
	require.NoError(t, err)

	th, err := k.CreateThread(context.Background(), owner, "durable")
	require.NoError(t, err)

	got, err := k.Store().LoadThread(context.Background(), owner, th.ID)
	require.NoError(t, err)
	assert.Equal(t, "durable", got.Title)

	require.NoError(t, k.Close())
}
