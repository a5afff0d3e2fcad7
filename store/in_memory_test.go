package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/threadkit/core"
)

const owner = core.Principal("user_1")

func seedThreads(t *testing.T, s core.Store, n int) []core.Thread {
	t.Helper()
	base := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	threads := make([]core.Thread, 0, n)
	for i := 0; i < n; i++ {
		th := core.Thread{
			ID:        fmt.Sprintf("th_%03d", i),
			Title:     fmt.Sprintf("Thread %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, s.SaveThread(context.Background(), owner, th))
		threads = append(threads, th)
	}
	return threads
}

func TestInMemoryThreadRoundTrip(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()

	th := core.Thread{
		ID:        "th_1",
		Title:     "Lunch plans",
		CreatedAt: time.Now().UTC(),
		Metadata:  map[string]string{"source": "widget"},
	}
	require.NoError(t, s.SaveThread(ctx, owner, th))

	got, err := s.LoadThread(ctx, owner, "th_1")
	require.NoError(t, err)
	assert.Equal(t, th, got)

	// Mutating the returned copy must not leak into the store.
	got.Metadata["source"] = "tampered"
	again, err := s.LoadThread(ctx, owner, "th_1")
	require.NoError(t, err)
	assert.Equal(t, "widget", again.Metadata["source"])
}

func TestInMemoryOwnershipIsolation(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()

	require.NoError(t, s.SaveThread(ctx, owner, core.Thread{ID: "th_1", CreatedAt: time.Now()}))

	_, err := s.LoadThread(ctx, core.Principal("user_2"), "th_1")
	assert.ErrorIs(t, err, core.ErrNotFound)

	err = s.DeleteThread(ctx, core.Principal("user_2"), "th_1")
	assert.ErrorIs(t, err, core.ErrNotFound)

	page, err := s.LoadThreads(ctx, core.Principal("user_2"), 10, "", core.OrderAsc)
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestInMemoryPaginationWalksAllRows(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()
	threads := seedThreads(t, s, 7)

	var seen []string
	after := ""
	for {
		page, err := s.LoadThreads(ctx, owner, 3, after, core.OrderAsc)
		require.NoError(t, err)
		for _, th := range page.Data {
			seen = append(seen, th.ID)
		}
		if !page.HasMore {
			break
		}
		require.NotEmpty(t, page.After)
		after = page.After
	}

	require.Len(t, seen, len(threads))
	for i, th := range threads {
		assert.Equal(t, th.ID, seen[i])
	}
}

func TestInMemoryPaginationDescending(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()
	seedThreads(t, s, 5)

	page, err := s.LoadThreads(ctx, owner, 2, "", core.OrderDesc)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "th_004", page.Data[0].ID)
	assert.Equal(t, "th_003", page.Data[1].ID)
	assert.True(t, page.HasMore)
	assert.Equal(t, "th_003", page.After)

	page, err = s.LoadThreads(ctx, owner, 10, page.After, core.OrderDesc)
	require.NoError(t, err)
	require.Len(t, page.Data, 3)
	assert.Equal(t, "th_002", page.Data[0].ID)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.After)
}

func TestInMemoryPaginationInsertionOrderBreaksTies(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()
	created := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	for _, id := range []string{"th_b", "th_a", "th_c"} {
		require.NoError(t, s.SaveThread(ctx, owner, core.Thread{ID: id, CreatedAt: created}))
	}

	page, err := s.LoadThreads(ctx, owner, 10, "", core.OrderAsc)
	require.NoError(t, err)
	require.Len(t, page.Data, 3)
	assert.Equal(t, "th_b", page.Data[0].ID)
	assert.Equal(t, "th_a", page.Data[1].ID)
	assert.Equal(t, "th_c", page.Data[2].ID)
}

func TestInMemoryResaveMovesBehindTies(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()
	created := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.SaveThread(ctx, owner, core.Thread{ID: "th_a", CreatedAt: created}))
	require.NoError(t, s.SaveThread(ctx, owner, core.Thread{ID: "th_b", CreatedAt: created}))
	require.NoError(t, s.SaveThread(ctx, owner, core.Thread{ID: "th_a", Title: "renamed", CreatedAt: created}))

	page, err := s.LoadThreads(ctx, owner, 10, "", core.OrderAsc)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "th_b", page.Data[0].ID)
	assert.Equal(t, "th_a", page.Data[1].ID)
	assert.Equal(t, "renamed", page.Data[1].Title)
}

func TestInMemoryUnknownCursor(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()
	seedThreads(t, s, 2)

	_, err := s.LoadThreads(ctx, owner, 10, "th_missing", core.OrderAsc)
	assert.ErrorIs(t, err, core.ErrNotFound)

	// A cursor belonging to another owner is just as absent.
	_, err = s.LoadThreads(ctx, core.Principal("user_2"), 10, "th_000", core.OrderAsc)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestInMemoryThreadItems(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()
	created := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.SaveThread(ctx, owner, core.Thread{ID: "th_1", CreatedAt: created}))
	for i := 0; i < 4; i++ {
		item := core.ThreadItem{
			ID:        fmt.Sprintf("it_%d", i),
			ThreadID:  "th_1",
			CreatedAt: created,
			Type:      "widget",
			Payload:   json.RawMessage(fmt.Sprintf(`{"n":%d}`, i)),
		}
		require.NoError(t, s.AddThreadItem(ctx, owner, item))
	}

	page, err := s.LoadThreadItems(ctx, owner, "th_1", 3, "", core.OrderAsc)
	require.NoError(t, err)
	require.Len(t, page.Data, 3)
	assert.True(t, page.HasMore)
	assert.Equal(t, "it_2", page.After)

	page, err = s.LoadThreadItems(ctx, owner, "th_1", 3, page.After, core.OrderAsc)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "it_3", page.Data[0].ID)
	assert.False(t, page.HasMore)
}

func TestInMemorySaveThreadItemKeepsPosition(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()
	created := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	for _, id := range []string{"it_a", "it_b"} {
		require.NoError(t, s.AddThreadItem(ctx, owner, core.ThreadItem{ID: id, ThreadID: "th_1", CreatedAt: created}))
	}
	require.NoError(t, s.SaveThreadItem(ctx, owner, core.ThreadItem{
		ID: "it_a", ThreadID: "th_1", CreatedAt: created, Payload: json.RawMessage(`{"edited":true}`),
	}))

	page, err := s.LoadThreadItems(ctx, owner, "th_1", 10, "", core.OrderAsc)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "it_a", page.Data[0].ID)
	assert.JSONEq(t, `{"edited":true}`, string(page.Data[0].Payload))

	err = s.SaveThreadItem(ctx, owner, core.ThreadItem{ID: "it_missing", ThreadID: "th_1"})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestInMemoryDeleteThreadCascades(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.SaveThread(ctx, owner, core.Thread{ID: "th_1", CreatedAt: now}))
	require.NoError(t, s.AddThreadItem(ctx, owner, core.ThreadItem{ID: "it_1", ThreadID: "th_1", CreatedAt: now}))

	require.NoError(t, s.DeleteThread(ctx, owner, "th_1"))

	_, err := s.LoadThread(ctx, owner, "th_1")
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = s.LoadThreadItem(ctx, owner, "th_1", "it_1")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestInMemoryAttachments(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()

	att := core.Attachment{ID: "at_1", Name: "notes.txt", MimeType: "text/plain", Payload: json.RawMessage(`"aGk="`)}
	require.NoError(t, s.SaveAttachment(ctx, owner, att))

	got, err := s.LoadAttachment(ctx, owner, "at_1")
	require.NoError(t, err)
	assert.Equal(t, att, got)

	_, err = s.LoadAttachment(ctx, core.Principal("user_2"), "at_1")
	assert.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, s.DeleteAttachment(ctx, owner, "at_1"))
	err = s.DeleteAttachment(ctx, owner, "at_1")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestInMemoryWidgetLastWriterWins(t *testing.T) {
	s := NewInMemory()
	ctx := context.Background()

	require.NoError(t, s.SaveWidget(ctx, owner, core.WidgetSnapshot{ID: "w_1", Data: json.RawMessage(`{"v":1}`)}))
	require.NoError(t, s.SaveWidget(ctx, owner, core.WidgetSnapshot{ID: "w_1", Data: json.RawMessage(`{"v":2}`)}))

	got, err := s.LoadWidget(ctx, owner, "w_1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(got.Data))

	_, err = s.LoadWidget(ctx, owner, "w_2")
	assert.ErrorIs(t, err, core.ErrNotFound)
}
