package pebble

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/pebble"

	"github.com/hupe1980/threadkit/core"
	"github.com/hupe1980/threadkit/logging"
)

// Options configures the pebble-backed store.
type Options struct {
	// Logger receives structured store diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
	// Metrics, when non-nil, receives per-operation counters and latencies.
	Metrics *Metrics
}

// Store is a durable core.Store backed by a Pebble database. Safe for
// concurrent use; every write goes through a synced batch so a crash never
// leaves a row without its index entry.
type Store struct {
	db      *pebble.DB
	seq     uint64
	logger  logging.Logger
	metrics *Metrics
}

var _ core.Store = (*Store)(nil)

// Open opens (or creates) a Pebble database at the given path.
func Open(path string, optFns ...func(o *Options)) (*Store, error) {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open pebble db at %s: %w", path, err)
	}
	seq, err := maxSeq(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("recover sequence counter: %w", err)
	}
	opts.Logger.Info("pebble store opened", "path", path)
	return &Store{db: db, seq: seq, logger: opts.Logger, metrics: opts.Metrics}, nil
}

// maxSeq recovers the insertion sequence counter from the persisted index
// values, so rows added after a reopen keep sorting behind earlier rows that
// share their creation instant.
func maxSeq(db *pebble.DB) (uint64, error) {
	var max uint64
	for _, prefix := range [][]byte{[]byte("tix:"), []byte("iix:")} {
		iter, err := db.NewIter(&pebble.IterOptions{
			LowerBound: prefix,
			UpperBound: keyUpperBound(prefix),
		})
		if err != nil {
			return 0, err
		}
		for valid := iter.First(); valid; valid = iter.Next() {
			val := iter.Value()
			i := bytes.LastIndexByte(val, '-')
			if i < 0 {
				continue
			}
			n, perr := strconv.ParseUint(string(val[i+1:]), 10, 64)
			if perr == nil && n > max {
				max = n
			}
		}
		if err := iter.Error(); err != nil {
			_ = iter.Close()
			return 0, err
		}
		if err := iter.Close(); err != nil {
			return 0, err
		}
	}
	return max, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// sortKey returns a key fragment whose byte order equals the
// (created_at, insertion-order) sort. The sequence counter breaks ties
// between rows created in the same nanosecond.
func (s *Store) sortKey(created time.Time) string {
	return fmt.Sprintf("%020d-%06d", created.UnixNano(), atomic.AddUint64(&s.seq, 1))
}

func threadKey(owner core.Principal, sort, id string) []byte {
	return []byte(fmt.Sprintf("t:%s:%s:%s", owner, sort, id))
}

func threadIdxKey(owner core.Principal, id string) []byte {
	return []byte(fmt.Sprintf("tix:%s:%s", owner, id))
}

func itemKey(owner core.Principal, threadID, sort, id string) []byte {
	return []byte(fmt.Sprintf("i:%s:%s:%s:%s", owner, threadID, sort, id))
}

func itemIdxKey(owner core.Principal, threadID, id string) []byte {
	return []byte(fmt.Sprintf("iix:%s:%s:%s", owner, threadID, id))
}

func attachmentKey(owner core.Principal, id string) []byte {
	return []byte(fmt.Sprintf("a:%s:%s", owner, id))
}

func widgetKey(owner core.Principal, id string) []byte {
	return []byte(fmt.Sprintf("w:%s:%s", owner, id))
}

// keyUpperBound returns the smallest key greater than every key with the
// given prefix, for use as an exclusive iterator bound.
func keyUpperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil // prefix is all 0xff, no upper bound
}

func (s *Store) observe(op string, start time.Time, err error) {
	dur := time.Since(start)
	if s.metrics != nil {
		s.metrics.observe(op, dur, err)
	}
	if l, ok := s.logger.(*logging.RuntimeLogger); ok {
		l.LogStoreOp(op, dur, err)
	} else if err != nil && !errors.Is(err, core.ErrNotFound) {
		s.logger.Error("store operation failed", "op", op, "error", err)
	}
}

func (s *Store) get(key []byte) ([]byte, error) {
	val, closer, err := s.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	cp := make([]byte, len(val))
	copy(cp, val)
	if err := closer.Close(); err != nil {
		return nil, err
	}
	return cp, nil
}

// SaveThread inserts or replaces the thread wholesale. Replacing deletes the
// old row and inserts a fresh one, so a re-save moves behind rows sharing its
// creation instant.
func (s *Store) SaveThread(_ context.Context, owner core.Principal, th core.Thread) (err error) {
	defer func(start time.Time) { s.observe("save_thread", start, err) }(time.Now())

	data, err := json.Marshal(th)
	if err != nil {
		return fmt.Errorf("marshal thread: %w", err)
	}

	batch := s.db.NewBatch()
	defer batch.Close()

	if oldSort, gerr := s.get(threadIdxKey(owner, th.ID)); gerr == nil {
		if err = batch.Delete(threadKey(owner, string(oldSort), th.ID), nil); err != nil {
			return err
		}
	} else if !errors.Is(gerr, core.ErrNotFound) {
		return gerr
	}

	sort := s.sortKey(th.CreatedAt)
	if err = batch.Set(threadKey(owner, sort, th.ID), data, nil); err != nil {
		return err
	}
	if err = batch.Set(threadIdxKey(owner, th.ID), []byte(sort), nil); err != nil {
		return err
	}
	return batch.Commit(pebble.Sync)
}

// LoadThread returns the thread or core.ErrNotFound.
func (s *Store) LoadThread(_ context.Context, owner core.Principal, id string) (th core.Thread, err error) {
	defer func(start time.Time) { s.observe("load_thread", start, err) }(time.Now())

	sort, err := s.get(threadIdxKey(owner, id))
	if err != nil {
		return core.Thread{}, err
	}
	data, err := s.get(threadKey(owner, string(sort), id))
	if err != nil {
		return core.Thread{}, err
	}
	err = json.Unmarshal(data, &th)
	return th, err
}

// LoadThreads returns one page of the owner's threads ordered by creation
// time. The after cursor must name an existing thread of the same owner.
func (s *Store) LoadThreads(_ context.Context, owner core.Principal, limit int, after string, order core.Order) (page core.Page[core.Thread], err error) {
	defer func(start time.Time) { s.observe("load_threads", start, err) }(time.Now())

	prefix := []byte(fmt.Sprintf("t:%s:", owner))
	var afterFull []byte
	if after != "" {
		sort, gerr := s.get(threadIdxKey(owner, after))
		if gerr != nil {
			return core.Page[core.Thread]{}, gerr
		}
		afterFull = threadKey(owner, string(sort), after)
	}

	rows, hasMore, err := s.scan(prefix, afterFull, limit, order)
	if err != nil {
		return core.Page[core.Thread]{}, err
	}

	page.HasMore = hasMore
	page.Data = make([]core.Thread, 0, len(rows))
	for _, raw := range rows {
		var th core.Thread
		if err = json.Unmarshal(raw, &th); err != nil {
			return core.Page[core.Thread]{}, err
		}
		page.Data = append(page.Data, th)
	}
	if hasMore && len(page.Data) > 0 {
		page.After = page.Data[len(page.Data)-1].ID
	}
	return page, nil
}

// DeleteThread removes the thread and all of its items in one synced batch.
func (s *Store) DeleteThread(_ context.Context, owner core.Principal, id string) (err error) {
	defer func(start time.Time) { s.observe("delete_thread", start, err) }(time.Now())

	sort, err := s.get(threadIdxKey(owner, id))
	if err != nil {
		return err
	}

	batch := s.db.NewBatch()
	defer batch.Close()

	if err = batch.Delete(threadKey(owner, string(sort), id), nil); err != nil {
		return err
	}
	if err = batch.Delete(threadIdxKey(owner, id), nil); err != nil {
		return err
	}
	for _, prefix := range [][]byte{
		[]byte(fmt.Sprintf("i:%s:%s:", owner, id)),
		[]byte(fmt.Sprintf("iix:%s:%s:", owner, id)),
	} {
		if err = batch.DeleteRange(prefix, keyUpperBound(prefix), nil); err != nil {
			return err
		}
	}
	return batch.Commit(pebble.Sync)
}

// AddThreadItem appends a new item to its thread.
func (s *Store) AddThreadItem(_ context.Context, owner core.Principal, item core.ThreadItem) (err error) {
	defer func(start time.Time) { s.observe("add_thread_item", start, err) }(time.Now())

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal thread item: %w", err)
	}

	sort := s.sortKey(item.CreatedAt)
	batch := s.db.NewBatch()
	defer batch.Close()
	if err = batch.Set(itemKey(owner, item.ThreadID, sort, item.ID), data, nil); err != nil {
		return err
	}
	if err = batch.Set(itemIdxKey(owner, item.ThreadID, item.ID), []byte(sort), nil); err != nil {
		return err
	}
	return batch.Commit(pebble.Sync)
}

// SaveThreadItem replaces an existing item wholesale, keeping its position in
// the thread. Returns core.ErrNotFound if the item was never added.
func (s *Store) SaveThreadItem(_ context.Context, owner core.Principal, item core.ThreadItem) (err error) {
	defer func(start time.Time) { s.observe("save_thread_item", start, err) }(time.Now())

	sort, err := s.get(itemIdxKey(owner, item.ThreadID, item.ID))
	if err != nil {
		return err
	}
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal thread item: %w", err)
	}
	return s.db.Set(itemKey(owner, item.ThreadID, string(sort), item.ID), data, pebble.Sync)
}

// LoadThreadItem returns the item or core.ErrNotFound.
func (s *Store) LoadThreadItem(_ context.Context, owner core.Principal, threadID, id string) (item core.ThreadItem, err error) {
	defer func(start time.Time) { s.observe("load_thread_item", start, err) }(time.Now())

	sort, err := s.get(itemIdxKey(owner, threadID, id))
	if err != nil {
		return core.ThreadItem{}, err
	}
	data, err := s.get(itemKey(owner, threadID, string(sort), id))
	if err != nil {
		return core.ThreadItem{}, err
	}
	err = json.Unmarshal(data, &item)
	return item, err
}

// LoadThreadItems returns one page of a thread's items ordered by creation
// time and insertion order.
func (s *Store) LoadThreadItems(_ context.Context, owner core.Principal, threadID string, limit int, after string, order core.Order) (page core.Page[core.ThreadItem], err error) {
	defer func(start time.Time) { s.observe("load_thread_items", start, err) }(time.Now())

	prefix := []byte(fmt.Sprintf("i:%s:%s:", owner, threadID))
	var afterFull []byte
	if after != "" {
		sort, gerr := s.get(itemIdxKey(owner, threadID, after))
		if gerr != nil {
			return core.Page[core.ThreadItem]{}, gerr
		}
		afterFull = itemKey(owner, threadID, string(sort), after)
	}

	rows, hasMore, err := s.scan(prefix, afterFull, limit, order)
	if err != nil {
		return core.Page[core.ThreadItem]{}, err
	}

	page.HasMore = hasMore
	page.Data = make([]core.ThreadItem, 0, len(rows))
	for _, raw := range rows {
		var item core.ThreadItem
		if err = json.Unmarshal(raw, &item); err != nil {
			return core.Page[core.ThreadItem]{}, err
		}
		page.Data = append(page.Data, item)
	}
	if hasMore && len(page.Data) > 0 {
		page.After = page.Data[len(page.Data)-1].ID
	}
	return page, nil
}

// DeleteThreadItem removes the item if present or returns core.ErrNotFound.
func (s *Store) DeleteThreadItem(_ context.Context, owner core.Principal, threadID, id string) (err error) {
	defer func(start time.Time) { s.observe("delete_thread_item", start, err) }(time.Now())

	sort, err := s.get(itemIdxKey(owner, threadID, id))
	if err != nil {
		return err
	}
	batch := s.db.NewBatch()
	defer batch.Close()
	if err = batch.Delete(itemKey(owner, threadID, string(sort), id), nil); err != nil {
		return err
	}
	if err = batch.Delete(itemIdxKey(owner, threadID, id), nil); err != nil {
		return err
	}
	return batch.Commit(pebble.Sync)
}

// SaveAttachment inserts or replaces the attachment wholesale.
func (s *Store) SaveAttachment(_ context.Context, owner core.Principal, att core.Attachment) (err error) {
	defer func(start time.Time) { s.observe("save_attachment", start, err) }(time.Now())

	data, err := json.Marshal(att)
	if err != nil {
		return fmt.Errorf("marshal attachment: %w", err)
	}
	return s.db.Set(attachmentKey(owner, att.ID), data, pebble.Sync)
}

// LoadAttachment returns the attachment or core.ErrNotFound.
func (s *Store) LoadAttachment(_ context.Context, owner core.Principal, id string) (att core.Attachment, err error) {
	defer func(start time.Time) { s.observe("load_attachment", start, err) }(time.Now())

	data, err := s.get(attachmentKey(owner, id))
	if err != nil {
		return core.Attachment{}, err
	}
	err = json.Unmarshal(data, &att)
	return att, err
}

// DeleteAttachment removes the attachment if present or returns
// core.ErrNotFound.
func (s *Store) DeleteAttachment(_ context.Context, owner core.Principal, id string) (err error) {
	defer func(start time.Time) { s.observe("delete_attachment", start, err) }(time.Now())

	key := attachmentKey(owner, id)
	if _, err = s.get(key); err != nil {
		return err
	}
	return s.db.Delete(key, pebble.Sync)
}

// SaveWidget inserts or replaces the widget snapshot wholesale
// (last-writer-wins, no merge).
func (s *Store) SaveWidget(_ context.Context, owner core.Principal, w core.WidgetSnapshot) (err error) {
	defer func(start time.Time) { s.observe("save_widget", start, err) }(time.Now())

	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("marshal widget snapshot: %w", err)
	}
	return s.db.Set(widgetKey(owner, w.ID), data, pebble.Sync)
}

// LoadWidget returns the widget snapshot or core.ErrNotFound.
func (s *Store) LoadWidget(_ context.Context, owner core.Principal, id string) (w core.WidgetSnapshot, err error) {
	defer func(start time.Time) { s.observe("load_widget", start, err) }(time.Now())

	data, err := s.get(widgetKey(owner, id))
	if err != nil {
		return core.WidgetSnapshot{}, err
	}
	err = json.Unmarshal(data, &w)
	return w, err
}

// scan walks the prefix in the requested order, skipping rows up to and
// including afterFull, and returns up to limit row values plus whether more
// rows remain. A limit of zero or less returns everything past the cursor.
func (s *Store) scan(prefix, afterFull []byte, limit int, order core.Order) ([][]byte, bool, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: keyUpperBound(prefix),
	})
	if err != nil {
		return nil, false, err
	}
	defer iter.Close()

	var rows [][]byte
	hasMore := false

	advance := iter.Next
	valid := iter.First()
	if order == core.OrderDesc {
		advance = iter.Prev
		valid = iter.Last()
	}
	for ; valid; valid = advance() {
		key := iter.Key()
		if afterFull != nil {
			cmp := bytes.Compare(key, afterFull)
			if (order == core.OrderDesc && cmp >= 0) || (order != core.OrderDesc && cmp <= 0) {
				continue
			}
		}
		if limit > 0 && len(rows) == limit {
			hasMore = true
			break
		}
		val := make([]byte, len(iter.Value()))
		copy(val, iter.Value())
		rows = append(rows, val)
	}
	if err := iter.Error(); err != nil {
		return nil, false, err
	}
	return rows, hasMore, nil
}
