package store

import (
	"context"
	"sync"

	"github.com/hupe1980/threadkit/core"
)

// sortKey orders rows by creation time, with a monotonically increasing
// insertion sequence breaking ties between rows created in the same instant.
type sortKey struct {
	created int64
	seq     uint64
}

func (k sortKey) less(other sortKey) bool {
	if k.created != other.created {
		return k.created < other.created
	}
	return k.seq < other.seq
}

type threadRec struct {
	key    sortKey
	thread core.Thread
}

type itemRec struct {
	key  sortKey
	item core.ThreadItem
}

// InMemory is an in-process core.Store implementation backed by nested maps
// guarded by an RWMutex. Data is copied on save and retrieval so callers
// cannot mutate internal state through shared slices or maps.
//
// It enforces the full contract of the durable backends, ownership scoping,
// replace-on-save and keyset pagination included, which makes it a faithful
// stand-in for tests and prototypes. It does not survive process restarts;
// for that, use the pebble backend.
type InMemory struct {
	mu          sync.RWMutex
	seq         uint64
	threads     map[core.Principal]map[string]threadRec
	items       map[core.Principal]map[string]map[string]itemRec
	attachments map[core.Principal]map[string]core.Attachment
	widgets     map[core.Principal]map[string]core.WidgetSnapshot
}

var _ core.Store = (*InMemory)(nil)

// NewInMemory returns an empty in-memory store.
func NewInMemory() *InMemory {
	return &InMemory{
		threads:     make(map[core.Principal]map[string]threadRec),
		items:       make(map[core.Principal]map[string]map[string]itemRec),
		attachments: make(map[core.Principal]map[string]core.Attachment),
		widgets:     make(map[core.Principal]map[string]core.WidgetSnapshot),
	}
}

func (s *InMemory) nextKey(created int64) sortKey {
	s.seq++
	return sortKey{created: created, seq: s.seq}
}

// SaveThread inserts or replaces the thread wholesale. A re-save moves the
// thread behind rows sharing its creation instant, matching the
// delete-then-insert semantics of the durable backends.
func (s *InMemory) SaveThread(_ context.Context, owner core.Principal, th core.Thread) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.threads[owner]; !ok {
		s.threads[owner] = make(map[string]threadRec)
	}
	s.threads[owner][th.ID] = threadRec{
		key:    s.nextKey(th.CreatedAt.UnixNano()),
		thread: cloneThread(th),
	}
	return nil
}

// LoadThread returns the thread or core.ErrNotFound. Rows under another owner
// read as absent.
func (s *InMemory) LoadThread(_ context.Context, owner core.Principal, id string) (core.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.threads[owner][id]
	if !ok {
		return core.Thread{}, core.ErrNotFound
	}
	return cloneThread(rec.thread), nil
}

// LoadThreads returns one page of the owner's threads ordered by creation
// time. The after cursor must name an existing thread of the same owner.
func (s *InMemory) LoadThreads(_ context.Context, owner core.Principal, limit int, after string, order core.Order) (core.Page[core.Thread], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]keyed[core.Thread], 0, len(s.threads[owner]))
	for _, rec := range s.threads[owner] {
		rows = append(rows, keyed[core.Thread]{id: rec.thread.ID, key: rec.key, val: cloneThread(rec.thread)})
	}

	var afterKey *sortKey
	if after != "" {
		rec, ok := s.threads[owner][after]
		if !ok {
			return core.Page[core.Thread]{}, core.ErrNotFound
		}
		afterKey = &rec.key
	}
	return paginate(rows, limit, afterKey, order), nil
}

// DeleteThread removes the thread and all of its items in one logical unit.
func (s *InMemory) DeleteThread(_ context.Context, owner core.Principal, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.threads[owner][id]; !ok {
		return core.ErrNotFound
	}
	delete(s.threads[owner], id)
	delete(s.items[owner], id)
	return nil
}

// AddThreadItem appends a new item to its thread, assigning the next
// insertion sequence.
func (s *InMemory) AddThreadItem(_ context.Context, owner core.Principal, item core.ThreadItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[owner]; !ok {
		s.items[owner] = make(map[string]map[string]itemRec)
	}
	if _, ok := s.items[owner][item.ThreadID]; !ok {
		s.items[owner][item.ThreadID] = make(map[string]itemRec)
	}
	s.items[owner][item.ThreadID][item.ID] = itemRec{
		key:  s.nextKey(item.CreatedAt.UnixNano()),
		item: cloneItem(item),
	}
	return nil
}

// SaveThreadItem replaces an existing item wholesale, keeping its position in
// the thread. Returns core.ErrNotFound if the item was never added.
func (s *InMemory) SaveThreadItem(_ context.Context, owner core.Principal, item core.ThreadItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.items[owner][item.ThreadID][item.ID]
	if !ok {
		return core.ErrNotFound
	}
	rec.item = cloneItem(item)
	s.items[owner][item.ThreadID][item.ID] = rec
	return nil
}

// LoadThreadItem returns the item or core.ErrNotFound.
func (s *InMemory) LoadThreadItem(_ context.Context, owner core.Principal, threadID, id string) (core.ThreadItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.items[owner][threadID][id]
	if !ok {
		return core.ThreadItem{}, core.ErrNotFound
	}
	return cloneItem(rec.item), nil
}

// LoadThreadItems returns one page of a thread's items ordered by creation
// time and insertion order.
func (s *InMemory) LoadThreadItems(_ context.Context, owner core.Principal, threadID string, limit int, after string, order core.Order) (core.Page[core.ThreadItem], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]keyed[core.ThreadItem], 0, len(s.items[owner][threadID]))
	for _, rec := range s.items[owner][threadID] {
		rows = append(rows, keyed[core.ThreadItem]{id: rec.item.ID, key: rec.key, val: cloneItem(rec.item)})
	}

	var afterKey *sortKey
	if after != "" {
		rec, ok := s.items[owner][threadID][after]
		if !ok {
			return core.Page[core.ThreadItem]{}, core.ErrNotFound
		}
		afterKey = &rec.key
	}
	return paginate(rows, limit, afterKey, order), nil
}

// DeleteThreadItem removes the item if present or returns core.ErrNotFound.
func (s *InMemory) DeleteThreadItem(_ context.Context, owner core.Principal, threadID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[owner][threadID][id]; !ok {
		return core.ErrNotFound
	}
	delete(s.items[owner][threadID], id)
	return nil
}

// SaveAttachment inserts or replaces the attachment wholesale.
func (s *InMemory) SaveAttachment(_ context.Context, owner core.Principal, att core.Attachment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.attachments[owner]; !ok {
		s.attachments[owner] = make(map[string]core.Attachment)
	}
	s.attachments[owner][att.ID] = cloneAttachment(att)
	return nil
}

// LoadAttachment returns the attachment or core.ErrNotFound.
func (s *InMemory) LoadAttachment(_ context.Context, owner core.Principal, id string) (core.Attachment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	att, ok := s.attachments[owner][id]
	if !ok {
		return core.Attachment{}, core.ErrNotFound
	}
	return cloneAttachment(att), nil
}

// DeleteAttachment removes the attachment if present or returns
// core.ErrNotFound.
func (s *InMemory) DeleteAttachment(_ context.Context, owner core.Principal, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.attachments[owner][id]; !ok {
		return core.ErrNotFound
	}
	delete(s.attachments[owner], id)
	return nil
}

// SaveWidget inserts or replaces the widget snapshot wholesale
// (last-writer-wins, no merge).
func (s *InMemory) SaveWidget(_ context.Context, owner core.Principal, w core.WidgetSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.widgets[owner]; !ok {
		s.widgets[owner] = make(map[string]core.WidgetSnapshot)
	}
	s.widgets[owner][w.ID] = core.WidgetSnapshot{ID: w.ID, Data: cloneBytes(w.Data)}
	return nil
}

// LoadWidget returns the widget snapshot or core.ErrNotFound.
func (s *InMemory) LoadWidget(_ context.Context, owner core.Principal, id string) (core.WidgetSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.widgets[owner][id]
	if !ok {
		return core.WidgetSnapshot{}, core.ErrNotFound
	}
	return core.WidgetSnapshot{ID: w.ID, Data: cloneBytes(w.Data)}, nil
}

func cloneThread(th core.Thread) core.Thread {
	cp := th
	if th.Metadata != nil {
		cp.Metadata = make(map[string]string, len(th.Metadata))
		for k, v := range th.Metadata {
			cp.Metadata[k] = v
		}
	}
	return cp
}

func cloneItem(item core.ThreadItem) core.ThreadItem {
	cp := item
	cp.Payload = cloneBytes(item.Payload)
	return cp
}

func cloneAttachment(att core.Attachment) core.Attachment {
	cp := att
	cp.Payload = cloneBytes(att.Payload)
	return cp
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp
}
