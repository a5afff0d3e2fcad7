package core

import "context"

// Store persists threads, thread items, attachments and widget snapshots,
// scoped per owning principal, with stable keyset pagination.
//
// Contract:
//   - Every operation filters by (id, owner); rows under another owner read
//     as ErrNotFound.
//   - Save operations replace existing rows wholesale; there is no
//     partial-field merge.
//   - List operations resolve the after cursor by point lookup (ErrNotFound
//     if absent for that owner), apply a strict keyset boundary on the
//     (created_at, insertion-order) sort key, fetch limit+1 rows and fold
//     the extra row into Page.HasMore.
//   - DeleteThread removes the thread and all of its items in one logical
//     unit.
//
// Implementations must be safe for concurrent use across different ids; each
// call is its own scoped transaction with no cross-call shared mutable state.
type Store interface {
	SaveThread(ctx context.Context, owner Principal, th Thread) error
	LoadThread(ctx context.Context, owner Principal, id string) (Thread, error)
	LoadThreads(ctx context.Context, owner Principal, limit int, after string, order Order) (Page[Thread], error)
	DeleteThread(ctx context.Context, owner Principal, id string) error

	AddThreadItem(ctx context.Context, owner Principal, item ThreadItem) error
	SaveThreadItem(ctx context.Context, owner Principal, item ThreadItem) error
	LoadThreadItem(ctx context.Context, owner Principal, threadID, id string) (ThreadItem, error)
	LoadThreadItems(ctx context.Context, owner Principal, threadID string, limit int, after string, order Order) (Page[ThreadItem], error)
	DeleteThreadItem(ctx context.Context, owner Principal, threadID, id string) error

	SaveAttachment(ctx context.Context, owner Principal, att Attachment) error
	LoadAttachment(ctx context.Context, owner Principal, id string) (Attachment, error)
	DeleteAttachment(ctx context.Context, owner Principal, id string) error

	SaveWidget(ctx context.Context, owner Principal, w WidgetSnapshot) error
	LoadWidget(ctx context.Context, owner Principal, id string) (WidgetSnapshot, error)
}
