package store

import (
	"sort"

	"github.com/hupe1980/threadkit/core"
)

// keyed pairs a row with its id and composite sort key for pagination.
type keyed[T any] struct {
	id  string
	key sortKey
	val T
}

// paginate sorts rows by their composite key in the requested order, applies
// a strict boundary after afterKey, and folds a limit+1 probe into HasMore.
// A limit of zero or less returns everything past the cursor.
func paginate[T any](rows []keyed[T], limit int, afterKey *sortKey, order core.Order) core.Page[T] {
	sort.Slice(rows, func(i, j int) bool {
		if order == core.OrderDesc {
			return rows[j].key.less(rows[i].key)
		}
		return rows[i].key.less(rows[j].key)
	})

	start := 0
	if afterKey != nil {
		for start < len(rows) {
			k := rows[start].key
			past := afterKey.less(k)
			if order == core.OrderDesc {
				past = k.less(*afterKey)
			}
			if past {
				break
			}
			start++
		}
	}
	rows = rows[start:]

	page := core.Page[T]{}
	if limit > 0 && len(rows) > limit {
		page.HasMore = true
		rows = rows[:limit]
	}
	page.Data = make([]T, 0, len(rows))
	for _, r := range rows {
		page.Data = append(page.Data, r.val)
	}
	if page.HasMore && len(rows) > 0 {
		page.After = rows[len(rows)-1].id
	}
	return page
}
