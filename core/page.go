package core

// Order selects the scan direction of a keyset page.
type Order string

const (
	// OrderAsc walks rows from oldest to newest CreatedAt.
	OrderAsc Order = "asc"
	// OrderDesc walks rows from newest to oldest CreatedAt.
	OrderDesc Order = "desc"
)

// Page is the result envelope of a keyset-paginated listing.
//
// Invariant: HasMore == true implies After is the id of the last returned
// element, and passing it back as the next call's cursor resumes iteration
// without gaps or duplicates (as long as no row at or before the cursor's
// sort key is inserted or removed between calls).
type Page[T any] struct {
	Data    []T    `json:"data"`
	HasMore bool   `json:"has_more"`
	After   string `json:"after,omitempty"`
}
