// Package page provides deterministic slicing of already-ordered sequences:
// classic offset pagination for server queries and incremental "show more"
// batches for client-held lists. The underlying sequence must not be
// re-sorted between calls within one viewing session, or batches could
// reveal duplicates or skip items.
package page

// Default batch sizes of the incremental views.
const (
	RoundBatchSize = 50 // matches within one round
	DayBatchSize   = 9  // matches per league in the daily view
)

// Page is one offset-paginated slice with its totals.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

// Offset slices items for the given 1-based page. Pages below 1 are
// normalized to 1; a page beyond the last yields empty items with the
// correct totals, never an error.
func Offset[T any](items []T, pageNum, limit int) Page[T] {
	if pageNum < 1 {
		pageNum = 1
	}
	if limit < 1 {
		limit = 1
	}
	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (pageNum - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return Page[T]{
		Items:      items[start:end],
		Total:      total,
		Page:       pageNum,
		TotalPages: totalPages,
	}
}

// Batch tracks how many items of an ordered list are visible. More reveals
// one batch at a time and is a no-op once everything is visible.
type Batch struct {
	size    int
	total   int
	visible int
}

// NewBatch creates a batch state showing the first batch of a list.
func NewBatch(size, total int) *Batch {
	if size < 1 {
		size = 1
	}
	if total < 0 {
		total = 0
	}
	b := &Batch{size: size, total: total}
	b.visible = min(size, total)
	return b
}

// Visible returns the current visible count.
func (b *Batch) Visible() int {
	return b.visible
}

// More reveals up to one more batch and returns the new visible count.
// Calling More with everything already visible changes nothing.
func (b *Batch) More() int {
	b.visible = min(b.visible+b.size, b.total)
	return b.visible
}

// HasMore reports whether any items remain hidden.
func (b *Batch) HasMore() bool {
	return b.visible < b.total
}

// Take returns the visible prefix of items according to the batch state.
func Take[T any](items []T, b *Batch) []T {
	n := b.Visible()
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
