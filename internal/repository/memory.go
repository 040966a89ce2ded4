package repository

import (
	"context"
	"sync"

	"github.com/passforge/passforge-go/internal/model"
)

// MemoryHistoryRepository is an in-process history store with the same
// retention semantics as HistoryRepository. It backs the "memory" driver and
// the degraded mode entered when the database cannot be opened.
type MemoryHistoryRepository struct {
	mu    sync.RWMutex
	items []model.HistoryItem // newest first
	limit int
}

// NewMemoryHistoryRepository creates an in-memory history store retaining at
// most limit items (DefaultHistoryLimit when limit <= 0).
func NewMemoryHistoryRepository(limit int) *MemoryHistoryRepository {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &MemoryHistoryRepository{limit: limit}
}

// Record prepends a history item and drops the oldest beyond the cap.
func (r *MemoryHistoryRepository) Record(ctx context.Context, item *model.HistoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]model.HistoryItem{*item}, r.items...)
	if len(r.items) > r.limit {
		r.items = r.items[:r.limit]
	}
	return nil
}

// List returns a copy of the retained items, most recent first. A limit <= 0
// returns everything retained.
func (r *MemoryHistoryRepository) List(ctx context.Context, limit int) ([]model.HistoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.items)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]model.HistoryItem, n)
	copy(out, r.items[:n])
	return out, nil
}

// Delete removes a single history item by its ID.
func (r *MemoryHistoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Clear removes every retained history item.
func (r *MemoryHistoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
	return nil
}
