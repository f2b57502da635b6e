package bundles

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo used when no database is configured.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Bundle
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[string]Bundle)}
}

// Create stores the bundle.
func (r *MemoryRepo) Create(ctx context.Context, b Bundle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[b.ID] = b
	return nil
}

// GetByID returns the bundle or ErrNotFound.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Bundle, error) {
	if err := ctx.Err(); err != nil {
		return Bundle{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok {
		return Bundle{}, ErrNotFound
	}
	return b, nil
}

// List returns bundles newest-first, optionally filtered by owner.
func (r *MemoryRepo) List(ctx context.Context, userID int64, limit, offset int) ([]Bundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	all := make([]Bundle, 0, len(r.items))
	for _, b := range r.items {
		if userID != 0 && b.UserID != userID {
			continue
		}
		all = append(all, b)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// Len reports the number of stored bundles.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

var _ Repo = (*MemoryRepo)(nil)
