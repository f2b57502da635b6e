package bundles

import "context"

// Repo defines persistence operations for recommendation bundles.
type Repo interface {
	Create(ctx context.Context, b Bundle) error
	GetByID(ctx context.Context, id string) (Bundle, error)
	// List returns bundles newest-first. userID 0 lists across all owners.
	List(ctx context.Context, userID int64, limit, offset int) ([]Bundle, error)
}
