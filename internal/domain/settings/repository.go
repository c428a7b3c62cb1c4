package settings

import "context"

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	// Update rewrites the existing singleton row; it never creates a second one.
	Update(ctx context.Context, fixedCommission float64) error
	Count(ctx context.Context) (int64, error)
	// EnsureDefault seeds the singleton exactly once; reopening an
	// initialized store is a no-op.
	EnsureDefault(ctx context.Context) error
}
