package affiliate

import "context"

// ListQuery drives the affiliate list: optional free-text search plus a page
// slice. Search matches case-insensitively on name, lastName, email and code,
// and literally on phone; any hit keeps the row. Results are always newest
// first (createdAt descending, insertion order on ties).
type ListQuery struct {
	Search string
	Offset int
	Limit  int
}

type Repository interface {
	Create(ctx context.Context, a *Affiliate) error
	GetByID(ctx context.Context, id uint64) (*Affiliate, error)
	// Update merges fields into the stored row; apperr.ErrNotFound when absent.
	Update(ctx context.Context, id uint64, fields map[string]any) error
	// Delete is idempotent: removing a missing id succeeds.
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, s Status) (int64, error)
	All(ctx context.Context) ([]Affiliate, error)
	// List returns one page plus the total matching the search.
	List(ctx context.Context, q ListQuery) ([]Affiliate, int64, error)
	// ReplaceAll clears the table and bulk-inserts rows in one transaction.
	// Destructive overwrite, not a merge.
	ReplaceAll(ctx context.Context, rows []Affiliate) error
}
