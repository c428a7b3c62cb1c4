package sale

import "context"

// Filter narrows the sales listing. Zero values mean "no filter"; both
// conditions compose as AND. The listing never paginates: it returns the
// full filtered set, saleDate descending, insertion order on ties.
type Filter struct {
	Status      Status
	AffiliateID uint64
}

type Repository interface {
	Create(ctx context.Context, s *Sale) error
	GetByID(ctx context.Context, id uint64) (*Sale, error)
	// Update merges fields and stamps updated_at; apperr.ErrNotFound when absent.
	Update(ctx context.Context, id uint64, fields map[string]any) error
	// Delete is idempotent: removing a missing id succeeds.
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, f Filter) ([]Sale, error)
	ListByAffiliate(ctx context.Context, affiliateID uint64) ([]Sale, error)
}
