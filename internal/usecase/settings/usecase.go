package settings

import (
	"context"

	"affiliate-hub-backend/internal/domain/settings"
	"affiliate-hub-backend/pkg/apperr"
)

type Usecase struct{ repo settings.Repository }

func NewUsecase(r settings.Repository) *Usecase { return &Usecase{repo: r} }

type UpdateInput struct {
	FixedCommission float64 `json:"fixedCommission"`
}

func (u *Usecase) Get(ctx context.Context) (*settings.Settings, error) {
	return u.repo.Get(ctx)
}

// Update rewrites the singleton row in place. The value is display context
// for sale entry; it never flows into a sale's saleAmount automatically.
func (u *Usecase) Update(ctx context.Context, in UpdateInput) error {
	if in.FixedCommission < 0 {
		return apperr.Validation("fixedCommission", "must be non-negative")
	}
	return u.repo.Update(ctx, in.FixedCommission)
}
