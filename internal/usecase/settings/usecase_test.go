package settings

import (
	"context"
	"testing"

	domain "affiliate-hub-backend/internal/domain/settings"
	"affiliate-hub-backend/pkg/apperr"
)

type mockRepo struct {
	GetFn           func(ctx context.Context) (*domain.Settings, error)
	UpdateFn        func(ctx context.Context, fixedCommission float64) error
	CountFn         func(ctx context.Context) (int64, error)
	EnsureDefaultFn func(ctx context.Context) error
}

func (m *mockRepo) Get(ctx context.Context) (*domain.Settings, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	def := domain.Default()
	return &def, nil
}

func (m *mockRepo) Update(ctx context.Context, fixedCommission float64) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, fixedCommission)
	}
	return nil
}

func (m *mockRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 1, nil
}

func (m *mockRepo) EnsureDefault(ctx context.Context) error {
	if m.EnsureDefaultFn != nil {
		return m.EnsureDefaultFn(ctx)
	}
	return nil
}

func TestGet_Default(t *testing.T) {
	uc := NewUsecase(&mockRepo{})
	got, err := uc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != domain.SingletonID || got.FixedCommission != 15000 {
		t.Fatalf("settings: %+v", got)
	}
}

func TestUpdate_Valid(t *testing.T) {
	var gotValue float64 = -1
	uc := NewUsecase(&mockRepo{
		UpdateFn: func(ctx context.Context, v float64) error {
			gotValue = v
			return nil
		},
	})
	if err := uc.Update(context.Background(), UpdateInput{FixedCommission: 20000}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if gotValue != 20000 {
		t.Fatalf("value: %v", gotValue)
	}

	// Zero is a legal commission.
	if err := uc.Update(context.Background(), UpdateInput{FixedCommission: 0}); err != nil {
		t.Fatalf("Update(0): %v", err)
	}
}

func TestUpdate_RejectsNegative(t *testing.T) {
	uc := NewUsecase(&mockRepo{
		UpdateFn: func(ctx context.Context, v float64) error {
			t.Fatal("Update must not reach the store for a negative value")
			return nil
		},
	})
	err := uc.Update(context.Background(), UpdateInput{FixedCommission: -100})
	if !apperr.IsValidation(err) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}
