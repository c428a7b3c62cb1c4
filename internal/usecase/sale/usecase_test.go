package sale

import (
	"context"
	"errors"
	"testing"
	"time"

	affiliateDomain "affiliate-hub-backend/internal/domain/affiliate"
	domain "affiliate-hub-backend/internal/domain/sale"
	"affiliate-hub-backend/pkg/apperr"
)

type mockSaleRepo struct {
	CreateFn          func(ctx context.Context, s *domain.Sale) error
	ListFn            func(ctx context.Context, f domain.Filter) ([]domain.Sale, error)
	ListByAffiliateFn func(ctx context.Context, affiliateID uint64) ([]domain.Sale, error)
}

func (m *mockSaleRepo) Create(ctx context.Context, s *domain.Sale) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *mockSaleRepo) GetByID(ctx context.Context, id uint64) (*domain.Sale, error) {
	return nil, errors.New("not implemented")
}

func (m *mockSaleRepo) Update(ctx context.Context, id uint64, fields map[string]any) error {
	return nil
}

func (m *mockSaleRepo) Delete(ctx context.Context, id uint64) error { return nil }

func (m *mockSaleRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (m *mockSaleRepo) List(ctx context.Context, f domain.Filter) ([]domain.Sale, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *mockSaleRepo) ListByAffiliate(ctx context.Context, affiliateID uint64) ([]domain.Sale, error) {
	if m.ListByAffiliateFn != nil {
		return m.ListByAffiliateFn(ctx, affiliateID)
	}
	return nil, nil
}

// affiliateExists is an affiliate repo whose GetByID knows a fixed set of ids.
type affiliateExists struct {
	affiliateDomain.Repository
	ids map[uint64]bool
}

func (a *affiliateExists) GetByID(ctx context.Context, id uint64) (*affiliateDomain.Affiliate, error) {
	if a.ids[id] {
		return &affiliateDomain.Affiliate{ID: id}, nil
	}
	return nil, apperr.ErrNotFound
}

func validInput() CreateInput {
	return CreateInput{
		AffiliateID: 7,
		ClientName:  "Cliente Uno",
		SaleAmount:  15000,
		SaleDate:    "2024-03-15",
	}
}

func TestCreate_Success(t *testing.T) {
	var saved *domain.Sale
	uc := NewUsecase(&mockSaleRepo{
		CreateFn: func(ctx context.Context, s *domain.Sale) error {
			s.ID = 1
			s.CreatedAt = time.Now().UTC()
			saved = s
			return nil
		},
	}, &affiliateExists{ids: map[uint64]bool{7: true}})

	got, err := uc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if saved == nil || got.ID != 1 {
		t.Fatalf("repo not called: %+v", got)
	}
	if got.Status != domain.StatusPending {
		t.Fatalf("status: %s", got.Status)
	}
	if got.SaleDate.Day() != 15 || got.SaleDate.Month() != 3 || got.SaleDate.Year() != 2024 {
		t.Fatalf("saleDate: %v", got.SaleDate)
	}
	if got.UpdatedAt != nil {
		t.Fatalf("updatedAt must be nil at creation")
	}
}

func TestCreate_RejectsMissingAffiliate(t *testing.T) {
	uc := NewUsecase(&mockSaleRepo{
		CreateFn: func(ctx context.Context, s *domain.Sale) error {
			t.Fatal("Create must not run for a missing affiliate")
			return nil
		},
	}, &affiliateExists{ids: map[uint64]bool{}})

	_, err := uc.Create(context.Background(), validInput())
	if !apperr.IsValidation(err) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	uc := NewUsecase(&mockSaleRepo{}, &affiliateExists{ids: map[uint64]bool{7: true}})

	cases := []struct {
		name   string
		mutate func(*CreateInput)
	}{
		{"missing client", func(in *CreateInput) { in.ClientName = " " }},
		{"zero amount", func(in *CreateInput) { in.SaleAmount = 0 }},
		{"negative amount", func(in *CreateInput) { in.SaleAmount = -1 }},
		{"bad date", func(in *CreateInput) { in.SaleDate = "15/03/2024" }},
		{"no affiliate id", func(in *CreateInput) { in.AffiliateID = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := validInput()
			c.mutate(&in)
			if _, err := uc.Create(context.Background(), in); !apperr.IsValidation(err) {
				t.Fatalf("want ValidationError, got %v", err)
			}
		})
	}
}

func TestList_FilterMapping(t *testing.T) {
	var gotFilter domain.Filter
	uc := NewUsecase(&mockSaleRepo{
		ListFn: func(ctx context.Context, f domain.Filter) ([]domain.Sale, error) {
			gotFilter = f
			return []domain.Sale{}, nil
		},
	}, &affiliateExists{})

	if _, err := uc.List(context.Background(), "paid", 7); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotFilter.Status != domain.StatusPaid || gotFilter.AffiliateID != 7 {
		t.Fatalf("filter: %+v", gotFilter)
	}

	// "all" and "" mean no status filter.
	for _, s := range []string{"all", ""} {
		if _, err := uc.List(context.Background(), s, 0); err != nil {
			t.Fatalf("List(%q): %v", s, err)
		}
		if gotFilter.Status != "" || gotFilter.AffiliateID != 0 {
			t.Fatalf("filter for %q: %+v", s, gotFilter)
		}
	}
}

func TestList_RejectsUnknownStatus(t *testing.T) {
	uc := NewUsecase(&mockSaleRepo{}, &affiliateExists{})
	if _, err := uc.List(context.Background(), "archived", 0); !apperr.IsValidation(err) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

func TestListForAffiliate(t *testing.T) {
	uc := NewUsecase(&mockSaleRepo{
		ListByAffiliateFn: func(ctx context.Context, affiliateID uint64) ([]domain.Sale, error) {
			if affiliateID != 7 {
				t.Fatalf("affiliateID: %d", affiliateID)
			}
			return []domain.Sale{{ID: 1, AffiliateID: 7}}, nil
		},
	}, &affiliateExists{})

	rows, err := uc.ListForAffiliate(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListForAffiliate: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: %+v", rows)
	}
}

func TestStatusDisplay(t *testing.T) {
	cases := map[domain.Status]string{
		domain.StatusPending:  "Pendiente",
		domain.StatusVerified: "Verificada",
		domain.StatusPaid:     "Pagada",
	}
	for s, want := range cases {
		if got := s.Display(); got != want {
			t.Errorf("%s: got %q want %q", s, got, want)
		}
	}
}
