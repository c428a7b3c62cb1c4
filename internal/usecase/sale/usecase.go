package sale

import (
	"context"
	"errors"
	"strings"

	affiliateDomain "affiliate-hub-backend/internal/domain/affiliate"
	"affiliate-hub-backend/internal/domain/sale"
	"affiliate-hub-backend/pkg/apperr"
	"affiliate-hub-backend/pkg/dates"
)

type Usecase struct {
	repo       sale.Repository
	affiliates affiliateDomain.Repository
}

func NewUsecase(r sale.Repository, affiliates affiliateDomain.Repository) *Usecase {
	return &Usecase{repo: r, affiliates: affiliates}
}

// CreateInput covers both entry flows ("add sale for affiliate X" and
// "register a sale"). SaleAmount keeps the stored field's name even though
// the affiliate-initiated form labels it "Comisión": the operator types the
// commission by hand, the global setting is context only.
type CreateInput struct {
	AffiliateID  uint64  `json:"affiliateId"`
	ClientName   string  `json:"clientName"`
	BusinessName string  `json:"businessName"`
	ClientEmail  string  `json:"clientEmail"`
	SaleAmount   float64 `json:"saleAmount"`
	SaleDate     string  `json:"saleDate"` // YYYY-MM-DD
	Notes        string  `json:"notes"`
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*sale.Sale, error) {
	var errs []apperr.FieldError
	if in.AffiliateID == 0 {
		errs = append(errs, apperr.FieldError{Field: "affiliateId", Message: "is required"})
	}
	if strings.TrimSpace(in.ClientName) == "" {
		errs = append(errs, apperr.FieldError{Field: "clientName", Message: "is required"})
	}
	if in.SaleAmount <= 0 {
		errs = append(errs, apperr.FieldError{Field: "saleAmount", Message: "must be greater than 0"})
	}
	saleDate, dateErr := dates.ParseLocal(in.SaleDate)
	if dateErr != nil {
		errs = append(errs, apperr.FieldError{Field: "saleDate", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return nil, &apperr.ValidationError{Fields: errs}
	}

	// The referenced affiliate must exist at write time. Deleting it later
	// still orphans the sale; only creation checks.
	if _, err := u.affiliates.GetByID(ctx, in.AffiliateID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Validation("affiliateId", "affiliate does not exist")
		}
		return nil, err
	}

	s := &sale.Sale{
		AffiliateID:  in.AffiliateID,
		ClientName:   in.ClientName,
		BusinessName: in.BusinessName,
		ClientEmail:  in.ClientEmail,
		SaleAmount:   in.SaleAmount,
		SaleDate:     saleDate,
		Status:       sale.StatusPending,
		Notes:        in.Notes,
	}
	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// List returns the full filtered set, saleDate descending. statusFilter ""
// (or "all") and affiliateID 0 mean unfiltered; both conditions AND.
func (u *Usecase) List(ctx context.Context, statusFilter string, affiliateID uint64) ([]sale.Sale, error) {
	f := sale.Filter{AffiliateID: affiliateID}
	if statusFilter != "" && statusFilter != "all" {
		status := sale.Status(statusFilter)
		if !status.Valid() {
			return nil, apperr.Validation("status", "must be pending, verified or paid")
		}
		f.Status = status
	}
	return u.repo.List(ctx, f)
}

// ListForAffiliate is the sales-history view opened from the affiliate list.
func (u *Usecase) ListForAffiliate(ctx context.Context, affiliateID uint64) ([]sale.Sale, error) {
	return u.repo.ListByAffiliate(ctx, affiliateID)
}
