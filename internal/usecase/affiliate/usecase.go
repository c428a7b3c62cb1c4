package affiliate

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"affiliate-hub-backend/internal/domain/affiliate"
	"affiliate-hub-backend/pkg/apperr"
	"affiliate-hub-backend/pkg/code"
)

type Usecase struct{ repo affiliate.Repository }

func NewUsecase(r affiliate.Repository) *Usecase { return &Usecase{repo: r} }

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CreateInput struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	ReferredBy  string `json:"referredBy"`
	Notes       string `json:"notes"`
	BankAccount string `json:"bankAccount"`
}

// UpdateInput carries the editable fields. Code and referredBy are absent on
// purpose: the code is generated once at creation and edits never touch it,
// and referredBy is set only at creation.
type UpdateInput struct {
	Name        string `json:"name"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
	BankAccount string `json:"bankAccount"`
}

func requiredFields(name, lastName, phone, email string) []apperr.FieldError {
	var errs []apperr.FieldError
	if strings.TrimSpace(name) == "" {
		errs = append(errs, apperr.FieldError{Field: "name", Message: "is required"})
	}
	if strings.TrimSpace(lastName) == "" {
		errs = append(errs, apperr.FieldError{Field: "lastName", Message: "is required"})
	}
	if strings.TrimSpace(phone) == "" {
		errs = append(errs, apperr.FieldError{Field: "phone", Message: "is required"})
	}
	switch {
	case strings.TrimSpace(email) == "":
		errs = append(errs, apperr.FieldError{Field: "email", Message: "is required"})
	case !reEmail.MatchString(email):
		errs = append(errs, apperr.FieldError{Field: "email", Message: "is not a valid email"})
	}
	return errs
}

// Create inserts a new affiliate, always pending. The referral code comes
// from the form when it pre-generated one, otherwise it is minted here.
// Either way it is generated exactly once, before the row exists.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*affiliate.Affiliate, error) {
	if errs := requiredFields(in.Name, in.LastName, in.Phone, in.Email); len(errs) > 0 {
		return nil, &apperr.ValidationError{Fields: errs}
	}

	c := strings.ToUpper(strings.TrimSpace(in.Code))
	if c == "" {
		c = code.New()
	}
	if len(c) != 6 {
		return nil, apperr.Validation("code", "must be 6 characters")
	}

	a := &affiliate.Affiliate{
		Code:        c,
		Name:        in.Name,
		LastName:    in.LastName,
		Phone:       in.Phone,
		Email:       in.Email,
		Status:      affiliate.StatusPending,
		ReferredBy:  in.ReferredBy,
		Notes:       in.Notes,
		BankAccount: in.BankAccount,
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*affiliate.Affiliate, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateInput) error {
	if errs := requiredFields(in.Name, in.LastName, in.Phone, in.Email); len(errs) > 0 {
		return &apperr.ValidationError{Fields: errs}
	}
	status := affiliate.Status(in.Status)
	if !status.Valid() {
		return apperr.Validation("status", "must be pending or accepted")
	}
	return u.repo.Update(ctx, id, map[string]any{
		"name":         in.Name,
		"last_name":    in.LastName,
		"phone":        in.Phone,
		"email":        in.Email,
		"status":       status,
		"notes":        in.Notes,
		"bank_account": in.BankAccount,
	})
}

// Delete removes the affiliate permanently. Sales keep their affiliateId and
// become orphans; there is no cascade.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.repo.Delete(ctx, id)
}

// List serves the paginated, searchable affiliate view: newest first, search
// OR-matched over name, lastName, email, phone and code.
func (u *Usecase) List(ctx context.Context, search string, page, pageSize int) ([]affiliate.Affiliate, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 5
	}
	return u.repo.List(ctx, affiliate.ListQuery{
		Search: strings.TrimSpace(search),
		Offset: (page - 1) * pageSize,
		Limit:  pageSize,
	})
}

func (u *Usecase) Count(ctx context.Context) (int64, error) {
	return u.repo.Count(ctx)
}

// Stats carries the dashboard counters.
type Stats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Accepted int64 `json:"accepted"`
}

func (u *Usecase) GetStats(ctx context.Context) (Stats, error) {
	var s Stats
	var err error
	if s.Total, err = u.repo.Count(ctx); err != nil {
		return Stats{}, err
	}
	if s.Pending, err = u.repo.CountByStatus(ctx, affiliate.StatusPending); err != nil {
		return Stats{}, err
	}
	if s.Accepted, err = u.repo.CountByStatus(ctx, affiliate.StatusAccepted); err != nil {
		return Stats{}, err
	}
	return s, nil
}

// Export serializes every affiliate row for interchange; time fields render
// as ISO-8601 when the caller marshals.
func (u *Usecase) Export(ctx context.Context) ([]affiliate.Affiliate, error) {
	rows, err := u.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []affiliate.Affiliate{}
	}
	return rows, nil
}

// Import replaces the whole affiliate table with the given JSON array. This
// is a destructive overwrite, not a merge. A malformed payload (not an array, or
// rows missing required fields) fails before anything is written, leaving
// the existing table untouched.
func (u *Usecase) Import(ctx context.Context, raw []byte) (int, error) {
	var rows []affiliate.Affiliate
	if err := json.Unmarshal(raw, &rows); err != nil {
		return 0, apperr.Validation("payload", "must be a JSON array of affiliates")
	}
	seen := make(map[string]int, len(rows))
	for i, r := range rows {
		if errs := requiredFields(r.Name, r.LastName, r.Phone, r.Email); len(errs) > 0 {
			return 0, apperr.Validation("payload", fmt.Sprintf("row %d: missing required fields", i))
		}
		if r.Code == "" {
			return 0, apperr.Validation("payload", fmt.Sprintf("row %d: missing code", i))
		}
		if j, dup := seen[r.Code]; dup {
			return 0, apperr.Validation("payload", fmt.Sprintf("row %d: code %s duplicates row %d", i, r.Code, j))
		}
		seen[r.Code] = i
	}
	if err := u.repo.ReplaceAll(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}
