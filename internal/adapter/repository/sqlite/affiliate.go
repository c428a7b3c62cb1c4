package sqlite

import (
	"context"
	"math"
	"strings"

	"gorm.io/gorm"

	affiliateDomain "affiliate-hub-backend/internal/domain/affiliate"
	"affiliate-hub-backend/internal/store"
)

type AffiliateRepository struct {
	db       *gorm.DB
	notifier *store.Notifier
}

func NewAffiliateRepository(db *gorm.DB, n *store.Notifier) *AffiliateRepository {
	return &AffiliateRepository{db: db, notifier: n}
}

func (r *AffiliateRepository) Create(ctx context.Context, a *affiliateDomain.Affiliate) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return wrap("create affiliate", err)
	}
	r.notifier.Publish(store.Event{Table: AffiliatesTable, Op: store.OpCreate, ID: a.ID})
	return nil
}

func (r *AffiliateRepository) GetByID(ctx context.Context, id uint64) (*affiliateDomain.Affiliate, error) {
	var out affiliateDomain.Affiliate
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, wrap("get affiliate", err)
	}
	return &out, nil
}

// Update merges fields into the existing row. The read-then-update pair runs
// in one transaction so a concurrent delete cannot slip between them.
func (r *AffiliateRepository) Update(ctx context.Context, id uint64, fields map[string]any) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a affiliateDomain.Affiliate
		if err := tx.First(&a, id).Error; err != nil {
			return err
		}
		return tx.Model(&a).Updates(fields).Error
	})
	if err != nil {
		return wrap("update affiliate", err)
	}
	r.notifier.Publish(store.Event{Table: AffiliatesTable, Op: store.OpUpdate, ID: id})
	return nil
}

// Delete succeeds whether or not the row exists.
func (r *AffiliateRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&affiliateDomain.Affiliate{}, id)
	if res.Error != nil {
		return wrap("delete affiliate", res.Error)
	}
	if res.RowsAffected > 0 {
		r.notifier.Publish(store.Event{Table: AffiliatesTable, Op: store.OpDelete, ID: id})
	}
	return nil
}

func (r *AffiliateRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&affiliateDomain.Affiliate{}).Count(&n).Error
	return n, wrap("count affiliates", err)
}

func (r *AffiliateRepository) CountByStatus(ctx context.Context, s affiliateDomain.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&affiliateDomain.Affiliate{}).
		Where("status = ?", s).Count(&n).Error
	return n, wrap("count affiliates by status", err)
}

func (r *AffiliateRepository) All(ctx context.Context) ([]affiliateDomain.Affiliate, error) {
	var rows []affiliateDomain.Affiliate
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, wrap("scan affiliates", err)
	}
	return rows, nil
}

// List is the affiliate half of the query pipeline. Without a search term the
// ordering and the page slice run in SQL against the created_at index and the
// total is a direct table count. With a term every row is materialized (still
// SQL-ordered), the five-field OR match runs in memory, and the slice comes
// last; the total then counts the surviving rows.
func (r *AffiliateRepository) List(ctx context.Context, q affiliateDomain.ListQuery) ([]affiliateDomain.Affiliate, int64, error) {
	// id ASC breaks created_at ties in insertion order.
	ordered := r.db.WithContext(ctx).
		Model(&affiliateDomain.Affiliate{}).
		Order("created_at DESC, id ASC")

	if q.Search == "" {
		total, err := r.Count(ctx)
		if err != nil {
			return nil, 0, err
		}
		page := ordered.Offset(q.Offset)
		if q.Limit > 0 {
			page = page.Limit(q.Limit)
		} else if q.Offset > 0 {
			// sqlite rejects OFFSET without LIMIT, so no-limit still needs
			// a LIMIT clause when skipping rows.
			page = page.Limit(math.MaxInt32)
		}
		var rows []affiliateDomain.Affiliate
		if err := page.Find(&rows).Error; err != nil {
			return nil, 0, wrap("list affiliates", err)
		}
		return rows, total, nil
	}

	var all []affiliateDomain.Affiliate
	if err := ordered.Find(&all).Error; err != nil {
		return nil, 0, wrap("list affiliates", err)
	}
	matched := store.Filter(all, func(a affiliateDomain.Affiliate) bool {
		return matchesSearch(a, q.Search)
	})
	return store.Page(matched, q.Offset, q.Limit), int64(len(matched)), nil
}

// matchesSearch ORs the five searchable fields: name, lastName, email and
// code fold case; phone matches the raw term literally.
func matchesSearch(a affiliateDomain.Affiliate, term string) bool {
	return store.MatchFold(a.Name, term) ||
		store.MatchFold(a.LastName, term) ||
		store.MatchFold(a.Email, term) ||
		strings.Contains(a.Phone, term) ||
		store.MatchFold(a.Code, term)
}

// ReplaceAll clears the table and bulk-inserts rows inside one transaction:
// either the whole import lands or the previous table survives untouched.
// Incoming ids are kept as-is, matching the interchange shape.
func (r *AffiliateRepository) ReplaceAll(ctx context.Context, rows []affiliateDomain.Affiliate) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&affiliateDomain.Affiliate{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return wrap("replace affiliates", err)
	}
	r.notifier.Publish(store.Event{Table: AffiliatesTable, Op: store.OpReplace})
	return nil
}
