package sqlite

import (
	"context"
	"time"

	"gorm.io/gorm"

	saleDomain "affiliate-hub-backend/internal/domain/sale"
	"affiliate-hub-backend/internal/store"
)

type SaleRepository struct {
	db       *gorm.DB
	notifier *store.Notifier
}

func NewSaleRepository(db *gorm.DB, n *store.Notifier) *SaleRepository {
	return &SaleRepository{db: db, notifier: n}
}

func (r *SaleRepository) Create(ctx context.Context, s *saleDomain.Sale) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return wrap("create sale", err)
	}
	r.notifier.Publish(store.Event{Table: SalesTable, Op: store.OpCreate, ID: s.ID})
	return nil
}

func (r *SaleRepository) GetByID(ctx context.Context, id uint64) (*saleDomain.Sale, error) {
	var out saleDomain.Sale
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, wrap("get sale", err)
	}
	return &out, nil
}

// Update merges fields and stamps updated_at. Creation leaves updated_at
// nil; only this path sets it.
func (r *SaleRepository) Update(ctx context.Context, id uint64, fields map[string]any) error {
	if _, ok := fields["updated_at"]; !ok {
		fields["updated_at"] = time.Now().UTC()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s saleDomain.Sale
		if err := tx.First(&s, id).Error; err != nil {
			return err
		}
		return tx.Model(&s).Updates(fields).Error
	})
	if err != nil {
		return wrap("update sale", err)
	}
	r.notifier.Publish(store.Event{Table: SalesTable, Op: store.OpUpdate, ID: id})
	return nil
}

// Delete succeeds whether or not the row exists.
func (r *SaleRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&saleDomain.Sale{}, id)
	if res.Error != nil {
		return wrap("delete sale", res.Error)
	}
	if res.RowsAffected > 0 {
		r.notifier.Publish(store.Event{Table: SalesTable, Op: store.OpDelete, ID: id})
	}
	return nil
}

func (r *SaleRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&saleDomain.Sale{}).Count(&n).Error
	return n, wrap("count sales", err)
}

// List materializes the full table ordered by sale_date descending (id ASC
// keeps same-day sales in insertion order) and applies the status/affiliate
// filters in memory, AND-composed. No pagination: the whole filtered set
// comes back.
func (r *SaleRepository) List(ctx context.Context, f saleDomain.Filter) ([]saleDomain.Sale, error) {
	var all []saleDomain.Sale
	err := r.db.WithContext(ctx).
		Order("sale_date DESC, id ASC").
		Find(&all).Error
	if err != nil {
		return nil, wrap("list sales", err)
	}
	return store.Filter(all, func(s saleDomain.Sale) bool {
		if f.Status != "" && s.Status != f.Status {
			return false
		}
		if f.AffiliateID != 0 && s.AffiliateID != f.AffiliateID {
			return false
		}
		return true
	}), nil
}

// ListByAffiliate is the sales-history view: one affiliate's sales in
// insertion order, straight off the affiliate_id index.
func (r *SaleRepository) ListByAffiliate(ctx context.Context, affiliateID uint64) ([]saleDomain.Sale, error) {
	var rows []saleDomain.Sale
	err := r.db.WithContext(ctx).
		Where("affiliate_id = ?", affiliateID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, wrap("list sales by affiliate", err)
	}
	return rows, nil
}
