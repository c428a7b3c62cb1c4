package sale

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
	StatusPaid     Status = "paid"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusVerified || s == StatusPaid
}

// Display returns the label shown in the panel.
func (s Status) Display() string {
	switch s {
	case StatusVerified:
		return "Verificada"
	case StatusPaid:
		return "Pagada"
	default:
		return "Pendiente"
	}
}

// Sale is a commission-bearing event attributed to an affiliate.
//
// SaleAmount keeps its historical name: in the affiliate-initiated flow it
// carries the operator-entered commission (the form labels it "Comisión").
// Downstream consumers depend on the literal field name.
//
// UpdatedAt is nil until the general-purpose edit path touches the row;
// creation never sets it (autoUpdateTime disabled on purpose).
type Sale struct {
	ID           uint64     `gorm:"primaryKey;column:id" json:"id"`
	AffiliateID  uint64     `gorm:"column:affiliate_id;index:idx_sales_affiliate" json:"affiliateId"`
	ClientName   string     `gorm:"size:120;column:client_name" json:"clientName"`
	BusinessName string     `gorm:"size:120;column:business_name" json:"businessName,omitempty"`
	ClientEmail  string     `gorm:"size:255;column:client_email" json:"clientEmail,omitempty"`
	SaleAmount   float64    `gorm:"column:sale_amount" json:"saleAmount"`
	SaleDate     time.Time  `gorm:"column:sale_date;index:idx_sales_sale_date" json:"saleDate"`
	Status       Status     `gorm:"size:16;default:'pending'" json:"status"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}

func (Sale) TableName() string { return "sales" }
