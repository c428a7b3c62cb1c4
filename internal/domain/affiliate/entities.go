package affiliate

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusAccepted
}

// Display returns the label shown in the panel.
func (s Status) Display() string {
	switch s {
	case StatusAccepted:
		return "Aceptado"
	default:
		return "Pendiente"
	}
}

// Affiliate is a referral-program participant. Code is the 6-char
// human-shareable referral code, generated once at creation and kept across
// edits. ReferredBy is free text, set only at creation. JSON tags mirror the
// export/import interchange shape.
type Affiliate struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"id"`
	Code        string    `gorm:"size:6;uniqueIndex:ux_affiliates_code" json:"code"`
	Name        string    `gorm:"size:120" json:"name"`
	LastName    string    `gorm:"size:120;column:last_name" json:"lastName"`
	Phone       string    `gorm:"size:32" json:"phone"`
	Email       string    `gorm:"size:255" json:"email"`
	Status      Status    `gorm:"size:16;default:'pending'" json:"status"`
	ReferredBy  string    `gorm:"size:255;column:referred_by" json:"referredBy,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	BankAccount string    `gorm:"size:64;column:bank_account" json:"bankAccount,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index:idx_affiliates_created_at" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Affiliate) TableName() string { return "affiliates" }
