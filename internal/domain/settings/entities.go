package settings

// SingletonID is the fixed key of the one settings row. The table never
// holds a second row: bootstrap seeds it once, updates rewrite it in place.
const SingletonID uint64 = 1

// DefaultFixedCommission is the commission value seeded on first creation.
const DefaultFixedCommission float64 = 15000

// Settings holds the global commission shown for context during sale entry.
// It is never copied into a sale automatically; the operator types the
// per-sale value by hand.
type Settings struct {
	ID              uint64  `gorm:"primaryKey;column:id" json:"id"`
	FixedCommission float64 `gorm:"column:fixed_commission" json:"fixedCommission"`
}

func (Settings) TableName() string { return "settings" }

// Default is the row seeded when the store is first populated.
func Default() Settings {
	return Settings{ID: SingletonID, FixedCommission: DefaultFixedCommission}
}
