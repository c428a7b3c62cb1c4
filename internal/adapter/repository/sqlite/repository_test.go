package sqlite

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	affiliateDomain "affiliate-hub-backend/internal/domain/affiliate"
	saleDomain "affiliate-hub-backend/internal/domain/sale"
	settingsDomain "affiliate-hub-backend/internal/domain/settings"
	"affiliate-hub-backend/internal/store"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&affiliateDomain.Affiliate{},
		&saleDomain.Sale{},
		&settingsDomain.Settings{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func testRepos(t *testing.T) (*AffiliateRepository, *SaleRepository, *SettingsRepository, *store.Notifier) {
	t.Helper()
	db := openTestDB(t)
	n := store.NewNotifier()
	return NewAffiliateRepository(db, n), NewSaleRepository(db, n), NewSettingsRepository(db, n), n
}

func makeAffiliate(code, name, lastName string) *affiliateDomain.Affiliate {
	return &affiliateDomain.Affiliate{
		Code:     code,
		Name:     name,
		LastName: lastName,
		Phone:    "3001234567",
		Email:    name + "@example.com",
		Status:   affiliateDomain.StatusPending,
	}
}

func makeSale(affiliateID uint64, client string, date time.Time) *saleDomain.Sale {
	return &saleDomain.Sale{
		AffiliateID: affiliateID,
		ClientName:  client,
		SaleAmount:  15000,
		SaleDate:    date,
		Status:      saleDomain.StatusPending,
	}
}
