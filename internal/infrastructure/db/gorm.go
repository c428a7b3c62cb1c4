package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"affiliate-hub-backend/internal/config"
	affiliateDomain "affiliate-hub-backend/internal/domain/affiliate"
	saleDomain "affiliate-hub-backend/internal/domain/sale"
	settingsDomain "affiliate-hub-backend/internal/domain/settings"
)

// Open connects the configured engine. sqlite is the embedded default and is
// pinned to a single connection: one writer, no cross-connection surprises.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case config.DriverMySQL:
		db, err = gorm.Open(mysql.Open(cfg.MySQLDSN()), gcfg)
	case config.DriverSQLite:
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gcfg)
	default:
		return nil, fmt.Errorf("unknown driver %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DBDriver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(30)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Printf("gorm: connected (%s)", cfg.DBDriver)
	return db, nil
}

// Migrate creates or updates the three tables. The schema has a single
// bootstrap version; there is no further migration machinery.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&affiliateDomain.Affiliate{},
		&saleDomain.Sale{},
		&settingsDomain.Settings{},
	)
}
