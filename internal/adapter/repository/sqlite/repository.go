// Package sqlite implements the table repositories on gorm. The default
// engine is an embedded sqlite file; the same code runs against mysql when
// the config selects it.
package sqlite

import (
	"errors"

	"gorm.io/gorm"

	"affiliate-hub-backend/pkg/apperr"
)

// Table names, also used as notifier topics.
const (
	AffiliatesTable = "affiliates"
	SalesTable      = "sales"
	SettingsTable   = "settings"
)

// wrap translates gorm errors at the repository boundary: record-not-found
// becomes apperr.ErrNotFound, anything else a StorageError.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return apperr.Storage(op, err)
}
