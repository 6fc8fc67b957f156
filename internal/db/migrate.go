package db

import (
	"ulascansenturk/energy-forecast/internal/db/account"
	"ulascansenturk/energy-forecast/internal/db/forecastrecord"
	"ulascansenturk/energy-forecast/internal/db/session"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the accounts, forecast_records and sessions
// tables. Accounts go first so the foreign keys have a target.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&account.Account{}, &forecastrecord.ForecastRecord{}, &session.Session{})
}
