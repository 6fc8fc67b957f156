package forecastrecord

import (
	"time"
	"ulascansenturk/energy-forecast/internal/db/account"
)

// DateLayout is the calendar-date format stored in ForecastRecord.Date.
const DateLayout = "2006-01-02"

type ForecastRecord struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	AccountID   uint             `json:"account_id" gorm:"not null;index:idx_forecast_records_account_created_at"`
	Account     *account.Account `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Date        string           `json:"date" gorm:"type:varchar(10);not null"`
	SolarEnergy float64          `json:"solar_energy" gorm:"column:solar_energy;not null"`
	WindEnergy  float64          `json:"wind_energy" gorm:"column:wind_energy;not null"`
	CreatedAt   time.Time        `json:"created_at" gorm:"index:idx_forecast_records_account_created_at"`
}

func (ForecastRecord) TableName() string {
	return "forecast_records"
}
