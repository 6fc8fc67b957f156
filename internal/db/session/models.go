package session

import (
	"time"
	"ulascansenturk/energy-forecast/internal/db/account"
)

type Session struct {
	ID        string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AccountID uint             `json:"account_id" gorm:"not null;index"`
	Account   *account.Account `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ExpiresAt time.Time        `json:"expires_at" gorm:"not null;index"`
	CreatedAt time.Time        `json:"created_at"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
