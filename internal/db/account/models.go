package account

import (
	"time"
)

// Column widths of username and location, in characters.
const (
	MaxUsernameLength = 50
	MaxLocationLength = 100
)

type Account struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:50;uniqueIndex:idx_accounts_username;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;size:100;not null"`
	Location     string    `json:"location" gorm:"size:100;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Account) TableName() string {
	return "accounts"
}
