package account

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNotFound          = errors.New("account not found")
)

type Repository interface {
	Create(ctx context.Context, acc *Account) error
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByID(ctx context.Context, id uint) (*Account, error)
}

type AccountSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &AccountSQLRepository{db: db}
}

// Create inserts the account. The unique index on username decides between
// concurrent registrations of the same name.
func (r *AccountSQLRepository) Create(ctx context.Context, acc *Account) error {
	err := r.db.WithContext(ctx).Create(acc).Error
	if isUniqueViolation(err) {
		return ErrDuplicateUsername
	}
	return err
}

func (r *AccountSQLRepository) GetByUsername(ctx context.Context, username string) (*Account, error) {
	var acc Account
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&acc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func (r *AccountSQLRepository) GetByID(ctx context.Context, id uint) (*Account, error) {
	var acc Account
	err := r.db.WithContext(ctx).First(&acc, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
