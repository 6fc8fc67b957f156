package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"
	"ulascansenturk/energy-forecast/internal/auth"
	"ulascansenturk/energy-forecast/internal/db/account"

	"github.com/rs/zerolog/log"
)

var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTooLong    = errors.New("username too long")
	ErrLocationTooLong    = errors.New("location too long")
	ErrPasswordTooLong    = errors.New("password too long")
)

type AuthService interface {
	Register(ctx context.Context, username, password, location string) (*account.Account, error)
	VerifyCredentials(ctx context.Context, username, password string) (*account.Account, error)
}

type authService struct {
	accounts  account.Repository
	hasher    auth.PasswordHasher
	dummyHash string
}

func NewAuthService(accounts account.Repository, hasher auth.PasswordHasher) (AuthService, error) {
	// compared against when the username is unknown, so both failure paths
	// pay for one hash verification
	dummyHash, err := hasher.Hash("energy-forecast-placeholder")
	if err != nil {
		return nil, err
	}

	return &authService{
		accounts:  accounts,
		hasher:    hasher,
		dummyHash: dummyHash,
	}, nil
}

// Register stores a new account. Inputs that cannot fit the accounts table or
// bcrypt are rejected before anything is written.
func (s *authService) Register(ctx context.Context, username, password, location string) (*account.Account, error) {
	if utf8.RuneCountInString(username) > account.MaxUsernameLength {
		return nil, ErrUsernameTooLong
	}
	if utf8.RuneCountInString(location) > account.MaxLocationLength {
		return nil, ErrLocationTooLong
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, err
	}

	acc := &account.Account{
		Username:     username,
		PasswordHash: hashed,
		Location:     location,
	}

	if err := s.accounts.Create(ctx, acc); err != nil {
		if errors.Is(err, account.ErrDuplicateUsername) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	log.Info().Uint("account_id", acc.ID).Str("username", acc.Username).Msg("account registered")

	return acc, nil
}

// VerifyCredentials returns ErrInvalidCredentials for an unknown username and
// for a wrong password alike.
func (s *authService) VerifyCredentials(ctx context.Context, username, password string) (*account.Account, error) {
	acc, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, account.ErrNotFound) {
			log.Error().Err(err).Msg("failed to look up account")
		}
		s.hasher.Verify(password, s.dummyHash)
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, acc.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return acc, nil
}
