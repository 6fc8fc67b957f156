package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
	"ulascansenturk/energy-forecast/internal/db/account"
	"ulascansenturk/energy-forecast/internal/db/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrUnauthenticated = errors.New("authentication required")

// SessionManager binds requests to an account. The token handed to the client
// is a signed JWT naming a row in the sessions table, so a session ends as
// soon as the row is gone even if the token has not expired.
type SessionManager interface {
	Establish(ctx context.Context, acc *account.Account) (string, time.Time, error)
	Resolve(ctx context.Context, token string) (Identity, error)
	End(ctx context.Context, token string) error
}

type sessionManager struct {
	secret   []byte
	ttl      time.Duration
	sessions session.Repository
	accounts account.Repository
	now      func() time.Time
}

func NewSessionManager(
	secret string,
	ttl time.Duration,
	sessions session.Repository,
	accounts account.Repository,
	now func() time.Time,
) SessionManager {
	if now == nil {
		now = time.Now
	}
	return &sessionManager{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: sessions,
		accounts: accounts,
		now:      now,
	}
}

func (m *sessionManager) Establish(ctx context.Context, acc *account.Account) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(m.ttl)

	sess := &session.Session{
		ID:        uuid.NewString(),
		AccountID: acc.ID,
		ExpiresAt: expiresAt,
	}
	if err := m.sessions.Create(ctx, sess); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store session: %w", err)
	}

	claims := jwt.RegisteredClaims{
		ID:        sess.ID,
		Subject:   strconv.FormatUint(uint64(acc.ID), 10),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, expiresAt, nil
}

func (m *sessionManager) Resolve(ctx context.Context, token string) (Identity, error) {
	claims, err := m.parse(token, true)
	if err != nil {
		return Identity{}, err
	}

	sess, err := m.sessions.Get(ctx, claims.ID)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			log.Error().Err(err).Msg("failed to load session")
		}
		return Identity{}, ErrUnauthenticated
	}

	if sess.Expired(m.now()) || strconv.FormatUint(uint64(sess.AccountID), 10) != claims.Subject {
		return Identity{}, ErrUnauthenticated
	}

	acc, err := m.accounts.GetByID(ctx, sess.AccountID)
	if err != nil {
		if !errors.Is(err, account.ErrNotFound) {
			log.Error().Err(err).Uint("account_id", sess.AccountID).Msg("failed to load session account")
		}
		return Identity{}, ErrUnauthenticated
	}

	return Identity{
		AccountID: acc.ID,
		Username:  acc.Username,
		Location:  acc.Location,
	}, nil
}

// End deletes the session named by the token. Expired tokens are accepted so
// a stale cookie can still be logged out.
func (m *sessionManager) End(ctx context.Context, token string) error {
	claims, err := m.parse(token, false)
	if err != nil {
		return err
	}
	return m.sessions.Delete(ctx, claims.ID)
}

func (m *sessionManager) parse(token string, checkExpiry bool) (*jwt.RegisteredClaims, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	}
	if !checkExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid || claims.ID == "" {
		return nil, ErrUnauthenticated
	}

	return claims, nil
}
