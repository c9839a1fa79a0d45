package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LoginToken is a pending email-link login code. The code itself is never
// stored, only its bcrypt hash.
type LoginToken struct {
	ID        uuid.UUID
	Email     string
	CodeHash  string
	ExpiresAt time.Time
}

// InsertLoginToken stores a pending login code hash, invalidating any older
// pending codes for the same address
func (s *PGStore) InsertLoginToken(ctx context.Context, token LoginToken) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM login_tokens WHERE email = $1`, token.Email); err != nil {
		return err
	}
	query := `
		INSERT INTO login_tokens (id, email, code_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := s.pool.Exec(ctx, query, token.ID, token.Email, token.CodeHash, token.ExpiresAt)
	return err
}

// PendingLoginToken returns the unexpired login token for an address
func (s *PGStore) PendingLoginToken(ctx context.Context, email string) (*LoginToken, error) {
	query := `
		SELECT id, email, code_hash, expires_at
		FROM login_tokens
		WHERE email = $1 AND expires_at > NOW()
	`

	var token LoginToken
	err := s.pool.QueryRow(ctx, query, email).Scan(&token.ID, &token.Email, &token.CodeHash, &token.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

// DeleteLoginToken removes a token once redeemed (single use)
func (s *PGStore) DeleteLoginToken(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM login_tokens WHERE id = $1`, id)
	return err
}
