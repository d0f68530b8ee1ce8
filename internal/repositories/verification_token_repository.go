package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ecomauth/internal/models"
)

type VerificationTokenRepository interface {
	Create(ctx context.Context, token *models.VerificationToken) (int64, error)
	// GetByToken returns (nil, nil) when the token is unknown.
	GetByToken(ctx context.Context, token string) (*models.VerificationToken, error)
	// Delete removes the token row if it still exists and reports whether
	// this call was the one that removed it. Concurrent confirmations race
	// on this delete; only one caller sees true.
	Delete(ctx context.Context, token string) (bool, error)
	// DeleteExpired purges tokens whose expiry is at or before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type verificationTokenRepository struct {
	DB *sql.DB
}

func NewVerificationTokenRepository(db *sql.DB) VerificationTokenRepository {
	return &verificationTokenRepository{DB: db}
}

func (r *verificationTokenRepository) Create(ctx context.Context, token *models.VerificationToken) (int64, error) {
	const q = `
		INSERT INTO verification_tokens (token, email, expiry_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := r.DB.QueryRowContext(ctx, q, token.Token, token.Email, token.ExpiryDate).Scan(&id); err != nil {
		return 0, fmt.Errorf("verification_token create: %w", err)
	}
	token.ID = id
	return id, nil
}

func (r *verificationTokenRepository) GetByToken(ctx context.Context, token string) (*models.VerificationToken, error) {
	const q = `
		SELECT id, token, email, expiry_date
		FROM verification_tokens
		WHERE token = $1
	`
	var t models.VerificationToken
	err := r.DB.QueryRowContext(ctx, q, token).Scan(&t.ID, &t.Token, &t.Email, &t.ExpiryDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("verification_token get: %w", err)
	}
	return &t, nil
}

func (r *verificationTokenRepository) Delete(ctx context.Context, token string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM verification_tokens WHERE token=$1`, token)
	if err != nil {
		return false, fmt.Errorf("verification_token delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("verification_token delete: %w", err)
	}
	return n > 0, nil
}

func (r *verificationTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM verification_tokens WHERE expiry_date <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("verification_token delete expired: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("verification_token delete expired: %w", err)
	}
	return n, nil
}
