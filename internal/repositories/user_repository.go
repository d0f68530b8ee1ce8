package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ecomauth/internal/models"
)

// ErrEmailTaken is returned by Create when the email already has a row.
var ErrEmailTaken = errors.New("email already taken")

type UserRepository interface {
	// Create inserts the user atomically; a duplicate email yields
	// ErrEmailTaken without touching the existing row. Relies on the
	// unique index on users.email.
	Create(ctx context.Context, user *models.User) error
	// GetByEmail returns (nil, nil) when no user exists with that email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// Enable flips the enabled flag for the given email.
	Enable(ctx context.Context, email string) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	const q = `
		INSERT INTO users (email, name, phone, address, avatar, password_hash, role, enabled)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (email) DO NOTHING
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, q,
		user.Email,
		user.Name,
		user.Phone,
		user.Address,
		user.Avatar,
		user.PasswordHash,
		user.Role,
		user.Enabled,
	).Scan(&user.ID)
	if errors.Is(err, sql.ErrNoRows) {
		// the conflict branch inserts nothing, so no row comes back
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("user create: %w", err)
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const q = `
		SELECT id, email, name, phone, address, avatar, password_hash, role, enabled
		FROM users
		WHERE email = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, q, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const q = `
		SELECT id, email, name, phone, address, avatar, password_hash, role, enabled
		FROM users
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, q, id))
}

func (r *userRepository) scanOne(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var (
		name    sql.NullString
		phone   sql.NullString
		address sql.NullString
		avatar  sql.NullString
		role    sql.NullString
	)
	err := row.Scan(&u.ID, &u.Email, &name, &phone, &address, &avatar, &u.PasswordHash, &role, &u.Enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user scan: %w", err)
	}
	if name.Valid {
		u.Name = name.String
	}
	if phone.Valid {
		u.Phone = phone.String
	}
	if address.Valid {
		u.Address = address.String
	}
	if avatar.Valid {
		u.Avatar = avatar.String
	}
	if role.Valid {
		u.Role = role.String
	}
	return u, nil
}

func (r *userRepository) Enable(ctx context.Context, email string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users
		SET enabled=TRUE
		WHERE email=$1
	`, email)
	if err != nil {
		return fmt.Errorf("user enable: %w", err)
	}
	return nil
}
