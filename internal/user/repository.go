package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/allandeluna/brainstash/internal/platform/db"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("user repository: user not found")
	ErrDuplicateEmail = errors.New("user repository: email already taken")
	ErrQueryFailed    = errors.New("user repository: query failed")
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

type Repository struct {
	db db.Executor
}

func NewRepository(executor db.Executor) *Repository {
	return &Repository{db: executor}
}

const userColumns = `id, email, name, password_hash, is_verified, last_login,
verified_token, verified_token_expires, reset_token, reset_token_expires,
created_at, updated_at`

func scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.IsVerified, &u.LastLogin,
		&u.VerifiedToken, &u.VerifiedTokenExpires, &u.ResetToken, &u.ResetTokenExpires,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

type CreateUserParams struct {
	Email                string
	Name                 string
	PasswordHash         string
	VerifiedToken        string
	VerifiedTokenExpires time.Time
}

const queryUserCreate = `
INSERT INTO users (id, email, name, password_hash, verified_token, verified_token_expires)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns

// Create inserts a new user with a pending verification pair. The email
// must already be normalized to lowercase. A concurrent signup losing
// the race on the unique email constraint gets ErrDuplicateEmail.
func (r *Repository) Create(ctx context.Context, params CreateUserParams) (User, error) {
	row := r.db.QueryRowContext(ctx, queryUserCreate,
		uuid.NewString(), params.Email, params.Name, params.PasswordHash,
		params.VerifiedToken, params.VerifiedTokenExpires)

	u, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return u, ErrDuplicateEmail
		}
		return u, fmt.Errorf("%w: create user with email %s: %v", ErrQueryFailed, params.Email, err)
	}
	return u, nil
}

const queryUserFindByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`

func (r *Repository) FindByEmail(ctx context.Context, email string) (User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, queryUserFindByEmail, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, ErrNotFound
		}
		return u, fmt.Errorf("%w: find user with email %s: %v", ErrQueryFailed, email, err)
	}
	return u, nil
}

const queryUserFind = `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`

func (r *Repository) Find(ctx context.Context, userID string) (User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, queryUserFind, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, ErrNotFound
		}
		return u, fmt.Errorf("%w: find user with id %s: %v", ErrQueryFailed, userID, err)
	}
	return u, nil
}

const queryUserRecordLogin = `
UPDATE users SET last_login = NOW(), updated_at = NOW()
WHERE id = $1
RETURNING ` + userColumns

func (r *Repository) RecordLogin(ctx context.Context, userID string) (User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, queryUserRecordLogin, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, ErrNotFound
		}
		return u, fmt.Errorf("%w: record login for user %s: %v", ErrQueryFailed, userID, err)
	}
	return u, nil
}

const queryUserVerifyByToken = `
UPDATE users SET is_verified = TRUE, verified_token = NULL, verified_token_expires = NULL, updated_at = NOW()
WHERE verified_token = $1 AND verified_token_expires > NOW()
RETURNING ` + userColumns

// VerifyByToken consumes a pending verification token in one statement:
// token equality and expiry are checked together, so a wrong code and an
// expired one are indistinguishable to the caller.
func (r *Repository) VerifyByToken(ctx context.Context, token string) (User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, queryUserVerifyByToken, token))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, ErrNotFound
		}
		return u, fmt.Errorf("%w: verify user by token: %v", ErrQueryFailed, err)
	}
	return u, nil
}

const queryUserSetResetToken = `
UPDATE users SET reset_token = $2, reset_token_expires = $3, updated_at = NOW()
WHERE email = $1
RETURNING ` + userColumns

// SetResetToken attaches a fresh reset pair to the user, replacing any
// previous pending one.
func (r *Repository) SetResetToken(ctx context.Context, email, token string, expires time.Time) (User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, queryUserSetResetToken, email, token, expires))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, ErrNotFound
		}
		return u, fmt.Errorf("%w: set reset token for email %s: %v", ErrQueryFailed, email, err)
	}
	return u, nil
}

const queryUserResetPassword = `
UPDATE users SET password_hash = $2, reset_token = NULL, reset_token_expires = NULL, updated_at = NOW()
WHERE reset_token = $1 AND reset_token_expires > NOW()
RETURNING ` + userColumns

// ResetPasswordByToken consumes a pending reset token and replaces the
// password hash in the same statement.
func (r *Repository) ResetPasswordByToken(ctx context.Context, token, passwordHash string) (User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, queryUserResetPassword, token, passwordHash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, ErrNotFound
		}
		return u, fmt.Errorf("%w: reset password by token: %v", ErrQueryFailed, err)
	}
	return u, nil
}
