package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/soundwave-labs/soundwave/internal/domain"
)

type pgUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates and returns a new PostgreSQL-based user
// repository implementing domain.UserRepository. It holds a reference to
// the process-wide connection handle, never its own.
func NewUserRepository(db *sqlx.DB) domain.UserRepository {
	return &pgUserRepository{db: db}
}

// FindByID retrieves a live (non-soft-deleted) user by id. Returns
// domain.ErrUserNotFound when no such row exists.
func (r *pgUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT * FROM users WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, user, query, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindByEmail is a lookup helper: absence is reported as (nil, nil), not as
// an error.
func (r *pgUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT * FROM users WHERE email = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, user, query, email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindByUsername is a lookup helper: absence is reported as (nil, nil).
func (r *pgUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	user := &domain.User{}
	query := `SELECT * FROM users WHERE username = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, user, query, username)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Check reports whether a live row with the given id exists.
func (r *pgUserRepository) Check(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1 AND deleted_at IS NULL)`
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}

// CheckByEmailOrUsername reports whether any live row matches either field.
// Callers use it to enforce uniqueness before Create; the schema's unique
// constraints back it against concurrent creates.
func (r *pgUserRepository) CheckByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE (email = $1 OR username = $2) AND deleted_at IS NULL)`
	err := r.db.GetContext(ctx, &exists, query, email, username)
	return exists, err
}

// Create inserts a new account and returns the generated id. The auth
// provider label is normalized, falling back to EMAIL when unrecognized.
// A unique-constraint violation surfaces as domain.ErrUserAlreadyExists.
func (r *pgUserRepository) Create(ctx context.Context, data domain.CreateUser) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()

	query := `INSERT INTO users (
			id, email, auth_provider, username, password_hash, github_id, github_username,
			role, account_status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		id, data.Email, domain.NormalizeAuthProvider(data.AuthProvider),
		data.Username, data.PasswordHash, data.GithubID, data.GithubUsername,
		domain.RoleListener, domain.AccountStatusActive, now, now,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // Unique violation
				return uuid.Nil, domain.ErrUserAlreadyExists
			}
		}
		return uuid.Nil, err
	}
	return id, nil
}

// Update applies the non-nil fields of the DTO and stamps updated_at.
// Returns domain.ErrUserNotFound when the id does not resolve to a live row.
func (r *pgUserRepository) Update(ctx context.Context, data domain.UpdateUserInfo) error {
	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	addClause := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if data.FullName != nil {
		addClause("full_name", data.FullName)
	}
	if data.Country != nil {
		addClause("country", data.Country)
	}
	if data.Birthdate != nil {
		addClause("birthdate", data.Birthdate)
	}
	if data.ProfilePictureUrl != nil {
		addClause("profile_picture_url", data.ProfilePictureUrl)
	}
	if data.LanguagePreference != nil {
		addClause("language_preference", data.LanguagePreference)
	}
	if data.Timezone != nil {
		addClause("timezone", data.Timezone)
	}

	// Always stamp updated_at, even for an otherwise empty update.
	addClause("updated_at", time.Now())

	args = append(args, data.ID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d AND deleted_at IS NULL",
		strings.Join(setClauses, ", "),
		argIndex)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrUserNotFound)
}

// UpdateLastLogin overwrites the full login-audit triple in one statement.
func (r *pgUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time, ip, location string) error {
	query := `UPDATE users SET last_login = $1, last_login_ip = $2, last_login_location = $3 WHERE id = $4 AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, at, ip, location, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrUserNotFound)
}

// Delete soft-deletes the account: the row is kept, the account status is
// stamped DELETED and deleted_at records when. Already-deleted ids report
// domain.ErrUserNotFound.
func (r *pgUserRepository) Delete(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE users SET account_status = $1, deleted_at = $2 WHERE id = $3 AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, domain.AccountStatusDeleted, at, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrUserNotFound)
}

// requireRow translates a zero-row UPDATE into the entity's NotFound error.
func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
