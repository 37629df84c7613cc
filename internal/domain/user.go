package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type UserRole string
type AccountStatus string
type AuthProvider string

const (
	RoleListener UserRole = "LISTENER"
	RoleAdmin    UserRole = "ADMIN"
)

const (
	AccountStatusActive  AccountStatus = "ACTIVE"
	AccountStatusDeleted AccountStatus = "DELETED"
)

const (
	AuthProviderEmail  AuthProvider = "EMAIL"
	AuthProviderGitHub AuthProvider = "GITHUB"
)

// User is the full detail-view projection of an account record.
type User struct {
	ID                  uuid.UUID     `json:"id" db:"id"`
	Email               string        `json:"email" db:"email"`
	EmailVerified       bool          `json:"email_verified" db:"email_verified"`
	Role                UserRole      `json:"role" db:"role"`
	AccountStatus       AccountStatus `json:"account_status" db:"account_status"`
	AuthProvider        AuthProvider  `json:"auth_provider" db:"auth_provider"`
	Username            *string       `json:"username,omitempty" db:"username"`
	PasswordHash        *string       `json:"-" db:"password_hash"`
	GithubID            *int64        `json:"github_id,omitempty" db:"github_id"`
	GithubUsername      *string       `json:"github_username,omitempty" db:"github_username"`
	FullName            *string       `json:"full_name,omitempty" db:"full_name"`
	Country             *string       `json:"country,omitempty" db:"country"`
	Birthdate           *time.Time    `json:"birthdate,omitempty" db:"birthdate"`
	ProfilePictureUrl   *string       `json:"profile_picture_url,omitempty" db:"profile_picture_url"`
	LanguagePreference  *string       `json:"language_preference,omitempty" db:"language_preference"`
	Timezone            *string       `json:"timezone,omitempty" db:"timezone"`
	LastPasswordResetAt *time.Time    `json:"last_password_reset_at,omitempty" db:"last_password_reset_at"`
	LastLogin           *time.Time    `json:"last_login,omitempty" db:"last_login"`
	LastLoginIp         *string       `json:"last_login_ip,omitempty" db:"last_login_ip"`
	LastLoginLocation   *string       `json:"last_login_location,omitempty" db:"last_login_location"`
	CreatedAt           time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at" db:"updated_at"`
	DeletedAt           *time.Time    `json:"deleted_at,omitempty" db:"deleted_at"`
}

// CreateUser carries the fields accepted when inserting a new account.
// AuthProvider is free-form here and normalized at the repository boundary.
type CreateUser struct {
	Email          string
	AuthProvider   string
	Username       *string
	PasswordHash   *string
	GithubID       *int64
	GithubUsername *string
}

// UpdateUserInfo is a partial update: nil fields are left unchanged.
// There is no explicit-clear sentinel; clearing a stored value is not
// supported through this DTO.
type UpdateUserInfo struct {
	ID                 uuid.UUID
	FullName           *string
	Country            *string
	Birthdate          *time.Time
	ProfilePictureUrl  *string
	LanguagePreference *string
	Timezone           *string
}

// UserRepository is the data-access contract for accounts.
//
// FindByEmail and FindByUsername report absence as (nil, nil), never as an
// error; FindByID returns ErrUserNotFound when no live row matches. Every
// read excludes soft-deleted rows.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Check(ctx context.Context, id uuid.UUID) (bool, error)
	CheckByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	Create(ctx context.Context, data CreateUser) (uuid.UUID, error)
	Update(ctx context.Context, data UpdateUserInfo) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time, ip, location string) error
	Delete(ctx context.Context, id uuid.UUID, at time.Time) error
}
