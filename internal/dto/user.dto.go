package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/soundwave-labs/soundwave/internal/domain"
	"github.com/soundwave-labs/soundwave/internal/utils"
)

// Field limits mirror the column sizes in the users table.
const (
	maxEmailLen    = 50
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 10
	maxPasswordLen = 100
	maxFullNameLen = 50
	maxCountryLen  = 20
	maxLanguageLen = 2
	maxTimezoneLen = 20
)

// RegisterUserRequest represents the request body for email/password signup
type RegisterUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterUserRequest) Validate() error {
	if r.Email == "" || len(r.Email) > maxEmailLen || !utils.IsValidEmail(r.Email) {
		return errors.New("invalid email")
	}
	if len(r.Username) < minUsernameLen || len(r.Username) > maxUsernameLen {
		return errors.New("username must be between 3 and 50 characters")
	}
	if len(r.Password) < minPasswordLen || len(r.Password) > maxPasswordLen {
		return errors.New("password must be between 10 and 100 characters")
	}
	return nil
}

// RegisterGitHubUserRequest represents a signup for a resolved GitHub identity
type RegisterGitHubUserRequest struct {
	Email          string `json:"email"`
	GithubID       int64  `json:"github_id"`
	GithubUsername string `json:"github_username"`
}

func (r RegisterGitHubUserRequest) Validate() error {
	if r.Email == "" || len(r.Email) > maxEmailLen || !utils.IsValidEmail(r.Email) {
		return errors.New("invalid email")
	}
	if r.GithubID <= 0 {
		return errors.New("github_id is required")
	}
	if r.GithubUsername == "" {
		return errors.New("github_username is required")
	}
	return nil
}

// UpdateUserRequest represents the request body for updating profile info.
// Absent fields are left unchanged.
type UpdateUserRequest struct {
	FullName           *string    `json:"full_name,omitempty"`
	Country            *string    `json:"country,omitempty"`
	Birthdate          *time.Time `json:"birthdate,omitempty"`
	ProfilePictureUrl  *string    `json:"profile_picture_url,omitempty"`
	LanguagePreference *string    `json:"language_preference,omitempty"`
	Timezone           *string    `json:"timezone,omitempty"`
}

func (r UpdateUserRequest) Validate() error {
	if r.FullName != nil && len(*r.FullName) > maxFullNameLen {
		return errors.New("full_name must be at most 50 characters")
	}
	if r.Country != nil && len(*r.Country) > maxCountryLen {
		return errors.New("country must be at most 20 characters")
	}
	if r.LanguagePreference != nil && len(*r.LanguagePreference) > maxLanguageLen {
		return errors.New("language_preference must be at most 2 characters")
	}
	if r.Timezone != nil && len(*r.Timezone) > maxTimezoneLen {
		return errors.New("timezone must be at most 20 characters")
	}
	return nil
}

func (r UpdateUserRequest) ToDomain(id uuid.UUID) domain.UpdateUserInfo {
	return domain.UpdateUserInfo{
		ID:                 id,
		FullName:           r.FullName,
		Country:            r.Country,
		Birthdate:          r.Birthdate,
		ProfilePictureUrl:  r.ProfilePictureUrl,
		LanguagePreference: r.LanguagePreference,
		Timezone:           r.Timezone,
	}
}

// RecordLoginRequest represents the request body for stamping a login event
type RecordLoginRequest struct {
	Ip       string `json:"ip"`
	Location string `json:"location"`
}

// UserResponse is the public projection of an account. The password hash
// never leaves the service.
type UserResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Email              string     `json:"email"`
	EmailVerified      bool       `json:"email_verified"`
	Role               string     `json:"role"`
	AccountStatus      string     `json:"account_status"`
	AuthProvider       string     `json:"auth_provider"`
	Username           *string    `json:"username,omitempty"`
	GithubUsername     *string    `json:"github_username,omitempty"`
	FullName           *string    `json:"full_name,omitempty"`
	Country            *string    `json:"country,omitempty"`
	Birthdate          *time.Time `json:"birthdate,omitempty"`
	ProfilePictureUrl  *string    `json:"profile_picture_url,omitempty"`
	LanguagePreference *string    `json:"language_preference,omitempty"`
	Timezone           *string    `json:"timezone,omitempty"`
	LastLogin          *time.Time `json:"last_login,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func ToUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		EmailVerified:      u.EmailVerified,
		Role:               string(u.Role),
		AccountStatus:      string(u.AccountStatus),
		AuthProvider:       string(u.AuthProvider),
		Username:           u.Username,
		GithubUsername:     u.GithubUsername,
		FullName:           u.FullName,
		Country:            u.Country,
		Birthdate:          u.Birthdate,
		ProfilePictureUrl:  u.ProfilePictureUrl,
		LanguagePreference: u.LanguagePreference,
		Timezone:           u.Timezone,
		LastLogin:          u.LastLogin,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
