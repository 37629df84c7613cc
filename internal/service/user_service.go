package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/soundwave-labs/soundwave/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUserReq carries an email/password registration. The raw password
// is hashed here, before anything touches the repository.
type RegisterUserReq struct {
	Email    string
	Username string
	Password string
}

// RegisterGitHubUserReq carries a registration for an already-resolved
// GitHub identity. Token exchange happens upstream and is out of scope.
type RegisterGitHubUserReq struct {
	Email          string
	GithubID       int64
	GithubUsername string
}

type UserService interface {
	Register(ctx context.Context, req RegisterUserReq) (uuid.UUID, error)
	RegisterGitHub(ctx context.Context, req RegisterGitHubUserReq) (uuid.UUID, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateInfo(ctx context.Context, data domain.UpdateUserInfo) error
	RecordLogin(ctx context.Context, id uuid.UUID, ip, location string) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	repo domain.UserRepository
	now  func() time.Time
}

// NewUserService creates the account service on top of the user repository.
func NewUserService(repo domain.UserRepository) UserService {
	return &userService{repo: repo, now: time.Now}
}

// Register creates an email/password account. Uniqueness is pre-checked
// against email and username; the schema's unique constraints close the
// race window a concurrent create could slip through, so Create may still
// report domain.ErrUserAlreadyExists.
func (s *userService) Register(ctx context.Context, req RegisterUserReq) (uuid.UUID, error) {
	taken, err := s.repo.CheckByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		return uuid.Nil, err
	}
	if taken {
		return uuid.Nil, domain.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}
	hash := string(hashed)

	return s.repo.Create(ctx, domain.CreateUser{
		Email:        req.Email,
		AuthProvider: string(domain.AuthProviderEmail),
		Username:     &req.Username,
		PasswordHash: &hash,
	})
}

// RegisterGitHub creates an account for a GitHub identity. No password is
// stored; the provider label rides through repository normalization.
func (s *userService) RegisterGitHub(ctx context.Context, req RegisterGitHubUserReq) (uuid.UUID, error) {
	taken, err := s.repo.CheckByEmailOrUsername(ctx, req.Email, req.GithubUsername)
	if err != nil {
		return uuid.Nil, err
	}
	if taken {
		return uuid.Nil, domain.ErrUserAlreadyExists
	}

	return s.repo.Create(ctx, domain.CreateUser{
		Email:          req.Email,
		AuthProvider:   string(domain.AuthProviderGitHub),
		GithubID:       &req.GithubID,
		GithubUsername: &req.GithubUsername,
	})
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) UpdateInfo(ctx context.Context, data domain.UpdateUserInfo) error {
	return s.repo.Update(ctx, data)
}

// RecordLogin stamps the login audit triple with the current time.
func (s *userService) RecordLogin(ctx context.Context, id uuid.UUID, ip, location string) error {
	return s.repo.UpdateLastLogin(ctx, id, s.now(), ip, location)
}

// Deactivate soft-deletes the account as of now.
func (s *userService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, s.now())
}
