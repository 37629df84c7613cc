package service

import (
	"context"
	"time"

	"github.com/soundwave-labs/soundwave/internal/domain"
)

type ArtistService interface {
	Get(ctx context.Context, id int64) (*domain.Artist, error)
	List(ctx context.Context, page, limit int) ([]domain.SimpleArtist, error)
	Create(ctx context.Context, data domain.CreateArtist) (int64, error)
	Update(ctx context.Context, data domain.UpdateArtist) error
	Delete(ctx context.Context, id int64) error
}

type artistService struct {
	repo domain.ArtistRepository
	now  func() time.Time
}

// NewArtistService creates the artist catalog service.
func NewArtistService(repo domain.ArtistRepository) ArtistService {
	return &artistService{repo: repo, now: time.Now}
}

func (s *artistService) Get(ctx context.Context, id int64) (*domain.Artist, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *artistService) List(ctx context.Context, page, limit int) ([]domain.SimpleArtist, error) {
	return s.repo.ListArtists(ctx, page, limit)
}

func (s *artistService) Create(ctx context.Context, data domain.CreateArtist) (int64, error) {
	return s.repo.Create(ctx, data)
}

func (s *artistService) Update(ctx context.Context, data domain.UpdateArtist) error {
	return s.repo.Update(ctx, data)
}

func (s *artistService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id, s.now())
}
