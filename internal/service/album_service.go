package service

import (
	"context"
	"time"

	"github.com/soundwave-labs/soundwave/internal/domain"
)

type AlbumService interface {
	Get(ctx context.Context, id int64) (*domain.Album, error)
	ListByArtist(ctx context.Context, artistID int64, page, limit int) ([]domain.SimpleAlbum, error)
	Create(ctx context.Context, data domain.CreateAlbum) (int64, error)
	Update(ctx context.Context, data domain.UpdateAlbum) error
	Delete(ctx context.Context, id int64) error
}

type albumService struct {
	repo    domain.AlbumRepository
	artists domain.ArtistRepository
	now     func() time.Time
}

// NewAlbumService creates the album catalog service. It needs the artist
// repository to verify the parent before a create.
func NewAlbumService(repo domain.AlbumRepository, artists domain.ArtistRepository) AlbumService {
	return &albumService{repo: repo, artists: artists, now: time.Now}
}

func (s *albumService) Get(ctx context.Context, id int64) (*domain.Album, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *albumService) ListByArtist(ctx context.Context, artistID int64, page, limit int) ([]domain.SimpleAlbum, error) {
	return s.repo.ListAlbumsByArtist(ctx, artistID, page, limit)
}

// Create verifies the owning artist is live before inserting, so a dangling
// artist id surfaces as domain.ErrArtistNotFound rather than a foreign key
// violation.
func (s *albumService) Create(ctx context.Context, data domain.CreateAlbum) (int64, error) {
	if _, err := s.artists.FindByID(ctx, data.ArtistID); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, data)
}

func (s *albumService) Update(ctx context.Context, data domain.UpdateAlbum) error {
	return s.repo.Update(ctx, data)
}

// Delete soft-deletes the album only. Its songs stay live; cascading is a
// higher-level workflow decision.
func (s *albumService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id, s.now())
}
