package service

import (
	"context"
	"time"

	"github.com/soundwave-labs/soundwave/internal/domain"
)

type SongService interface {
	Get(ctx context.Context, id int64) (*domain.Song, error)
	ListByAlbum(ctx context.Context, albumID int64, page, limit int) ([]domain.SimpleSong, error)
	Create(ctx context.Context, data domain.CreateSong) (int64, error)
	Update(ctx context.Context, data domain.UpdateSong) error
	Delete(ctx context.Context, id int64) error
}

type songService struct {
	repo    domain.SongRepository
	artists domain.ArtistRepository
	albums  domain.AlbumRepository
	now     func() time.Time
}

// NewSongService creates the song catalog service. Parent repositories are
// needed to verify the owning artist and, when given, the album.
func NewSongService(repo domain.SongRepository, artists domain.ArtistRepository, albums domain.AlbumRepository) SongService {
	return &songService{repo: repo, artists: artists, albums: albums, now: time.Now}
}

func (s *songService) Get(ctx context.Context, id int64) (*domain.Song, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *songService) ListByAlbum(ctx context.Context, albumID int64, page, limit int) ([]domain.SimpleSong, error) {
	return s.repo.ListSongsByAlbum(ctx, albumID, page, limit)
}

// Create verifies the owning artist, and the album when one is given, before
// inserting.
func (s *songService) Create(ctx context.Context, data domain.CreateSong) (int64, error) {
	if _, err := s.artists.FindByID(ctx, data.ArtistID); err != nil {
		return 0, err
	}
	if data.AlbumID != nil {
		if _, err := s.albums.FindByID(ctx, *data.AlbumID); err != nil {
			return 0, err
		}
	}
	return s.repo.Create(ctx, data)
}

func (s *songService) Update(ctx context.Context, data domain.UpdateSong) error {
	return s.repo.Update(ctx, data)
}

func (s *songService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id, s.now())
}
