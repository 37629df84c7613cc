package domain

import (
	"context"
	"time"
)

type AlbumType string

const (
	AlbumTypeStudio AlbumType = "STUDIO"
	AlbumTypeLive   AlbumType = "LIVE"
)

// SimpleAlbum is the minimal list-view projection.
type SimpleAlbum struct {
	ID       int64  `json:"id" db:"id"`
	ArtistID int64  `json:"artist_id" db:"artist_id"`
	Title    string `json:"title" db:"title"`
}

// Album is the full detail-view projection. TotalTracks and TotalDuration
// are denormalized aggregates maintained by song mutations; this layer only
// guarantees they start at zero.
type Album struct {
	ID            int64     `json:"id" db:"id"`
	ArtistID      int64     `json:"artist_id" db:"artist_id"`
	Title         string    `json:"title" db:"title"`
	ReleaseDate   time.Time `json:"release_date" db:"release_date"`
	CoverImageUrl string    `json:"cover_image_url" db:"cover_image_url"`
	TotalTracks   int       `json:"total_tracks" db:"total_tracks"`
	TotalDuration int       `json:"total_duration" db:"total_duration"`
	AlbumType     AlbumType `json:"album_type" db:"album_type"`
	Label         *string   `json:"label,omitempty" db:"label"`
}

type CreateAlbum struct {
	ArtistID      int64
	Title         string
	ReleaseDate   time.Time
	CoverImageUrl string
	AlbumType     string
	Label         *string
}

// UpdateAlbum is a partial update: nil fields are left unchanged. The
// aggregate counters and album type are not writable through this DTO.
type UpdateAlbum struct {
	ID            int64
	Title         *string
	ReleaseDate   *time.Time
	CoverImageUrl *string
	Label         *string
}

type AlbumRepository interface {
	FindByID(ctx context.Context, id int64) (*Album, error)
	ListAlbumsByArtist(ctx context.Context, artistID int64, page, limit int) ([]SimpleAlbum, error)
	Create(ctx context.Context, data CreateAlbum) (int64, error)
	Update(ctx context.Context, data UpdateAlbum) error
	Delete(ctx context.Context, id int64, at time.Time) error
}
