package domain

import (
	"context"
	"time"
)

// SimpleSong is the minimal list-view projection.
type SimpleSong struct {
	ID       int64  `json:"id" db:"id"`
	ArtistID int64  `json:"artist_id" db:"artist_id"`
	AlbumID  *int64 `json:"album_id,omitempty" db:"album_id"`
	Title    string `json:"title" db:"title"`
}

// Song is the full detail-view projection. A song always belongs to an
// artist; album membership is optional (singles).
type Song struct {
	ID            int64      `json:"id" db:"id"`
	ArtistID      int64      `json:"artist_id" db:"artist_id"`
	AlbumID       *int64     `json:"album_id,omitempty" db:"album_id"`
	Title         string     `json:"title" db:"title"`
	Duration      int        `json:"duration" db:"duration"`
	FileUrl       string     `json:"file_url" db:"file_url"`
	ReleaseDate   time.Time  `json:"release_date" db:"release_date"`
	Genre         string     `json:"genre" db:"genre"`
	Language      string     `json:"language" db:"language"`
	StreamCount   int64      `json:"stream_count" db:"stream_count"`
	Bitrate       *int       `json:"bitrate,omitempty" db:"bitrate"`
	Label         *string    `json:"label,omitempty" db:"label"`
	Lyrics        *string    `json:"lyrics,omitempty" db:"lyrics"`
	DownloadUrl   *string    `json:"download_url,omitempty" db:"download_url"`
	TrackNumber   *int       `json:"track_number,omitempty" db:"track_number"`
	CoverImageUrl *string    `json:"cover_image_url,omitempty" db:"cover_image_url"`
}

type CreateSong struct {
	ArtistID      int64
	AlbumID       *int64
	Title         string
	Duration      int
	FileUrl       string
	ReleaseDate   time.Time
	Genre         string
	Language      string
	Bitrate       *int
	Label         *string
	Lyrics        *string
	DownloadUrl   *string
	TrackNumber   *int
	CoverImageUrl *string
}

// UpdateSong is a partial update: nil fields are left unchanged.
type UpdateSong struct {
	ID            int64
	Title         *string
	Duration      *int
	FileUrl       *string
	ReleaseDate   *time.Time
	Genre         *string
	Language      *string
	Bitrate       *int
	Label         *string
	Lyrics        *string
	DownloadUrl   *string
	TrackNumber   *int
	CoverImageUrl *string
}

type SongRepository interface {
	FindByID(ctx context.Context, id int64) (*Song, error)
	ListSongsByAlbum(ctx context.Context, albumID int64, page, limit int) ([]SimpleSong, error)
	Create(ctx context.Context, data CreateSong) (int64, error)
	Update(ctx context.Context, data UpdateSong) error
	Delete(ctx context.Context, id int64, at time.Time) error
}
