package dto

import (
	"errors"
	"time"

	"github.com/soundwave-labs/soundwave/internal/domain"
)

// CreateArtistRequest represents the request body for registering an artist.
// ArtistType accepts any string; unknown values fall back to BAND.
type CreateArtistRequest struct {
	Name              string     `json:"name"`
	Genre             string     `json:"genre"`
	ProfilePictureUrl string     `json:"profile_picture_url"`
	ArtistType        string     `json:"artist_type"`
	Bio               *string    `json:"bio,omitempty"`
	CountryOfOrigin   *string    `json:"country_of_origin,omitempty"`
	FormedIn          *time.Time `json:"formed_in,omitempty"`
}

func (r CreateArtistRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func (r CreateArtistRequest) ToDomain() domain.CreateArtist {
	return domain.CreateArtist{
		Name:              r.Name,
		Genre:             r.Genre,
		ProfilePictureUrl: r.ProfilePictureUrl,
		ArtistType:        r.ArtistType,
		Bio:               r.Bio,
		CountryOfOrigin:   r.CountryOfOrigin,
		FormedIn:          r.FormedIn,
	}
}

// UpdateArtistRequest is a partial update; the artist type is immutable.
type UpdateArtistRequest struct {
	Name              *string    `json:"name,omitempty"`
	Genre             *string    `json:"genre,omitempty"`
	ProfilePictureUrl *string    `json:"profile_picture_url,omitempty"`
	Bio               *string    `json:"bio,omitempty"`
	CountryOfOrigin   *string    `json:"country_of_origin,omitempty"`
	FormedIn          *time.Time `json:"formed_in,omitempty"`
}

func (r UpdateArtistRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return errors.New("name cannot be empty")
	}
	return nil
}

func (r UpdateArtistRequest) ToDomain(id int64) domain.UpdateArtist {
	return domain.UpdateArtist{
		ID:                id,
		Name:              r.Name,
		Genre:             r.Genre,
		ProfilePictureUrl: r.ProfilePictureUrl,
		Bio:               r.Bio,
		CountryOfOrigin:   r.CountryOfOrigin,
		FormedIn:          r.FormedIn,
	}
}

// CreateAlbumRequest represents the request body for adding an album.
// AlbumType accepts any string; unknown values fall back to STUDIO.
type CreateAlbumRequest struct {
	ArtistID      int64     `json:"artist_id"`
	Title         string    `json:"title"`
	ReleaseDate   time.Time `json:"release_date"`
	CoverImageUrl string    `json:"cover_image_url"`
	AlbumType     string    `json:"album_type"`
	Label         *string   `json:"label,omitempty"`
}

func (r CreateAlbumRequest) Validate() error {
	if r.ArtistID <= 0 {
		return errors.New("artist_id is required")
	}
	if r.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

func (r CreateAlbumRequest) ToDomain() domain.CreateAlbum {
	return domain.CreateAlbum{
		ArtistID:      r.ArtistID,
		Title:         r.Title,
		ReleaseDate:   r.ReleaseDate,
		CoverImageUrl: r.CoverImageUrl,
		AlbumType:     r.AlbumType,
		Label:         r.Label,
	}
}

// UpdateAlbumRequest is a partial update; the album type and the aggregate
// counters are not writable.
type UpdateAlbumRequest struct {
	Title         *string    `json:"title,omitempty"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	CoverImageUrl *string    `json:"cover_image_url,omitempty"`
	Label         *string    `json:"label,omitempty"`
}

func (r UpdateAlbumRequest) Validate() error {
	if r.Title != nil && *r.Title == "" {
		return errors.New("title cannot be empty")
	}
	return nil
}

func (r UpdateAlbumRequest) ToDomain(id int64) domain.UpdateAlbum {
	return domain.UpdateAlbum{
		ID:            id,
		Title:         r.Title,
		ReleaseDate:   r.ReleaseDate,
		CoverImageUrl: r.CoverImageUrl,
		Label:         r.Label,
	}
}

// CreateSongRequest represents the request body for adding a song. AlbumID
// is optional; a song without one is a single.
type CreateSongRequest struct {
	ArtistID      int64      `json:"artist_id"`
	AlbumID       *int64     `json:"album_id,omitempty"`
	Title         string     `json:"title"`
	Duration      int        `json:"duration"`
	FileUrl       string     `json:"file_url"`
	ReleaseDate   time.Time  `json:"release_date"`
	Genre         string     `json:"genre"`
	Language      string     `json:"language"`
	Bitrate       *int       `json:"bitrate,omitempty"`
	Label         *string    `json:"label,omitempty"`
	Lyrics        *string    `json:"lyrics,omitempty"`
	DownloadUrl   *string    `json:"download_url,omitempty"`
	TrackNumber   *int       `json:"track_number,omitempty"`
	CoverImageUrl *string    `json:"cover_image_url,omitempty"`
}

func (r CreateSongRequest) Validate() error {
	if r.ArtistID <= 0 {
		return errors.New("artist_id is required")
	}
	if r.Title == "" {
		return errors.New("title is required")
	}
	if r.Duration < 0 {
		return errors.New("duration cannot be negative")
	}
	return nil
}

func (r CreateSongRequest) ToDomain() domain.CreateSong {
	return domain.CreateSong{
		ArtistID:      r.ArtistID,
		AlbumID:       r.AlbumID,
		Title:         r.Title,
		Duration:      r.Duration,
		FileUrl:       r.FileUrl,
		ReleaseDate:   r.ReleaseDate,
		Genre:         r.Genre,
		Language:      r.Language,
		Bitrate:       r.Bitrate,
		Label:         r.Label,
		Lyrics:        r.Lyrics,
		DownloadUrl:   r.DownloadUrl,
		TrackNumber:   r.TrackNumber,
		CoverImageUrl: r.CoverImageUrl,
	}
}

// UpdateSongRequest is a partial update; stream_count and the parent ids
// are not writable.
type UpdateSongRequest struct {
	Title         *string    `json:"title,omitempty"`
	Duration      *int       `json:"duration,omitempty"`
	FileUrl       *string    `json:"file_url,omitempty"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	Genre         *string    `json:"genre,omitempty"`
	Language      *string    `json:"language,omitempty"`
	Bitrate       *int       `json:"bitrate,omitempty"`
	Label         *string    `json:"label,omitempty"`
	Lyrics        *string    `json:"lyrics,omitempty"`
	DownloadUrl   *string    `json:"download_url,omitempty"`
	TrackNumber   *int       `json:"track_number,omitempty"`
	CoverImageUrl *string    `json:"cover_image_url,omitempty"`
}

func (r UpdateSongRequest) Validate() error {
	if r.Title != nil && *r.Title == "" {
		return errors.New("title cannot be empty")
	}
	if r.Duration != nil && *r.Duration < 0 {
		return errors.New("duration cannot be negative")
	}
	return nil
}

func (r UpdateSongRequest) ToDomain(id int64) domain.UpdateSong {
	return domain.UpdateSong{
		ID:            id,
		Title:         r.Title,
		Duration:      r.Duration,
		FileUrl:       r.FileUrl,
		ReleaseDate:   r.ReleaseDate,
		Genre:         r.Genre,
		Language:      r.Language,
		Bitrate:       r.Bitrate,
		Label:         r.Label,
		Lyrics:        r.Lyrics,
		DownloadUrl:   r.DownloadUrl,
		TrackNumber:   r.TrackNumber,
		CoverImageUrl: r.CoverImageUrl,
	}
}
