package domain

import (
	"context"
	"time"
)

type ArtistType string

const (
	ArtistTypeBand ArtistType = "BAND"
	ArtistTypeSolo ArtistType = "SOLO"
)

// SimpleArtist is the minimal list-view projection.
type SimpleArtist struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Artist is the full detail-view projection.
type Artist struct {
	ID                int64      `json:"id" db:"id"`
	Name              string     `json:"name" db:"name"`
	Genre             string     `json:"genre" db:"genre"`
	ProfilePictureUrl string     `json:"profile_picture_url" db:"profile_picture_url"`
	ArtistType        ArtistType `json:"artist_type" db:"artist_type"`
	Bio               *string    `json:"bio,omitempty" db:"bio"`
	CountryOfOrigin   *string    `json:"country_of_origin,omitempty" db:"country_of_origin"`
	FormedIn          *time.Time `json:"formed_in,omitempty" db:"formed_in"`
}

// CreateArtist carries the fields accepted at insert time. ArtistType is
// free-form and normalized at the repository boundary.
type CreateArtist struct {
	Name              string
	Genre             string
	ProfilePictureUrl string
	ArtistType        string
	Bio               *string
	CountryOfOrigin   *string
	FormedIn          *time.Time
}

// UpdateArtist is a partial update: nil fields are left unchanged. The
// artist type is immutable after creation.
type UpdateArtist struct {
	ID                int64
	Name              *string
	Genre             *string
	ProfilePictureUrl *string
	Bio               *string
	CountryOfOrigin   *string
	FormedIn          *time.Time
}

type ArtistRepository interface {
	FindByID(ctx context.Context, id int64) (*Artist, error)
	ListArtists(ctx context.Context, page, limit int) ([]SimpleArtist, error)
	Create(ctx context.Context, data CreateArtist) (int64, error)
	Update(ctx context.Context, data UpdateArtist) error
	Delete(ctx context.Context, id int64, at time.Time) error
}
