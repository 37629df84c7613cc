package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/soundwave-labs/soundwave/internal/domain"
)

type pgArtistRepository struct {
	db *sqlx.DB
}

// NewArtistRepository creates a new PostgreSQL-based artist repository.
func NewArtistRepository(db *sqlx.DB) domain.ArtistRepository {
	return &pgArtistRepository{db: db}
}

// FindByID retrieves a live artist by id, or domain.ErrArtistNotFound.
func (r *pgArtistRepository) FindByID(ctx context.Context, id int64) (*domain.Artist, error) {
	artist := &domain.Artist{}
	query := `SELECT id, name, genre, profile_picture_url, artist_type, bio, country_of_origin, formed_in
		FROM artists WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, artist, query, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrArtistNotFound
	}
	if err != nil {
		return nil, err
	}
	return artist, nil
}

// ListArtists returns a page of live artists ordered by name. Pagination is
// 1-indexed with the shared defaults.
func (r *pgArtistRepository) ListArtists(ctx context.Context, page, limit int) ([]domain.SimpleArtist, error) {
	limit, offset := paginate(page, limit)

	artists := []domain.SimpleArtist{}
	query := `SELECT id, name FROM artists WHERE deleted_at IS NULL ORDER BY name ASC LIMIT $1 OFFSET $2`

	if err := r.db.SelectContext(ctx, &artists, query, limit, offset); err != nil {
		return nil, err
	}
	return artists, nil
}

// Create inserts a new artist and returns the generated id. The artist type
// label is normalized, falling back to BAND when unrecognized.
func (r *pgArtistRepository) Create(ctx context.Context, data domain.CreateArtist) (int64, error) {
	var id int64
	query := `INSERT INTO artists (name, genre, profile_picture_url, artist_type, bio, country_of_origin, formed_in)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	err := r.db.GetContext(ctx, &id, query,
		data.Name, data.Genre, data.ProfilePictureUrl, domain.NormalizeArtistType(data.ArtistType),
		data.Bio, data.CountryOfOrigin, data.FormedIn,
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update applies the non-nil fields of the DTO. Returns
// domain.ErrArtistNotFound when the id does not resolve to a live row.
func (r *pgArtistRepository) Update(ctx context.Context, data domain.UpdateArtist) error {
	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	addClause := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if data.Name != nil {
		addClause("name", data.Name)
	}
	if data.Genre != nil {
		addClause("genre", data.Genre)
	}
	if data.ProfilePictureUrl != nil {
		addClause("profile_picture_url", data.ProfilePictureUrl)
	}
	if data.Bio != nil {
		addClause("bio", data.Bio)
	}
	if data.CountryOfOrigin != nil {
		addClause("country_of_origin", data.CountryOfOrigin)
	}
	if data.FormedIn != nil {
		addClause("formed_in", data.FormedIn)
	}

	addClause("updated_at", time.Now())

	args = append(args, data.ID)
	query := fmt.Sprintf("UPDATE artists SET %s WHERE id = $%d AND deleted_at IS NULL",
		strings.Join(setClauses, ", "),
		argIndex)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrArtistNotFound)
}

// Delete soft-deletes the artist by stamping deleted_at. It never cascades
// to the artist's albums or songs.
func (r *pgArtistRepository) Delete(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE artists SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrArtistNotFound)
}
