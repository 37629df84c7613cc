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

type pgAlbumRepository struct {
	db *sqlx.DB
}

// NewAlbumRepository creates a new PostgreSQL-based album repository.
func NewAlbumRepository(db *sqlx.DB) domain.AlbumRepository {
	return &pgAlbumRepository{db: db}
}

// FindByID retrieves a live album by id, or domain.ErrAlbumNotFound.
func (r *pgAlbumRepository) FindByID(ctx context.Context, id int64) (*domain.Album, error) {
	album := &domain.Album{}
	query := `SELECT id, artist_id, title, release_date, cover_image_url, total_tracks, total_duration, album_type, label
		FROM albums WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, album, query, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrAlbumNotFound
	}
	if err != nil {
		return nil, err
	}
	return album, nil
}

// ListAlbumsByArtist returns a page of the artist's live albums ordered by
// release date.
func (r *pgAlbumRepository) ListAlbumsByArtist(ctx context.Context, artistID int64, page, limit int) ([]domain.SimpleAlbum, error) {
	limit, offset := paginate(page, limit)

	albums := []domain.SimpleAlbum{}
	query := `SELECT id, artist_id, title FROM albums
		WHERE artist_id = $1 AND deleted_at IS NULL
		ORDER BY release_date ASC LIMIT $2 OFFSET $3`

	if err := r.db.SelectContext(ctx, &albums, query, artistID, limit, offset); err != nil {
		return nil, err
	}
	return albums, nil
}

// Create inserts a new album and returns the generated id. The album type
// label is normalized, falling back to STUDIO. The denormalized aggregates
// total_tracks and total_duration always start at zero regardless of input;
// song mutations maintain them afterwards.
func (r *pgAlbumRepository) Create(ctx context.Context, data domain.CreateAlbum) (int64, error) {
	var id int64
	query := `INSERT INTO albums (artist_id, title, release_date, cover_image_url, album_type, label, total_tracks, total_duration)
		VALUES ($1, $2, $3, $4, $5, $6, 0, 0) RETURNING id`

	err := r.db.GetContext(ctx, &id, query,
		data.ArtistID, data.Title, data.ReleaseDate, data.CoverImageUrl,
		domain.NormalizeAlbumType(data.AlbumType), data.Label,
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update applies the non-nil fields of the DTO. Returns
// domain.ErrAlbumNotFound when the id does not resolve to a live row.
func (r *pgAlbumRepository) Update(ctx context.Context, data domain.UpdateAlbum) error {
	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	addClause := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if data.Title != nil {
		addClause("title", data.Title)
	}
	if data.ReleaseDate != nil {
		addClause("release_date", data.ReleaseDate)
	}
	if data.CoverImageUrl != nil {
		addClause("cover_image_url", data.CoverImageUrl)
	}
	if data.Label != nil {
		addClause("label", data.Label)
	}

	addClause("updated_at", time.Now())

	args = append(args, data.ID)
	query := fmt.Sprintf("UPDATE albums SET %s WHERE id = $%d AND deleted_at IS NULL",
		strings.Join(setClauses, ", "),
		argIndex)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrAlbumNotFound)
}

// Delete soft-deletes the album by stamping deleted_at. The album's songs
// are untouched; cascading is a higher-level workflow concern.
func (r *pgAlbumRepository) Delete(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE albums SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrAlbumNotFound)
}
