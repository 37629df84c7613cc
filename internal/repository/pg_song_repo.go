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

type pgSongRepository struct {
	db *sqlx.DB
}

// NewSongRepository creates a new PostgreSQL-based song repository.
func NewSongRepository(db *sqlx.DB) domain.SongRepository {
	return &pgSongRepository{db: db}
}

// FindByID retrieves a live song by id, or domain.ErrSongNotFound.
func (r *pgSongRepository) FindByID(ctx context.Context, id int64) (*domain.Song, error) {
	song := &domain.Song{}
	query := `SELECT id, artist_id, album_id, title, duration, file_url, release_date, genre, language,
			stream_count, bitrate, label, lyrics, download_url, track_number, cover_image_url
		FROM songs WHERE id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, song, query, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrSongNotFound
	}
	if err != nil {
		return nil, err
	}
	return song, nil
}

// ListSongsByAlbum returns a page of the album's live songs in track order.
func (r *pgSongRepository) ListSongsByAlbum(ctx context.Context, albumID int64, page, limit int) ([]domain.SimpleSong, error) {
	limit, offset := paginate(page, limit)

	songs := []domain.SimpleSong{}
	query := `SELECT id, artist_id, album_id, title FROM songs
		WHERE album_id = $1 AND deleted_at IS NULL
		ORDER BY track_number ASC LIMIT $2 OFFSET $3`

	if err := r.db.SelectContext(ctx, &songs, query, albumID, limit, offset); err != nil {
		return nil, err
	}
	return songs, nil
}

// Create inserts a new song with a zero stream count and returns the
// generated id.
func (r *pgSongRepository) Create(ctx context.Context, data domain.CreateSong) (int64, error) {
	var id int64
	query := `INSERT INTO songs (artist_id, album_id, title, duration, file_url, release_date, genre, language,
			stream_count, bitrate, label, lyrics, download_url, track_number, cover_image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, $10, $11, $12, $13, $14) RETURNING id`

	err := r.db.GetContext(ctx, &id, query,
		data.ArtistID, data.AlbumID, data.Title, data.Duration, data.FileUrl,
		data.ReleaseDate, data.Genre, data.Language,
		data.Bitrate, data.Label, data.Lyrics, data.DownloadUrl, data.TrackNumber, data.CoverImageUrl,
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update applies the non-nil fields of the DTO. Returns
// domain.ErrSongNotFound when the id does not resolve to a live row.
func (r *pgSongRepository) Update(ctx context.Context, data domain.UpdateSong) error {
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
	if data.Duration != nil {
		addClause("duration", data.Duration)
	}
	if data.FileUrl != nil {
		addClause("file_url", data.FileUrl)
	}
	if data.ReleaseDate != nil {
		addClause("release_date", data.ReleaseDate)
	}
	if data.Genre != nil {
		addClause("genre", data.Genre)
	}
	if data.Language != nil {
		addClause("language", data.Language)
	}
	if data.Bitrate != nil {
		addClause("bitrate", data.Bitrate)
	}
	if data.Label != nil {
		addClause("label", data.Label)
	}
	if data.Lyrics != nil {
		addClause("lyrics", data.Lyrics)
	}
	if data.DownloadUrl != nil {
		addClause("download_url", data.DownloadUrl)
	}
	if data.TrackNumber != nil {
		addClause("track_number", data.TrackNumber)
	}
	if data.CoverImageUrl != nil {
		addClause("cover_image_url", data.CoverImageUrl)
	}

	addClause("updated_at", time.Now())

	args = append(args, data.ID)
	query := fmt.Sprintf("UPDATE songs SET %s WHERE id = $%d AND deleted_at IS NULL",
		strings.Join(setClauses, ", "),
		argIndex)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrSongNotFound)
}

// Delete soft-deletes the song by stamping deleted_at. Album aggregates are
// not adjusted here.
func (r *pgSongRepository) Delete(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE songs SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return err
	}
	return requireRow(res, domain.ErrSongNotFound)
}
