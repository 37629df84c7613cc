package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/soundwave-labs/soundwave/internal/domain"
	"github.com/soundwave-labs/soundwave/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGAlbumRepository_FindByID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewAlbumRepository(db)
	ctx := context.Background()
	release := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "artist_id", "title", "release_date", "cover_image_url", "total_tracks", "total_duration", "album_type", "label"}).
		AddRow(5, 1, "Night Signals", release, "https://cdn.example.com/ns.jpg", 12, 2710, "STUDIO", nil)
	mock.ExpectQuery("FROM albums WHERE id = \\$1 AND deleted_at IS NULL").
		WithArgs(int64(5)).WillReturnRows(rows)
	album, err := repo.FindByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), album.ArtistID)
	assert.Equal(t, domain.AlbumTypeStudio, album.AlbumType)
	assert.Equal(t, 12, album.TotalTracks)

	mock.ExpectQuery("FROM albums WHERE id = \\$1 AND deleted_at IS NULL").
		WithArgs(int64(6)).WillReturnError(sql.ErrNoRows)
	_, err = repo.FindByID(ctx, 6)
	assert.ErrorIs(t, err, domain.ErrAlbumNotFound)
}

func TestPGAlbumRepository_ListAlbumsByArtist(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewAlbumRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "artist_id", "title"}).
		AddRow(2, 1, "First Light").
		AddRow(5, 1, "Night Signals")
	mock.ExpectQuery("FROM albums\\s+WHERE artist_id = \\$1 AND deleted_at IS NULL\\s+ORDER BY release_date ASC LIMIT \\$2 OFFSET \\$3").
		WithArgs(int64(1), domain.DefaultPageSize, 0).
		WillReturnRows(rows)
	albums, err := repo.ListAlbumsByArtist(ctx, 1, 0, 0)
	require.NoError(t, err)
	require.Len(t, albums, 2)
	assert.Equal(t, "First Light", albums[0].Title)

	// A page past the end of the set is empty, not an error.
	mock.ExpectQuery("FROM albums\\s+WHERE artist_id = \\$1 AND deleted_at IS NULL\\s+ORDER BY release_date ASC LIMIT \\$2 OFFSET \\$3").
		WithArgs(int64(1), 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "artist_id", "title"}))
	albums, err = repo.ListAlbumsByArtist(ctx, 1, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, albums)
}

func TestPGAlbumRepository_Create(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewAlbumRepository(db)
	ctx := context.Background()
	release := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	label := "Waveform Records"

	// Aggregates are not caller-supplied: the statement pins them to zero.
	mock.ExpectQuery("INSERT INTO albums .*VALUES \\(\\$1, \\$2, \\$3, \\$4, \\$5, \\$6, 0, 0\\) RETURNING id").
		WithArgs(int64(1), "Night Signals", release, "https://cdn.example.com/ns.jpg", domain.AlbumTypeLive, &label).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	id, err := repo.Create(ctx, domain.CreateAlbum{
		ArtistID:      1,
		Title:         "Night Signals",
		ReleaseDate:   release,
		CoverImageUrl: "https://cdn.example.com/ns.jpg",
		AlbumType:     "LIVE",
		Label:         &label,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)

	// Unrecognized album type labels are stored as the STUDIO default.
	mock.ExpectQuery("INSERT INTO albums").
		WithArgs(int64(1), "Outtakes", release, "", domain.AlbumTypeStudio, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(6))
	_, err = repo.Create(ctx, domain.CreateAlbum{
		ArtistID:    1,
		Title:       "Outtakes",
		ReleaseDate: release,
		AlbumType:   "BOOTLEG",
	})
	require.NoError(t, err)
}

func TestPGAlbumRepository_Update(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewAlbumRepository(db)
	ctx := context.Background()
	title := "Night Signals (Deluxe)"

	mock.ExpectExec("UPDATE albums SET title = \\$1, updated_at = \\$2").
		WithArgs(&title, sqlmock.AnyArg(), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(ctx, domain.UpdateAlbum{ID: 5, Title: &title}))

	mock.ExpectExec("UPDATE albums SET").
		WithArgs(&title, sqlmock.AnyArg(), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(ctx, domain.UpdateAlbum{ID: 99, Title: &title}), domain.ErrAlbumNotFound)
}

func TestPGAlbumRepository_Delete(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := repository.NewAlbumRepository(db)
	ctx := context.Background()
	at := time.Now()

	mock.ExpectExec("UPDATE albums SET deleted_at = \\$1 WHERE id = \\$2 AND deleted_at IS NULL").
		WithArgs(at, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(ctx, 5, at))

	mock.ExpectExec("UPDATE albums SET deleted_at = \\$1 WHERE id = \\$2 AND deleted_at IS NULL").
		WithArgs(at, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(ctx, 5, at), domain.ErrAlbumNotFound)
}
