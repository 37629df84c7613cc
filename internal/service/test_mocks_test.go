package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/soundwave-labs/soundwave/internal/domain"
)

// In-memory repository fakes honoring the same contract as the Postgres
// implementations: soft-delete filtering on every read, 1-indexed
// pagination, enum normalization on create.

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.DeletedAt == nil {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username != nil && *u.Username == username && u.DeletedAt == nil {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Check(_ context.Context, id uuid.UUID) (bool, error) {
	u, ok := f.users[id]
	return ok && u.DeletedAt == nil, nil
}

func (f *fakeUserRepo) CheckByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	for _, u := range f.users {
		if u.DeletedAt != nil {
			continue
		}
		if u.Email == email || (u.Username != nil && *u.Username == username) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Create(_ context.Context, data domain.CreateUser) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &domain.User{
		ID:             id,
		Email:          data.Email,
		AuthProvider:   domain.NormalizeAuthProvider(data.AuthProvider),
		Username:       data.Username,
		PasswordHash:   data.PasswordHash,
		GithubID:       data.GithubID,
		GithubUsername: data.GithubUsername,
		Role:           domain.RoleListener,
		AccountStatus:  domain.AccountStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return id, nil
}

func (f *fakeUserRepo) Update(_ context.Context, data domain.UpdateUserInfo) error {
	u, ok := f.users[data.ID]
	if !ok || u.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	if data.FullName != nil {
		u.FullName = data.FullName
	}
	if data.Country != nil {
		u.Country = data.Country
	}
	if data.Birthdate != nil {
		u.Birthdate = data.Birthdate
	}
	if data.ProfilePictureUrl != nil {
		u.ProfilePictureUrl = data.ProfilePictureUrl
	}
	if data.LanguagePreference != nil {
		u.LanguagePreference = data.LanguagePreference
	}
	if data.Timezone != nil {
		u.Timezone = data.Timezone
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time, ip, location string) error {
	u, ok := f.users[id]
	if !ok || u.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	u.LastLogin = &at
	u.LastLoginIp = &ip
	u.LastLoginLocation = &location
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID, at time.Time) error {
	u, ok := f.users[id]
	if !ok || u.DeletedAt != nil {
		return domain.ErrUserNotFound
	}
	u.AccountStatus = domain.AccountStatusDeleted
	u.DeletedAt = &at
	return nil
}

type fakeArtistRepo struct {
	nextID  int64
	artists map[int64]*artistRow
}

type artistRow struct {
	domain.Artist
	deletedAt *time.Time
}

func newFakeArtistRepo() *fakeArtistRepo {
	return &fakeArtistRepo{nextID: 1, artists: make(map[int64]*artistRow)}
}

func (f *fakeArtistRepo) FindByID(_ context.Context, id int64) (*domain.Artist, error) {
	a, ok := f.artists[id]
	if !ok || a.deletedAt != nil {
		return nil, domain.ErrArtistNotFound
	}
	cp := a.Artist
	return &cp, nil
}

func (f *fakeArtistRepo) ListArtists(_ context.Context, page, limit int) ([]domain.SimpleArtist, error) {
	if page < 1 {
		page = domain.DefaultPageIndex
	}
	if limit < 1 {
		limit = domain.DefaultPageSize
	}
	all := []domain.SimpleArtist{}
	for _, a := range f.artists {
		if a.deletedAt == nil {
			all = append(all, domain.SimpleArtist{ID: a.ID, Name: a.Name})
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return slicePage(all, page, limit), nil
}

func (f *fakeArtistRepo) Create(_ context.Context, data domain.CreateArtist) (int64, error) {
	id := f.nextID
	f.nextID++
	f.artists[id] = &artistRow{Artist: domain.Artist{
		ID:                id,
		Name:              data.Name,
		Genre:             data.Genre,
		ProfilePictureUrl: data.ProfilePictureUrl,
		ArtistType:        domain.NormalizeArtistType(data.ArtistType),
		Bio:               data.Bio,
		CountryOfOrigin:   data.CountryOfOrigin,
		FormedIn:          data.FormedIn,
	}}
	return id, nil
}

func (f *fakeArtistRepo) Update(_ context.Context, data domain.UpdateArtist) error {
	a, ok := f.artists[data.ID]
	if !ok || a.deletedAt != nil {
		return domain.ErrArtistNotFound
	}
	if data.Name != nil {
		a.Name = *data.Name
	}
	if data.Genre != nil {
		a.Genre = *data.Genre
	}
	if data.ProfilePictureUrl != nil {
		a.ProfilePictureUrl = *data.ProfilePictureUrl
	}
	if data.Bio != nil {
		a.Bio = data.Bio
	}
	if data.CountryOfOrigin != nil {
		a.CountryOfOrigin = data.CountryOfOrigin
	}
	if data.FormedIn != nil {
		a.FormedIn = data.FormedIn
	}
	return nil
}

func (f *fakeArtistRepo) Delete(_ context.Context, id int64, at time.Time) error {
	a, ok := f.artists[id]
	if !ok || a.deletedAt != nil {
		return domain.ErrArtistNotFound
	}
	a.deletedAt = &at
	return nil
}

type fakeAlbumRepo struct {
	nextID int64
	albums map[int64]*albumRow
}

type albumRow struct {
	domain.Album
	deletedAt *time.Time
}

func newFakeAlbumRepo() *fakeAlbumRepo {
	return &fakeAlbumRepo{nextID: 1, albums: make(map[int64]*albumRow)}
}

func (f *fakeAlbumRepo) FindByID(_ context.Context, id int64) (*domain.Album, error) {
	a, ok := f.albums[id]
	if !ok || a.deletedAt != nil {
		return nil, domain.ErrAlbumNotFound
	}
	cp := a.Album
	return &cp, nil
}

func (f *fakeAlbumRepo) ListAlbumsByArtist(_ context.Context, artistID int64, page, limit int) ([]domain.SimpleAlbum, error) {
	if page < 1 {
		page = domain.DefaultPageIndex
	}
	if limit < 1 {
		limit = domain.DefaultPageSize
	}
	all := []albumRow{}
	for _, a := range f.albums {
		if a.deletedAt == nil && a.ArtistID == artistID {
			all = append(all, *a)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ReleaseDate.Before(all[j].ReleaseDate) })
	out := []domain.SimpleAlbum{}
	for _, a := range all {
		out = append(out, domain.SimpleAlbum{ID: a.ID, ArtistID: a.ArtistID, Title: a.Title})
	}
	return slicePage(out, page, limit), nil
}

func (f *fakeAlbumRepo) Create(_ context.Context, data domain.CreateAlbum) (int64, error) {
	id := f.nextID
	f.nextID++
	f.albums[id] = &albumRow{Album: domain.Album{
		ID:            id,
		ArtistID:      data.ArtistID,
		Title:         data.Title,
		ReleaseDate:   data.ReleaseDate,
		CoverImageUrl: data.CoverImageUrl,
		AlbumType:     domain.NormalizeAlbumType(data.AlbumType),
		Label:         data.Label,
	}}
	return id, nil
}

func (f *fakeAlbumRepo) Update(_ context.Context, data domain.UpdateAlbum) error {
	a, ok := f.albums[data.ID]
	if !ok || a.deletedAt != nil {
		return domain.ErrAlbumNotFound
	}
	if data.Title != nil {
		a.Title = *data.Title
	}
	if data.ReleaseDate != nil {
		a.ReleaseDate = *data.ReleaseDate
	}
	if data.CoverImageUrl != nil {
		a.CoverImageUrl = *data.CoverImageUrl
	}
	if data.Label != nil {
		a.Label = data.Label
	}
	return nil
}

func (f *fakeAlbumRepo) Delete(_ context.Context, id int64, at time.Time) error {
	a, ok := f.albums[id]
	if !ok || a.deletedAt != nil {
		return domain.ErrAlbumNotFound
	}
	a.deletedAt = &at
	return nil
}

type fakeSongRepo struct {
	nextID int64
	songs  map[int64]*songRow
}

type songRow struct {
	domain.Song
	deletedAt *time.Time
}

func newFakeSongRepo() *fakeSongRepo {
	return &fakeSongRepo{nextID: 1, songs: make(map[int64]*songRow)}
}

func (f *fakeSongRepo) FindByID(_ context.Context, id int64) (*domain.Song, error) {
	s, ok := f.songs[id]
	if !ok || s.deletedAt != nil {
		return nil, domain.ErrSongNotFound
	}
	cp := s.Song
	return &cp, nil
}

func (f *fakeSongRepo) ListSongsByAlbum(_ context.Context, albumID int64, page, limit int) ([]domain.SimpleSong, error) {
	if page < 1 {
		page = domain.DefaultPageIndex
	}
	if limit < 1 {
		limit = domain.DefaultPageSize
	}
	all := []songRow{}
	for _, s := range f.songs {
		if s.deletedAt == nil && s.AlbumID != nil && *s.AlbumID == albumID {
			all = append(all, *s)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		ti, tj := 0, 0
		if all[i].TrackNumber != nil {
			ti = *all[i].TrackNumber
		}
		if all[j].TrackNumber != nil {
			tj = *all[j].TrackNumber
		}
		return ti < tj
	})
	out := []domain.SimpleSong{}
	for _, s := range all {
		out = append(out, domain.SimpleSong{ID: s.ID, ArtistID: s.ArtistID, AlbumID: s.AlbumID, Title: s.Title})
	}
	return slicePage(out, page, limit), nil
}

func (f *fakeSongRepo) Create(_ context.Context, data domain.CreateSong) (int64, error) {
	id := f.nextID
	f.nextID++
	f.songs[id] = &songRow{Song: domain.Song{
		ID:            id,
		ArtistID:      data.ArtistID,
		AlbumID:       data.AlbumID,
		Title:         data.Title,
		Duration:      data.Duration,
		FileUrl:       data.FileUrl,
		ReleaseDate:   data.ReleaseDate,
		Genre:         data.Genre,
		Language:      data.Language,
		Bitrate:       data.Bitrate,
		Label:         data.Label,
		Lyrics:        data.Lyrics,
		DownloadUrl:   data.DownloadUrl,
		TrackNumber:   data.TrackNumber,
		CoverImageUrl: data.CoverImageUrl,
	}}
	return id, nil
}

func (f *fakeSongRepo) Update(_ context.Context, data domain.UpdateSong) error {
	s, ok := f.songs[data.ID]
	if !ok || s.deletedAt != nil {
		return domain.ErrSongNotFound
	}
	if data.Title != nil {
		s.Title = *data.Title
	}
	if data.Duration != nil {
		s.Duration = *data.Duration
	}
	if data.FileUrl != nil {
		s.FileUrl = *data.FileUrl
	}
	if data.ReleaseDate != nil {
		s.ReleaseDate = *data.ReleaseDate
	}
	if data.Genre != nil {
		s.Genre = *data.Genre
	}
	if data.Language != nil {
		s.Language = *data.Language
	}
	if data.Bitrate != nil {
		s.Bitrate = data.Bitrate
	}
	if data.Label != nil {
		s.Label = data.Label
	}
	if data.Lyrics != nil {
		s.Lyrics = data.Lyrics
	}
	if data.DownloadUrl != nil {
		s.DownloadUrl = data.DownloadUrl
	}
	if data.TrackNumber != nil {
		s.TrackNumber = data.TrackNumber
	}
	if data.CoverImageUrl != nil {
		s.CoverImageUrl = data.CoverImageUrl
	}
	return nil
}

func (f *fakeSongRepo) Delete(_ context.Context, id int64, at time.Time) error {
	s, ok := f.songs[id]
	if !ok || s.deletedAt != nil {
		return domain.ErrSongNotFound
	}
	s.deletedAt = &at
	return nil
}

func slicePage[T any](all []T, page, limit int) []T {
	offset := (page - 1) * limit
	if offset >= len(all) {
		return []T{}
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
