package handler_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/soundwave-labs/soundwave/internal/domain"
	"github.com/soundwave-labs/soundwave/internal/service"
	"github.com/stretchr/testify/mock"
)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) Register(ctx context.Context, req service.RegisterUserReq) (uuid.UUID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
func (m *mockUserService) RegisterGitHub(ctx context.Context, req service.RegisterGitHubUserReq) (uuid.UUID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
func (m *mockUserService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *mockUserService) UpdateInfo(ctx context.Context, data domain.UpdateUserInfo) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}
func (m *mockUserService) RecordLogin(ctx context.Context, id uuid.UUID, ip, location string) error {
	args := m.Called(ctx, id, ip, location)
	return args.Error(0)
}
func (m *mockUserService) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockArtistService struct{ mock.Mock }

func (m *mockArtistService) Get(ctx context.Context, id int64) (*domain.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}
func (m *mockArtistService) List(ctx context.Context, page, limit int) ([]domain.SimpleArtist, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SimpleArtist), args.Error(1)
}
func (m *mockArtistService) Create(ctx context.Context, data domain.CreateArtist) (int64, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockArtistService) Update(ctx context.Context, data domain.UpdateArtist) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}
func (m *mockArtistService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAlbumService struct{ mock.Mock }

func (m *mockAlbumService) Get(ctx context.Context, id int64) (*domain.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Album), args.Error(1)
}
func (m *mockAlbumService) ListByArtist(ctx context.Context, artistID int64, page, limit int) ([]domain.SimpleAlbum, error) {
	args := m.Called(ctx, artistID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SimpleAlbum), args.Error(1)
}
func (m *mockAlbumService) Create(ctx context.Context, data domain.CreateAlbum) (int64, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockAlbumService) Update(ctx context.Context, data domain.UpdateAlbum) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}
func (m *mockAlbumService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockSongService struct{ mock.Mock }

func (m *mockSongService) Get(ctx context.Context, id int64) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}
func (m *mockSongService) ListByAlbum(ctx context.Context, albumID int64, page, limit int) ([]domain.SimpleSong, error) {
	args := m.Called(ctx, albumID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SimpleSong), args.Error(1)
}
func (m *mockSongService) Create(ctx context.Context, data domain.CreateSong) (int64, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockSongService) Update(ctx context.Context, data domain.UpdateSong) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}
func (m *mockSongService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
