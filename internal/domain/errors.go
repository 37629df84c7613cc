package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email or username already exists")
	ErrArtistNotFound    = errors.New("artist not found")
	ErrAlbumNotFound     = errors.New("album not found")
	ErrSongNotFound      = errors.New("song not found")
)
