package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/soundwave-labs/soundwave/internal/domain"
	"github.com/soundwave-labs/soundwave/internal/utils"
)

// respondError maps domain errors onto HTTP status codes. Anything
// unrecognized is a 500 with the cause tucked into the details field.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrArtistNotFound),
		errors.Is(err, domain.ErrAlbumNotFound),
		errors.Is(err, domain.ErrSongNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrUserAlreadyExists):
		utils.WriteError(w, http.StatusConflict, err.Error(), nil)
	default:
		utils.WriteError(w, http.StatusInternalServerError, "internal server error", err)
	}
}

// pathID parses the {id} path segment as a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// pageParams reads page/limit from the query string. Missing or malformed
// values come back as zero and the repositories apply the defaults.
func pageParams(r *http.Request) (int, int) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return page, limit
}
