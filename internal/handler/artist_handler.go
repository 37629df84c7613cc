package handler

import (
	"encoding/json"
	"net/http"

	"github.com/soundwave-labs/soundwave/internal/dto"
	"github.com/soundwave-labs/soundwave/internal/service"
	"github.com/soundwave-labs/soundwave/internal/utils"
)

type ArtistHandler struct {
	service service.ArtistService
	albums  service.AlbumService
}

func NewArtistHandler(service service.ArtistService, albums service.AlbumService) *ArtistHandler {
	return &ArtistHandler{service: service, albums: albums}
}

func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	id, err := h.service.Create(r.Context(), req.ToDomain())
	if err != nil {
		respondError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *ArtistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid artist id", nil)
		return
	}

	artist, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, artist)
}

func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	artists, err := h.service.List(r.Context(), page, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, artists)
}

// ListAlbums serves GET /artists/{id}/albums.
func (h *ArtistHandler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid artist id", nil)
		return
	}

	page, limit := pageParams(r)
	albums, err := h.albums.ListByArtist(r.Context(), id, page, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, albums)
}

func (h *ArtistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid artist id", nil)
		return
	}

	var req dto.UpdateArtistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := h.service.Update(r.Context(), req.ToDomain(id)); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ArtistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid artist id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
