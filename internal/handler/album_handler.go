package handler

import (
	"encoding/json"
	"net/http"

	"github.com/soundwave-labs/soundwave/internal/dto"
	"github.com/soundwave-labs/soundwave/internal/service"
	"github.com/soundwave-labs/soundwave/internal/utils"
)

type AlbumHandler struct {
	service service.AlbumService
	songs   service.SongService
}

func NewAlbumHandler(service service.AlbumService, songs service.SongService) *AlbumHandler {
	return &AlbumHandler{service: service, songs: songs}
}

func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAlbumRequest
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

func (h *AlbumHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid album id", nil)
		return
	}

	album, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, album)
}

// ListSongs serves GET /albums/{id}/songs.
func (h *AlbumHandler) ListSongs(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid album id", nil)
		return
	}

	page, limit := pageParams(r)
	songs, err := h.songs.ListByAlbum(r.Context(), id, page, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, songs)
}

func (h *AlbumHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid album id", nil)
		return
	}

	var req dto.UpdateAlbumRequest
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

func (h *AlbumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid album id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
