package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/soundwave-labs/soundwave/internal/handler"
)

type Router struct {
	userHandler   *handler.UserHandler
	artistHandler *handler.ArtistHandler
	albumHandler  *handler.AlbumHandler
	songHandler   *handler.SongHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	artistHandler *handler.ArtistHandler,
	albumHandler *handler.AlbumHandler,
	songHandler *handler.SongHandler,
) *Router {
	return &Router{
		userHandler:   userHandler,
		artistHandler: artistHandler,
		albumHandler:  albumHandler,
		songHandler:   songHandler,
	}
}

func (r *Router) Setup() *http.ServeMux {
	mux := http.NewServeMux()

	// Health Check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Accounts
	mux.HandleFunc("POST /users", r.userHandler.Register)
	mux.HandleFunc("POST /users/github", r.userHandler.RegisterGitHub)
	mux.HandleFunc("GET /users/{id}", r.userHandler.Get)
	mux.HandleFunc("PATCH /users/{id}", r.userHandler.Update)
	mux.HandleFunc("POST /users/{id}/login", r.userHandler.RecordLogin)
	mux.HandleFunc("DELETE /users/{id}", r.userHandler.Delete)

	// Catalog
	mux.HandleFunc("GET /artists", r.artistHandler.List)
	mux.HandleFunc("POST /artists", r.artistHandler.Create)
	mux.HandleFunc("GET /artists/{id}", r.artistHandler.Get)
	mux.HandleFunc("PATCH /artists/{id}", r.artistHandler.Update)
	mux.HandleFunc("DELETE /artists/{id}", r.artistHandler.Delete)
	mux.HandleFunc("GET /artists/{id}/albums", r.artistHandler.ListAlbums)

	mux.HandleFunc("POST /albums", r.albumHandler.Create)
	mux.HandleFunc("GET /albums/{id}", r.albumHandler.Get)
	mux.HandleFunc("PATCH /albums/{id}", r.albumHandler.Update)
	mux.HandleFunc("DELETE /albums/{id}", r.albumHandler.Delete)
	mux.HandleFunc("GET /albums/{id}/songs", r.albumHandler.ListSongs)

	mux.HandleFunc("POST /songs", r.songHandler.Create)
	mux.HandleFunc("GET /songs/{id}", r.songHandler.Get)
	mux.HandleFunc("PATCH /songs/{id}", r.songHandler.Update)
	mux.HandleFunc("DELETE /songs/{id}", r.songHandler.Delete)

	return mux
}
