package httpapi

import (
	"net/http"
	"time"

	"github.com/UkralStul/posts-service/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter собирает chi-роутер. Маршруты постов доступны и от корня,
// и под префиксом /posts. pinger может быть nil.
func NewRouter(h *Handler, pinger storage.Pinger, timeout time.Duration) chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(h.accessLog)
	router.Use(middleware.Recoverer)
	if timeout > 0 {
		router.Use(middleware.Timeout(timeout))
	}

	router.Get("/healthz", h.health(pinger))
	router.Mount("/posts", h.routes())
	router.Mount("/", h.routes())

	return router
}

func (h *Handler) routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.getPosts)
	r.Get("/{postId}", h.getPostByID)
	r.Post("/", h.createPost)
	r.Put("/{postId}", h.updatePost)
	r.Delete("/{postId}", h.deletePost)
	return r
}

func (h *Handler) health(pinger storage.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				h.logger.Warn(r.Context(), "health check failed", "error", err)
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
