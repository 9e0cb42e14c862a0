package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"logbook/internal/auth"
	"logbook/internal/httpserver/handlers"
)

// NewRouter wires the two action-dispatch endpoints. Each resource has a
// single POST endpoint; the request's "action" field selects the operation.
func NewRouter(db *gorm.DB, lg *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)
	r.Group(func(api chi.Router) {
		api.Use(auth.Authenticate)
		api.Post("/api/auth", handlers.AuthActions(db, lg))
		api.Post("/api/logs", handlers.LogActions(db, lg))
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return r
}
