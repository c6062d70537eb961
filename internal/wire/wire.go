// internal/wire/wire.go
package wire

import (
	"context"
	"net/http"
	"time"

	"cinerank-auth/internal/adaptor"
	"cinerank-auth/internal/data/repository"
	"cinerank-auth/internal/usecase"
	"cinerank-auth/pkg/middleware"
	"cinerank-auth/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router.
func Wiring(repo *repository.Repository, sender usecase.CodeSender, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, sender, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:  setupRouter(handler, repo, config, logger),
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		utils.ResponseMethodNotAllowed(w, allowedMethods(r, req.URL.Path)...)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusNotFound, utils.ErrorResponse{Error: "Not Found"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.EnsureSchema(repo.Schema, logger))

		wireOTP(r, handler.OTP)
		wireUser(r, handler.User)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := repo.DB.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("UNAVAILABLE"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

var routableMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// allowedMethods lists the methods routes has a handler for at path.
func allowedMethods(routes chi.Routes, path string) []string {
	var allowed []string
	for _, method := range routableMethods {
		if routes.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
