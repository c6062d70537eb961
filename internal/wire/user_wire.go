package wire

import (
	"cinerank-auth/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.Lookup)  // GET /api/users?id=|email=|username=
		r.Post("/", userHandler.Upsert) // POST /api/users
		r.Post("/sign-in", userHandler.SignIn)
	})
}
