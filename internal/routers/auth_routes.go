package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/george-bobby/prepify-interview-sub001/internal/handlers"
	"github.com/george-bobby/prepify-interview-sub001/internal/middleware"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
)

func AuthRoutes(router *chi.Mux, authHandler *handlers.AuthHandler, auth func(http.Handler) http.Handler) {
	router.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.ValidateRequest[*models.RegisterRequest]()).Post("/register", authHandler.RegisterHandler)
		r.With(middleware.ValidateRequest[*models.LoginRequest]()).Post("/login", authHandler.LoginHandler)
		r.With(auth).Post("/logout", authHandler.LogoutHandler)
	})
}
