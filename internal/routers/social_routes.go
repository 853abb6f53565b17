package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/george-bobby/prepify-interview-sub001/internal/handlers"
	"github.com/george-bobby/prepify-interview-sub001/internal/middleware"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
)

func SocialRoutes(router *chi.Mux, postHandler *handlers.PostHandler, commentHandler *handlers.CommentHandler, auth func(http.Handler) http.Handler) {
	router.Route("/api/v1/posts", func(r chi.Router) {
		r.Use(auth)

		r.With(middleware.ValidateRequest[*models.CreatePostRequest]()).Post("/", postHandler.CreateHandler)
		r.Get("/", postHandler.ListHandler)
		r.Get("/{id}", postHandler.GetHandler)
		r.With(middleware.ValidateRequest[*models.UpdatePostRequest]()).Patch("/{id}", postHandler.UpdateHandler)
		r.Delete("/{id}", postHandler.DeleteHandler)

		r.Post("/{id}/like", postHandler.ToggleLikeHandler)
		r.With(middleware.ValidateRequest[*models.SharePostRequest]()).Post("/{id}/share", postHandler.ShareHandler)
		r.Delete("/{id}/share", postHandler.UnshareHandler)

		r.With(middleware.ValidateRequest[*models.CreateCommentRequest]()).Post("/{id}/comments", commentHandler.CreateHandler)
		r.Get("/{id}/comments", commentHandler.ListHandler)
	})

	router.Route("/api/v1/comments", func(r chi.Router) {
		r.Use(auth)

		r.Get("/{id}/replies", commentHandler.RepliesHandler)
		r.With(middleware.ValidateRequest[*models.UpdateCommentRequest]()).Patch("/{id}", commentHandler.UpdateHandler)
		r.Delete("/{id}", commentHandler.DeleteHandler)
		r.Post("/{id}/like", commentHandler.ToggleLikeHandler)
	})
}

func NotificationRoutes(router *chi.Mux, notificationHandler *handlers.NotificationHandler, auth func(http.Handler) http.Handler) {
	router.Route("/api/v1/notifications", func(r chi.Router) {
		r.Use(auth)

		r.Get("/", notificationHandler.ListHandler)
		r.Patch("/{id}/read", notificationHandler.MarkReadHandler)
		r.Post("/read-all", notificationHandler.MarkAllReadHandler)
		r.Delete("/{id}", notificationHandler.DeleteHandler)
	})
}
