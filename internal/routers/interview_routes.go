package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/george-bobby/prepify-interview-sub001/internal/handlers"
	"github.com/george-bobby/prepify-interview-sub001/internal/middleware"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
)

func InterviewRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler, auth func(http.Handler) http.Handler) {
	router.Route("/api/v1/interviews", func(r chi.Router) {
		r.Use(auth)

		r.With(middleware.ValidateRequest[*models.GenerateInterviewRequest]()).Post("/generate", interviewHandler.GenerateHandler)
		r.With(middleware.ValidateRequest[*models.EvaluateAnswerRequest]()).Post("/evaluate", interviewHandler.EvaluateHandler)
		r.With(middleware.ValidateRequest[*models.SummaryRequest]()).Post("/summary", interviewHandler.SummaryHandler)

		r.Get("/", interviewHandler.ListHandler)
		r.Get("/stats", interviewHandler.StatsHandler)
		r.Get("/{id}", interviewHandler.GetHandler)
		r.With(middleware.ValidateRequest[*models.UpdateInterviewRequest]()).Patch("/{id}", interviewHandler.UpdateHandler)
		r.Delete("/{id}", interviewHandler.DeleteHandler)
		r.Get("/{id}/feedback", interviewHandler.FeedbackHandler)
	})
}

// CreditRoutes covers the credit balance, subscription verification, and
// resume analysis endpoints. Resume analysis lives here because it is the
// second credit-gated operation.
func CreditRoutes(router *chi.Mux, creditHandler *handlers.CreditHandler, resumeHandler *handlers.ResumeHandler, auth func(http.Handler) http.Handler) {
	router.Route("/api/v1/credits", func(r chi.Router) {
		r.Use(auth)
		r.Get("/", creditHandler.GetCreditsHandler)
	})
	router.Route("/api/v1/subscription", func(r chi.Router) {
		r.Use(auth)
		r.With(middleware.ValidateRequest[*models.VerifySubscriptionRequest]()).Post("/verify", creditHandler.VerifySubscriptionHandler)
	})
	router.Route("/api/v1/resume", func(r chi.Router) {
		r.Use(auth)
		r.With(middleware.ValidateRequest[*models.AnalyzeResumeRequest]()).Post("/analyze", resumeHandler.AnalyzeHandler)
	})
}

func SearchRoutes(router *chi.Mux, searchHandler *handlers.SearchHandler, auth func(http.Handler) http.Handler) {
	router.Route("/api/v1/search", func(r chi.Router) {
		r.Use(auth)
		r.Get("/jobs", searchHandler.JobsHandler)
		r.Get("/news", searchHandler.NewsHandler)
	})
}
