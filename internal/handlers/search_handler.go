package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/search"
	"github.com/george-bobby/prepify-interview-sub001/internal/utils"
)

type SearchHandler struct {
	jobs   *search.JobSearchClient
	news   *search.NewsClient
	logger *zap.Logger
}

func NewSearchHandler(jobs *search.JobSearchClient, news *search.NewsClient, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{jobs: jobs, news: news, logger: logger}
}

func (h *SearchHandler) JobsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	if query == "" {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "validation_error",
			Message: "query parameter q is required",
		})
		return
	}

	listings, err := h.jobs.Search(r.Context(), query, q.Get("location"))
	if err != nil {
		h.writeSearchError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"jobs": listings})
}

func (h *SearchHandler) NewsHandler(w http.ResponseWriter, r *http.Request) {
	articles, err := h.news.TopHeadlines(r.Context(), r.URL.Query().Get("topic"))
	if err != nil {
		h.writeSearchError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{"articles": articles})
}

func (h *SearchHandler) writeSearchError(w http.ResponseWriter, err error) {
	h.logger.Error("search request failed", zap.Error(err))
	if errors.Is(err, search.ErrUpstream) {
		utils.JSON(w, http.StatusBadGateway, models.ErrorResponse{
			Code:    "upstream_error",
			Message: "Search provider is unavailable",
		})
		return
	}
	writeError(w, err)
}
