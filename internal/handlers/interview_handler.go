package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/george-bobby/prepify-interview-sub001/internal/cache"
	"github.com/george-bobby/prepify-interview-sub001/internal/middleware"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/repositories"
	"github.com/george-bobby/prepify-interview-sub001/internal/utils"
	"github.com/george-bobby/prepify-interview-sub001/internal/workflow"
)

const statsCacheTTL = 5 * time.Minute

// InterviewHandler serves the interview lifecycle endpoints. Generation,
// evaluation and summary go through the workflow; everything else is
// repository access.
type InterviewHandler struct {
	workflow   *workflow.Workflow
	interviews *repositories.InterviewRepository
	feedback   *repositories.FeedbackRepository
	cache      *cache.Cache
	logger     *zap.Logger
}

func NewInterviewHandler(wf *workflow.Workflow, interviews *repositories.InterviewRepository, feedback *repositories.FeedbackRepository, c *cache.Cache, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		workflow:   wf,
		interviews: interviews,
		feedback:   feedback,
		cache:      c,
		logger:     logger,
	}
}

func (h *InterviewHandler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.GenerateInterviewRequest](r)
	userID := middleware.UserID(r)

	interview, err := h.workflow.CreateInterview(r.Context(), userID, req.Config, req.QuestionCount)
	if err != nil {
		h.logger.Error("interview generation failed", zap.String("user_id", userID), zap.Error(err))
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, models.GenerateInterviewResponse{
		InterviewID:       interview.ID,
		Questions:         interview.Questions,
		Difficulty:        interview.Difficulty,
		EstimatedDuration: interview.EstimatedDuration,
	})
}

func (h *InterviewHandler) EvaluateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.EvaluateAnswerRequest](r)
	userID := middleware.UserID(r)

	result, err := h.workflow.SubmitAnswer(r.Context(), userID, req.InterviewID, *req.QuestionIndex, req.Question, req.Answer)
	if err != nil {
		h.logger.Error("answer evaluation failed",
			zap.String("interview_id", req.InterviewID), zap.Error(err))
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, result)
}

func (h *InterviewHandler) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.SummaryRequest](r)
	userID := middleware.UserID(r)

	result, err := h.workflow.CompleteInterview(r.Context(), userID, req.InterviewID, req.Duration)
	if err != nil {
		h.logger.Error("summary generation failed",
			zap.String("interview_id", req.InterviewID), zap.Error(err))
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, result)
}

func (h *InterviewHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	q := r.URL.Query()

	filter := repositories.InterviewFilter{
		Status: q.Get("status"),
		Mode:   q.Get("mode"),
		Limit:  queryInt(q.Get("limit"), 0),
		Cursor: q.Get("cursor"),
	}

	interviews, nextCursor, err := h.interviews.ListByUser(userID, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"interviews": interviews,
		"nextCursor": nextCursor,
	})
}

func (h *InterviewHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	interview, err := h.interviews.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if interview.UserID != userID {
		writeError(w, repositories.ErrAccessDenied)
		return
	}

	utils.JSON(w, http.StatusOK, interview)
}

// UpdateHandler applies a partial update. This is the only path that can
// move an interview into the paused state.
func (h *InterviewHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.UpdateInterviewRequest](r)
	userID := middleware.UserID(r)
	id := chi.URLParam(r, "id")

	interview, err := h.interviews.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if interview.UserID != userID {
		writeError(w, repositories.ErrAccessDenied)
		return
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		if !allowedTransition(interview.Status, *req.Status) {
			utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "invalid_transition",
				Message: "Status may only move forward",
			})
			return
		}
		updates["status"] = *req.Status
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.TechStack != nil {
		updates["tech_stack"] = req.TechStack
	}
	if req.FocusAreas != nil {
		updates["focus_areas"] = req.FocusAreas
	}

	if err := h.interviews.Update(id, updates); err != nil {
		writeError(w, err)
		return
	}
	if h.cache != nil {
		h.cache.InvalidateStats(r.Context(), userID)
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"updated": true})
}

func (h *InterviewHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	if err := h.interviews.DeleteOwned(chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, err)
		return
	}
	if h.cache != nil {
		h.cache.InvalidateStats(r.Context(), userID)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *InterviewHandler) FeedbackHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	id := chi.URLParam(r, "id")

	interview, err := h.interviews.GetByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if interview.UserID != userID {
		writeError(w, repositories.ErrAccessDenied)
		return
	}

	feedback, err := h.feedback.GetByInterviewID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, feedback)
}

func (h *InterviewHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	if h.cache != nil {
		if stats, ok := h.cache.GetStats(r.Context(), userID); ok {
			utils.JSON(w, http.StatusOK, stats)
			return
		}
	}

	stats, err := h.interviews.GetUserStats(userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if h.cache != nil {
		h.cache.SetStats(r.Context(), userID, stats, statsCacheTTL)
	}

	utils.JSON(w, http.StatusOK, stats)
}

// allowedTransition enforces forward-only status movement. Paused is a
// side state reachable from in_progress and resumable back into it.
func allowedTransition(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case models.StatusNotStarted:
		return to == models.StatusInProgress
	case models.StatusInProgress:
		return to == models.StatusCompleted || to == models.StatusPaused
	case models.StatusPaused:
		return to == models.StatusInProgress
	default:
		return false
	}
}
