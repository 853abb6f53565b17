package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/george-bobby/prepify-interview-sub001/internal/credits"
	"github.com/george-bobby/prepify-interview-sub001/internal/llm"
	"github.com/george-bobby/prepify-interview-sub001/internal/middleware"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/utils"
	"github.com/george-bobby/prepify-interview-sub001/internal/workflow"
)

type ResumeHandler struct {
	provider llm.Provider
	ledger   *credits.Ledger
	logger   *zap.Logger
}

func NewResumeHandler(provider llm.Provider, ledger *credits.Ledger, logger *zap.Logger) *ResumeHandler {
	return &ResumeHandler{provider: provider, ledger: ledger, logger: logger}
}

// AnalyzeHandler runs the resume analysis flow: renew-and-check credits,
// analyze, then deduct. The deduction happens only after a successful
// analysis so a provider failure never costs a credit.
func (h *ResumeHandler) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.AnalyzeResumeRequest](r)
	userID := middleware.UserID(r)

	ok, err := h.ledger.CheckResumeCredits(userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		writeError(w, workflow.ErrInsufficientCredits)
		return
	}

	analysis, err := h.provider.AnalyzeResume(r.Context(), req.ResumeText, req.TargetRole)
	if err != nil {
		h.logger.Error("resume analysis failed",
			zap.String("user_id", userID), zap.Error(err))
		writeError(w, err)
		return
	}

	if err := h.ledger.DeductResumeCredit(userID); err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, analysis)
}
