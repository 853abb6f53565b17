package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/george-bobby/prepify-interview-sub001/internal/credits"
	"github.com/george-bobby/prepify-interview-sub001/internal/middleware"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/utils"
)

type CreditHandler struct {
	ledger   *credits.Ledger
	verifier *credits.SubscriptionVerifier
	logger   *zap.Logger
}

func NewCreditHandler(ledger *credits.Ledger, verifier *credits.SubscriptionVerifier, logger *zap.Logger) *CreditHandler {
	return &CreditHandler{ledger: ledger, verifier: verifier, logger: logger}
}

func (h *CreditHandler) GetCreditsHandler(w http.ResponseWriter, r *http.Request) {
	balance, err := h.ledger.GetCredits(middleware.UserID(r))
	if err != nil {
		h.logger.Error("Failed to fetch credits", zap.Error(err))
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, balance)
}

// VerifySubscriptionHandler validates the payment gateway signature and, on
// success, upgrades the user to unlimited credits.
func (h *CreditHandler) VerifySubscriptionHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.VerifySubscriptionRequest](r)
	userID := middleware.UserID(r)

	if err := h.verifier.Verify(req.OrderID, req.PaymentID, req.Signature); err != nil {
		if errors.Is(err, credits.ErrInvalidSignature) {
			h.logger.Warn("Subscription signature rejected",
				zap.String("userID", userID),
				zap.String("orderID", req.OrderID))
			utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
				Code:    "invalid_signature",
				Message: "Payment signature verification failed",
			})
			return
		}
		writeError(w, err)
		return
	}

	if err := h.ledger.GrantUnlimited(userID, req.OrderID); err != nil {
		h.logger.Error("Failed to grant subscription", zap.Error(err))
		writeError(w, err)
		return
	}

	h.logger.Info("Subscription activated",
		zap.String("userID", userID),
		zap.String("orderID", req.OrderID))

	balance, err := h.ledger.GetCredits(userID)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"subscribed": true,
		"credits":    balance,
	})
}
