package handlers

import (
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/george-bobby/prepify-interview-sub001/internal/cache"
	"github.com/george-bobby/prepify-interview-sub001/internal/middleware"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/repositories"
	"github.com/george-bobby/prepify-interview-sub001/internal/utils"
)

const tokenTTL = 24 * time.Hour

// AuthHandler manages registration, login and logout.
type AuthHandler struct {
	users     *repositories.UserRepository
	cache     *cache.Cache
	jwtSecret string
	logger    *zap.Logger
}

func NewAuthHandler(users *repositories.UserRepository, c *cache.Cache, jwtSecret string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, cache: c, jwtSecret: jwtSecret, logger: logger}
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.RegisterRequest](r)

	if existing, _ := h.users.GetUserByUsername(req.Username); existing != nil {
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "username_taken",
			Message: "Username already in use",
		})
		return
	}
	if existing, _ := h.users.GetUserByEmail(req.Email); existing != nil {
		utils.JSON(w, http.StatusConflict, models.ErrorResponse{
			Code:    "email_taken",
			Message: "Email already in use",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, err)
		return
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := h.users.CreateUser(user); err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("user registered", zap.String("user_id", user.ID))
	utils.JSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.LoginRequest](r)

	user, err := h.users.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
				Code:    "invalid_credentials",
				Message: "Invalid username or password",
			})
			return
		}
		writeError(w, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
			Code:    "invalid_credentials",
			Message: "Invalid username or password",
		})
		return
	}

	token, err := utils.SignToken(user.ID, user.Username, h.jwtSecret, tokenTTL)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

// LogoutHandler revokes the presented token for the rest of its lifetime.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	token, err := utils.BearerToken(r)
	if err == nil && h.cache != nil {
		if err := h.cache.BlacklistToken(r.Context(), token, tokenTTL); err != nil {
			h.logger.Warn("failed to blacklist token", zap.Error(err))
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
