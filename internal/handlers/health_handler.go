package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/george-bobby/prepify-interview-sub001/internal/cache"
	"github.com/george-bobby/prepify-interview-sub001/internal/llm"
	"github.com/george-bobby/prepify-interview-sub001/internal/utils"
)

type ReadinessCheck struct {
	Status  string `json:"status"` // "ok" | "failed"
	Message string `json:"message,omitempty"`
}

type ReadinessResponse struct {
	Status  string                    `json:"status"` // "ready" | "not_ready"
	Service string                    `json:"service"`
	Checks  map[string]ReadinessCheck `json:"checks"`
}

type HealthHandler struct {
	db       *gorm.DB
	cache    *cache.Cache
	provider llm.Provider
}

func NewHealthHandler(db *gorm.DB, c *cache.Cache, provider llm.Provider) *HealthHandler {
	return &HealthHandler{db: db, cache: c, provider: provider}
}

func (h *HealthHandler) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "prepify",
		"version": "1.0.0",
	})
}

func (h *HealthHandler) ReadyzHandler(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]ReadinessCheck)
	allChecksPass := true

	if h.db == nil {
		checks["database"] = ReadinessCheck{Status: "failed", Message: "Database not initialized"}
		allChecksPass = false
	} else if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(r.Context()) != nil {
		checks["database"] = ReadinessCheck{Status: "failed", Message: "Database unreachable"}
		allChecksPass = false
	} else {
		checks["database"] = ReadinessCheck{Status: "ok"}
	}

	// redis is optional at runtime (everything degrades to the database),
	// but readiness still reports it
	if h.cache == nil {
		checks["cache"] = ReadinessCheck{Status: "failed", Message: "Cache not initialized"}
		allChecksPass = false
	} else if err := h.cache.Ping(r.Context()); err != nil {
		checks["cache"] = ReadinessCheck{Status: "failed", Message: "Redis unreachable"}
		allChecksPass = false
	} else {
		checks["cache"] = ReadinessCheck{Status: "ok"}
	}

	if h.provider == nil {
		checks["provider"] = ReadinessCheck{Status: "failed", Message: "AI provider not initialized"}
		allChecksPass = false
	} else {
		checks["provider"] = ReadinessCheck{Status: "ok"}
	}

	response := ReadinessResponse{
		Service: "prepify",
		Checks:  checks,
	}

	if allChecksPass {
		response.Status = "ready"
		utils.JSON(w, http.StatusOK, response)
	} else {
		response.Status = "not_ready"
		utils.JSON(w, http.StatusServiceUnavailable, response)
	}
}
