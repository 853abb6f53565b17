package llm

import (
	"context"

	"github.com/george-bobby/prepify-interview-sub001/internal/models"
)

// Provider is the text/object generation adapter. Implementations return
// schema-validated structured objects; the caller trusts their contents
// beyond bounds checks.
type Provider interface {
	// GenerateQuestions produces 1-10 interview questions for the config.
	// The model may return fewer or more than the requested count within
	// the schema bound.
	GenerateQuestions(ctx context.Context, config models.InterviewConfig, count int) (*models.GenerationResult, error)
	// EvaluateAnswer scores a single answer on a 0-10 scale.
	EvaluateAnswer(ctx context.Context, question, answer string, config models.InterviewConfig) (*models.Evaluation, error)
	// GenerateSummary produces the final 0-100 summary over all responses.
	// Callers must not invoke it with zero responses.
	GenerateSummary(ctx context.Context, responses []models.InterviewResponse, config models.InterviewConfig, duration string) (*models.Summary, error)
	// InterviewerLine produces a free-text conversational transition.
	// UX polish only, never state-affecting.
	InterviewerLine(ctx context.Context, config models.InterviewConfig, lastAnswer, nextQuestion string) (string, error)
	// AnalyzeResume reviews resume text against a target role.
	AnalyzeResume(ctx context.Context, resumeText, targetRole string) (*models.ResumeAnalysis, error)
	GetProviderName() string
}

// ProviderError represents an error from an LLM provider.
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Common error codes shared across providers.
const (
	ErrCodeAPIKey       = "invalid_api_key"
	ErrCodeRateLimit    = "rate_limit_exceeded"
	ErrCodeServiceDown  = "service_unavailable"
	ErrCodeInvalidInput = "invalid_input"
	ErrCodeBadOutput    = "malformed_output"
)
