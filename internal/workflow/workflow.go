package workflow

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/george-bobby/prepify-interview-sub001/internal/cache"
	"github.com/george-bobby/prepify-interview-sub001/internal/credits"
	"github.com/george-bobby/prepify-interview-sub001/internal/llm"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/repositories"
)

var (
	ErrInsufficientCredits = errors.New("insufficient interview credits")
	ErrNoResponses         = errors.New("no responses recorded yet")
	ErrAlreadyCompleted    = errors.New("interview already completed")
)

// Workflow sequences the interview lifecycle: question generation,
// per-answer evaluation, and final summary. It owns no state of its own;
// every step is a call into the injected adapters and repositories, and
// adapter failures propagate without retries.
type Workflow struct {
	provider   llm.Provider
	interviews *repositories.InterviewRepository
	feedback   *repositories.FeedbackRepository
	ledger     *credits.Ledger
	cache      *cache.Cache
	logger     *zap.Logger
}

func New(provider llm.Provider, interviews *repositories.InterviewRepository, feedback *repositories.FeedbackRepository, ledger *credits.Ledger, c *cache.Cache, logger *zap.Logger) *Workflow {
	return &Workflow{
		provider:   provider,
		interviews: interviews,
		feedback:   feedback,
		ledger:     ledger,
		cache:      c,
		logger:     logger,
	}
}

// CreateInterview gates on the credit balance, deducts, then generates
// questions and stores the interview in the not_started state. The credit
// is deducted before generation and is not refunded if generation fails.
func (w *Workflow) CreateInterview(ctx context.Context, userID string, config models.InterviewConfig, questionCount int) (*models.Interview, error) {
	ok, err := w.ledger.CheckInterviewCredits(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInsufficientCredits
	}
	if err := w.ledger.DeductInterviewCredit(userID); err != nil {
		return nil, err
	}

	result, err := w.provider.GenerateQuestions(ctx, config, questionCount)
	if err != nil {
		return nil, err
	}

	interview := &models.Interview{
		UserID:            userID,
		Role:              config.Role,
		Level:             config.Level,
		Mode:              config.Mode,
		TechStack:         config.TechStack,
		FocusAreas:        config.FocusAreas,
		Questions:         result.Questions,
		Difficulty:        result.Difficulty,
		EstimatedDuration: result.EstimatedDuration,
		Status:            models.StatusNotStarted,
	}
	if err := w.interviews.Create(interview); err != nil {
		return nil, err
	}

	if w.cache != nil {
		w.cache.InvalidateStats(ctx, userID)
	}

	w.logger.Info("interview created",
		zap.String("interview_id", interview.ID),
		zap.String("user_id", userID),
		zap.Int("questions", len(interview.Questions)))
	return interview, nil
}

// SubmitAnswer evaluates one answer and writes it at its question index.
// The first submitted answer drives the interview to in_progress.
func (w *Workflow) SubmitAnswer(ctx context.Context, userID, interviewID string, questionIndex int, question, answer string) (*models.EvaluateResponse, error) {
	interview, err := w.interviews.GetByID(interviewID)
	if err != nil {
		return nil, err
	}
	if interview.UserID != userID {
		return nil, repositories.ErrAccessDenied
	}
	if interview.Status == models.StatusCompleted {
		return nil, ErrAlreadyCompleted
	}
	if questionIndex < 0 || questionIndex >= len(interview.Questions) {
		return nil, repositories.ErrIndexOutOfRange
	}

	config := models.InterviewConfig{
		Mode:       interview.Mode,
		Role:       interview.Role,
		Level:      interview.Level,
		TechStack:  interview.TechStack,
		FocusAreas: interview.FocusAreas,
	}

	evaluation, err := w.provider.EvaluateAnswer(ctx, question, answer, config)
	if err != nil {
		return nil, err
	}

	if err := w.interviews.UpsertResponse(&models.InterviewResponse{
		InterviewID:   interviewID,
		QuestionIndex: questionIndex,
		Question:      question,
		Answer:        answer,
		Score:         evaluation.Score,
		Feedback:      evaluation.Feedback,
		Strengths:     evaluation.Strengths,
		Improvements:  evaluation.Improvements,
	}); err != nil {
		return nil, err
	}

	if interview.Status != models.StatusInProgress {
		if err := w.interviews.Update(interviewID, map[string]interface{}{
			"status": models.StatusInProgress,
		}); err != nil {
			return nil, err
		}
		if w.cache != nil {
			w.cache.InvalidateStats(ctx, userID)
		}
	}

	isLast := questionIndex == len(interview.Questions)-1
	nextQuestion := ""
	if !isLast {
		nextQuestion = interview.Questions[questionIndex+1]
	}

	// Conversational polish only; a failure here never fails the request.
	line, err := w.provider.InterviewerLine(ctx, config, answer, nextQuestion)
	if err != nil {
		w.logger.Warn("interviewer line generation failed",
			zap.String("interview_id", interviewID), zap.Error(err))
		line = ""
	}

	return &models.EvaluateResponse{
		Evaluation:          evaluation,
		InterviewerResponse: line,
		FollowUpQuestion:    evaluation.FollowUpQuestion,
		ShouldContinue:      evaluation.ShouldContinue,
		IsLastQuestion:      isLast,
	}, nil
}

// CompleteInterview generates the summary, creates the single feedback
// document, and performs the terminal status transition.
func (w *Workflow) CompleteInterview(ctx context.Context, userID, interviewID, duration string) (*models.SummaryResponse, error) {
	interview, err := w.interviews.GetByID(interviewID)
	if err != nil {
		return nil, err
	}
	if interview.UserID != userID {
		return nil, repositories.ErrAccessDenied
	}
	if interview.Status == models.StatusCompleted || interview.FeedbackID != nil {
		return nil, ErrAlreadyCompleted
	}
	if len(interview.Responses) == 0 {
		return nil, ErrNoResponses
	}

	config := models.InterviewConfig{
		Mode:       interview.Mode,
		Role:       interview.Role,
		Level:      interview.Level,
		TechStack:  interview.TechStack,
		FocusAreas: interview.FocusAreas,
	}

	summary, err := w.provider.GenerateSummary(ctx, interview.Responses, config, duration)
	if err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		InterviewID:         interviewID,
		UserID:              userID,
		TotalScore:          summary.TotalScore,
		CategoryScores:      summary.CategoryScores,
		Strengths:           summary.Strengths,
		AreasForImprovement: summary.AreasForImprovement,
		Recommendations:     summary.Recommendations,
		OverallFeedback:     summary.OverallFeedback,
		Duration:            duration,
		QuestionsAnswered:   len(interview.Responses),
	}
	if err := w.feedback.Create(feedback); err != nil {
		return nil, err
	}

	if err := w.interviews.Complete(interviewID, &summary.TotalScore); err != nil {
		return nil, err
	}

	if w.cache != nil {
		w.cache.InvalidateStats(ctx, userID)
		event := InterviewCompletedEvent{
			InterviewID: interviewID,
			UserID:      userID,
			FeedbackID:  feedback.ID,
			TotalScore:  summary.TotalScore,
		}
		if err := w.cache.PublishInterviewCompleted(ctx, event); err != nil {
			w.logger.Warn("failed to publish completion event",
				zap.String("interview_id", interviewID), zap.Error(err))
		}
	}

	w.logger.Info("interview completed",
		zap.String("interview_id", interviewID),
		zap.Int("total_score", summary.TotalScore))

	return &models.SummaryResponse{FeedbackID: feedback.ID, Summary: summary}, nil
}
