package models

// FieldError is one field-level validation issue.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON error body returned by every endpoint.
// It implements error so request DTO Validate() methods can return it
// directly.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// GenerationResult is the schema-validated output of question generation.
type GenerationResult struct {
	Questions         []string `json:"questions"`
	Difficulty        string   `json:"difficulty"`
	EstimatedDuration string   `json:"estimatedDuration"`
}

// Evaluation is the schema-validated output of a per-answer evaluation.
type Evaluation struct {
	Score            int      `json:"score"`
	Feedback         string   `json:"feedback"`
	Strengths        []string `json:"strengths"`
	Improvements     []string `json:"improvements"`
	FollowUpQuestion string   `json:"followUpQuestion,omitempty"`
	ShouldContinue   bool     `json:"shouldContinue"`
}

// Summary is the schema-validated output of final summary generation.
type Summary struct {
	TotalScore          int             `json:"totalScore"`
	CategoryScores      []CategoryScore `json:"categoryScores"`
	Strengths           []string        `json:"strengths"`
	AreasForImprovement []string        `json:"areasForImprovement"`
	Recommendations     []string        `json:"recommendations"`
	OverallFeedback     string          `json:"overallFeedback"`
	InterviewDuration   string          `json:"interviewDuration"`
	QuestionsAnswered   int             `json:"questionsAnswered"`
}

// ResumeAnalysis is the schema-validated output of resume analysis.
type ResumeAnalysis struct {
	Score           int      `json:"score"`
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`
}

type GenerateInterviewResponse struct {
	InterviewID       string   `json:"interviewId"`
	Questions         []string `json:"questions"`
	Difficulty        string   `json:"difficulty"`
	EstimatedDuration string   `json:"estimatedDuration"`
}

type EvaluateResponse struct {
	Evaluation          *Evaluation `json:"evaluation"`
	InterviewerResponse string      `json:"interviewerResponse,omitempty"`
	FollowUpQuestion    string      `json:"followUpQuestion,omitempty"`
	ShouldContinue      bool        `json:"shouldContinue"`
	IsLastQuestion      bool        `json:"isLastQuestion"`
}

type SummaryResponse struct {
	FeedbackID string   `json:"feedbackId"`
	Summary    *Summary `json:"summary"`
}

type CreditsResponse struct {
	InterviewCredits int `json:"interviewCredits"`
	ResumeCredits    int `json:"resumeCredits"`
}

type ToggleLikeResponse struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}
