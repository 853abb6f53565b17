package models

import (
	"time"
)

// Interview is a generated question sequence plus the user's answers and
// scores. Owned exclusively by the user who created it.
type Interview struct {
	ID     string `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"not null;index" json:"userId"`

	Role       string   `gorm:"not null" json:"role"`
	Level      string   `gorm:"not null" json:"level"`
	Mode       string   `gorm:"not null;index" json:"mode"`
	TechStack  []string `gorm:"serializer:json" json:"techStack"`
	FocusAreas []string `gorm:"serializer:json" json:"focusAreas,omitempty"`

	Questions         []string `gorm:"serializer:json" json:"questions"`
	Difficulty        string   `json:"difficulty,omitempty"`
	EstimatedDuration string   `json:"estimatedDuration,omitempty"`

	Status     string  `gorm:"not null;default:not_started;index" json:"status"`
	FinalScore *int    `json:"finalScore,omitempty"`
	FeedbackID *string `json:"feedbackId,omitempty"`

	// Responses are loaded alongside the interview, keyed by question index.
	Responses []InterviewResponse `gorm:"foreignKey:InterviewID" json:"responses,omitempty"`

	CreatedAt   time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// InterviewResponse is one evaluated answer. A re-evaluation of the same
// question index overwrites the row (last write wins), never appends.
type InterviewResponse struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	InterviewID   string `gorm:"not null;uniqueIndex:idx_interview_question" json:"interviewId"`
	QuestionIndex int    `gorm:"not null;uniqueIndex:idx_interview_question" json:"questionIndex"`

	Question     string   `gorm:"type:text" json:"question"`
	Answer       string   `gorm:"type:text" json:"answer"`
	Score        int      `json:"score"`
	Feedback     string   `gorm:"type:text" json:"feedback"`
	Strengths    []string `gorm:"serializer:json" json:"strengths"`
	Improvements []string `gorm:"serializer:json" json:"improvements"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserStats is the in-memory reduction over a user's interviews.
type UserStats struct {
	Total        int     `json:"total"`
	Completed    int     `json:"completed"`
	InProgress   int     `json:"inProgress"`
	AverageScore float64 `json:"averageScore"`
	TotalScore   int     `json:"totalScore"`
}
