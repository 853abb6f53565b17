package models

import (
	"time"
)

// CategoryScore is one scored dimension of a completed interview.
type CategoryScore struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Feedback is the single post-hoc summary produced when an interview
// completes. Created exactly once, never updated, deleted with its
// interview.
type Feedback struct {
	ID          string `gorm:"primaryKey" json:"id"`
	InterviewID string `gorm:"not null;uniqueIndex" json:"interviewId"`
	UserID      string `gorm:"not null;index" json:"userId"`

	TotalScore          int             `json:"totalScore"`
	CategoryScores      []CategoryScore `gorm:"serializer:json" json:"categoryScores"`
	Strengths           []string        `gorm:"serializer:json" json:"strengths"`
	AreasForImprovement []string        `gorm:"serializer:json" json:"areasForImprovement"`
	Recommendations     []string        `gorm:"serializer:json" json:"recommendations"`
	OverallFeedback     string          `gorm:"type:text" json:"overallFeedback"`

	Duration          string `json:"duration"`
	QuestionsAnswered int    `json:"questionsAnswered"`

	CreatedAt time.Time `json:"createdAt"`
}
