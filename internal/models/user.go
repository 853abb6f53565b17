package models

import (
	"time"
)

// User represents a registered user in the system.
type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"unique;not null" json:"username"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Credit balances gating interview generation and resume analysis.
	// Deduction is an unconditional atomic decrement; callers check the
	// balance before triggering the action that deducts.
	InterviewCredits int `gorm:"default:3" json:"interviewCredits"`
	ResumeCredits    int `gorm:"default:2" json:"resumeCredits"`

	// ResumeCreditsRenewedAt marks the last monthly renewal of the resume
	// allowance. Renewal is pull-based: checked on the analyze-resume path.
	ResumeCreditsRenewedAt time.Time `json:"resumeCreditsRenewedAt"`

	ProSubscriber  bool   `gorm:"default:false" json:"proSubscriber"`
	SubscriptionID string `json:"subscriptionId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
