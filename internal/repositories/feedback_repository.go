package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/george-bobby/prepify-interview-sub001/internal/models"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

// Create writes the feedback document and the parent interview's
// feedbackId back-reference in one transaction, so a crash cannot leave
// an orphaned feedback row.
func (r *FeedbackRepository) Create(feedback *models.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = uuid.New().String()
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(feedback).Error; err != nil {
			return err
		}
		result := tx.Model(&models.Interview{}).
			Where("id = ?", feedback.InterviewID).
			Update("feedback_id", feedback.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInterviewNotFound
		}
		return nil
	})
}

// GetByInterviewID returns the single feedback for an interview, if any.
func (r *FeedbackRepository) GetByInterviewID(interviewID string) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.DB.Where("interview_id = ?", interviewID).Limit(1).First(&feedback).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFeedbackNotFound
	}
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// No update or delete is exposed: feedback is immutable after creation and
// removed only through its interview's deletion.
