package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/george-bobby/prepify-interview-sub001/internal/models"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) CreateUser(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.ResumeCreditsRenewedAt.IsZero() {
		user.ResumeCreditsRenewedAt = time.Now()
	}
	return r.DB.Create(user).Error
}

func (r *UserRepository) GetUserByID(userID string) (*models.User, error) {
	var user models.User
	err := r.DB.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.DB.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.DB.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetCredits returns the user's balances, or zeros when the user does not
// exist. A missing user is not an error on this path.
func (r *UserRepository) GetCredits(userID string) (models.CreditsResponse, error) {
	user, err := r.GetUserByID(userID)
	if errors.Is(err, ErrUserNotFound) {
		return models.CreditsResponse{}, nil
	}
	if err != nil {
		return models.CreditsResponse{}, err
	}
	return models.CreditsResponse{
		InterviewCredits: user.InterviewCredits,
		ResumeCredits:    user.ResumeCredits,
	}, nil
}

// DeductInterviewCredit decrements unconditionally via an atomic column
// expression. It never checks sufficiency; callers gate on balance first.
func (r *UserRepository) DeductInterviewCredit(userID string) error {
	return r.DB.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("interview_credits", gorm.Expr("interview_credits - ?", 1)).Error
}

func (r *UserRepository) DeductResumeCredit(userID string) error {
	return r.DB.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("resume_credits", gorm.Expr("resume_credits - ?", 1)).Error
}

// RenewResumeCreditsIfNewMonth resets the resume allowance when the last
// renewal happened in a different calendar month. Pull-based: invoked only
// from the analyze-resume path, never from a scheduler.
func (r *UserRepository) RenewResumeCreditsIfNewMonth(userID string, allowance int, now time.Time) (bool, error) {
	user, err := r.GetUserByID(userID)
	if err != nil {
		return false, err
	}
	if user.ProSubscriber {
		return false, nil
	}

	lastYear, lastMonth, _ := user.ResumeCreditsRenewedAt.Date()
	year, month, _ := now.Date()
	if lastYear == year && lastMonth == month {
		return false, nil
	}

	err = r.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"resume_credits":            allowance,
			"resume_credits_renewed_at": now,
		}).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

// GrantUnlimited marks the user as a pro subscriber and sets both
// counters to the unlimited sentinel.
func (r *UserRepository) GrantUnlimited(userID, subscriptionID string) error {
	result := r.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"interview_credits": models.UnlimitedCredits,
			"resume_credits":    models.UnlimitedCredits,
			"pro_subscriber":    true,
			"subscription_id":   subscriptionID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
