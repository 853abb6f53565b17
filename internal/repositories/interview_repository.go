package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/utils/pagination"
)

type InterviewRepository struct {
	DB *gorm.DB
}

// InterviewFilter narrows and paginates ListByUser results.
type InterviewFilter struct {
	Status string
	Mode   string
	Limit  int
	Cursor string
}

const defaultListLimit = 20

func (r *InterviewRepository) Create(interview *models.Interview) error {
	if interview.ID == "" {
		interview.ID = uuid.New().String()
	}
	if interview.Status == "" {
		interview.Status = models.StatusNotStarted
	}
	return r.DB.Create(interview).Error
}

func (r *InterviewRepository) GetByID(id string) (*models.Interview, error) {
	var interview models.Interview
	err := r.DB.Preload("Responses", func(db *gorm.DB) *gorm.DB {
		return db.Order("question_index ASC")
	}).First(&interview, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInterviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

// ListByUser returns the user's interviews ordered by createdAt descending,
// with an opaque cursor for the next page.
func (r *InterviewRepository) ListByUser(userID string, filter InterviewFilter) ([]models.Interview, *string, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}

	cursor, err := pagination.Decode(filter.Cursor)
	if err != nil {
		return nil, nil, err
	}

	query := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit + 1)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Mode != "" {
		query = query.Where("mode = ?", filter.Mode)
	}
	if cursor.CreatedUnix > 0 {
		ts := time.UnixMilli(cursor.CreatedUnix)
		query = query.Where("(created_at < ? OR (created_at = ? AND id < ?))", ts, ts, cursor.ID)
	}

	interviews := []models.Interview{}
	if err := query.Find(&interviews).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(interviews) > limit {
		last := interviews[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			ID:          last.ID,
			CreatedUnix: last.CreatedAt.UnixMilli(),
		})
		nextToken = &token
		interviews = interviews[:limit]
	}

	return interviews, nextToken, nil
}

// Update applies a partial update, always stamping updated_at.
func (r *InterviewRepository) Update(id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.DB.Model(&models.Interview{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

// UpsertResponse writes the response for its question index. A second
// evaluation of the same index overwrites the earlier row without reading
// it first: last write wins per index.
func (r *InterviewRepository) UpsertResponse(response *models.InterviewResponse) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "interview_id"}, {Name: "question_index"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"question", "answer", "score", "feedback", "strengths", "improvements", "updated_at",
		}),
	}).Create(response).Error
}

// Complete is the terminal transition: status completed, completedAt now.
func (r *InterviewRepository) Complete(id string, finalScore *int) error {
	updates := map[string]interface{}{
		"status":       models.StatusCompleted,
		"completed_at": time.Now(),
	}
	if finalScore != nil {
		updates["final_score"] = *finalScore
	}
	return r.Update(id, updates)
}

// DeleteOwned removes an interview after verifying ownership. Associated
// feedback and responses go first, in one transaction.
func (r *InterviewRepository) DeleteOwned(id, requestingUserID string) error {
	var interview models.Interview
	err := r.DB.First(&interview, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInterviewNotFound
	}
	if err != nil {
		return err
	}
	if interview.UserID != requestingUserID {
		return ErrAccessDenied
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Feedback{}, "interview_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.InterviewResponse{}, "interview_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Interview{}, "id = ?", id).Error
	})
}

// GetUserStats reduces the user's interviews in memory; there is no
// server-side aggregation query.
func (r *InterviewRepository) GetUserStats(userID string) (*models.UserStats, error) {
	interviews := []models.Interview{}
	if err := r.DB.Where("user_id = ?", userID).Find(&interviews).Error; err != nil {
		return nil, err
	}

	stats := &models.UserStats{Total: len(interviews)}
	scored := 0
	for _, interview := range interviews {
		switch interview.Status {
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusInProgress:
			stats.InProgress++
		}
		if interview.FinalScore != nil {
			stats.TotalScore += *interview.FinalScore
			scored++
		}
	}
	if scored > 0 {
		stats.AverageScore = float64(stats.TotalScore) / float64(scored)
	}
	return stats, nil
}
