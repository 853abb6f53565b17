package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/george-bobby/prepify-interview-sub001/internal/models"
)

type PostRepository struct {
	DB *gorm.DB
}

// PostFilter narrows and paginates List results.
type PostFilter struct {
	AuthorID  string
	SortBy    string // created_at | likes_count | comments_count
	SortOrder string // asc | desc
	Page      int
	Limit     int
}

func (r *PostRepository) Create(post *models.Post) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	return r.DB.Create(post).Error
}

func (r *PostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post
	err := r.DB.First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *PostRepository) List(filter PostFilter) ([]models.Post, error) {
	sortBy := filter.SortBy
	switch sortBy {
	case "likes_count", "comments_count", "created_at":
	default:
		sortBy = "created_at"
	}
	order := "DESC"
	if filter.SortOrder == "asc" {
		order = "ASC"
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	query := r.DB.Order(sortBy + " " + order).
		Limit(limit).
		Offset((page - 1) * limit)
	if filter.AuthorID != "" {
		query = query.Where("user_id = ?", filter.AuthorID)
	}

	posts := []models.Post{}
	err := query.Find(&posts).Error
	return posts, err
}

// UpdateOwned edits a post's content; only the author may mutate.
func (r *PostRepository) UpdateOwned(id, requestingUserID, content string) (*models.Post, error) {
	post, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post.UserID != requestingUserID {
		return nil, ErrAccessDenied
	}

	if err := r.DB.Model(post).Updates(map[string]interface{}{
		"content":    content,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// DeleteOwned removes a post and every dependent record in one
// transaction.
func (r *PostRepository) DeleteOwned(id, requestingUserID string) error {
	post, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if post.UserID != requestingUserID {
		return ErrAccessDenied
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		var commentIDs []string
		if err := tx.Model(&models.Comment{}).Where("post_id = ?", id).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Delete(&models.CommentLike{}, "comment_id IN ?", commentIDs).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.Comment{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.PostLike{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Share{}, "post_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, "id = ?", id).Error
	})
}

// ToggleLike flips the (post, user) like record and its paired counter in
// one transaction. The unique index on the join record keeps concurrent
// toggles from double counting: of two racing inserts one fails and rolls
// back its increment, and of two racing deletes only the one that removes
// the record takes the decrement.
func (r *PostRepository) ToggleLike(postID, userID string) (*models.ToggleLikeResponse, error) {
	var out models.ToggleLikeResponse
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, "id = ?", postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		var like models.PostLike
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&like).Error
		switch {
		case err == nil:
			removed, err := removeLike(tx, &models.PostLike{}, "post_id = ? AND user_id = ?", postID, userID)
			if err != nil {
				return err
			}
			if removed {
				if err := bumpCounter(tx, &models.Post{}, postID, "likes_count", -1); err != nil {
					return err
				}
			}
			out.Liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.PostLike{PostID: postID, UserID: userID}).Error; err != nil {
				return err
			}
			if err := bumpCounter(tx, &models.Post{}, postID, "likes_count", 1); err != nil {
				return err
			}
			out.Liked = true
		default:
			return err
		}

		return tx.Model(&models.Post{}).Select("likes_count").
			Where("id = ?", postID).Scan(&out.LikesCount).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// HasLiked reports whether the user currently likes the post.
func (r *PostRepository) HasLiked(postID, userID string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}

func bumpCounter(tx *gorm.DB, model interface{}, id, column string, delta int) error {
	return tx.Model(model).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}

// removeLike deletes the like record keyed by its columns and reports
// whether this transaction removed it. Under read committed two
// concurrent unlikes can both read the row; the delete re-evaluates
// after the first commits and affects zero rows for the loser, which
// must then leave the counter alone.
func removeLike(tx *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	result := tx.Where(query, args...).Delete(model)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
