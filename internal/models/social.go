package models

import (
	"time"
)

// Post is an author-owned feed entry. The counters are denormalized and
// kept equal to the corresponding join-record counts by the transactional
// toggle operations in the post repository.
type Post struct {
	ID      string `gorm:"primaryKey" json:"id"`
	UserID  string `gorm:"not null;index" json:"userId"`
	Content string `gorm:"type:text;not null" json:"content"`

	LikesCount    int `gorm:"default:0" json:"likesCount"`
	CommentsCount int `gorm:"default:0" json:"commentsCount"`
	SharesCount   int `gorm:"default:0" json:"sharesCount"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Comment supports one level of threading via ParentCommentID.
type Comment struct {
	ID              string  `gorm:"primaryKey" json:"id"`
	PostID          string  `gorm:"not null;index" json:"postId"`
	UserID          string  `gorm:"not null;index" json:"userId"`
	ParentCommentID *string `gorm:"index" json:"parentCommentId,omitempty"`
	Content         string  `gorm:"type:text;not null" json:"content"`

	LikesCount   int `gorm:"default:0" json:"likesCount"`
	RepliesCount int `gorm:"default:0" json:"repliesCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostLike enforces at-most-one-like-per-user through its unique index.
type PostLike struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	PostID    string    `gorm:"not null;uniqueIndex:idx_post_user_like" json:"postId"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_post_user_like" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CommentID string    `gorm:"not null;uniqueIndex:idx_comment_user_like" json:"commentId"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_comment_user_like" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Share records a repost. The unique index rejects a second share of the
// same post by the same user, including under concurrent requests.
type Share struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	PostID    string    `gorm:"not null;uniqueIndex:idx_post_user_share" json:"postId"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_post_user_share" json:"userId"`
	ShareType string    `gorm:"not null;default:direct" json:"shareType"`
	QuoteText string    `gorm:"type:text" json:"quoteText,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Notification struct {
	ID      string `gorm:"primaryKey" json:"id"`
	UserID  string `gorm:"not null;index" json:"userId"`
	Type    string `gorm:"not null" json:"type"`
	Message string `gorm:"type:text;not null" json:"message"`
	// EntityID points at the subject of the notification (post, comment,
	// interview) when there is one.
	EntityID string `json:"entityId,omitempty"`
	Read     bool   `gorm:"default:false;index" json:"read"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
