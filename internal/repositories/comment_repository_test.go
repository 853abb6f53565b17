package repositories

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/testhelpers"
)

func newSocialRepos(t *testing.T) (*PostRepository, *CommentRepository) {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	return &PostRepository{DB: db}, &CommentRepository{DB: db}
}

func TestCommentRepository_Create(t *testing.T) {
	posts, comments := newSocialRepos(t)
	post := seedPost(t, posts, "author", "post")

	comment := &models.Comment{PostID: post.ID, UserID: "user-1", Content: "first"}
	if err := comments.Create(comment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comment.ID == "" {
		t.Fatalf("expected comment ID to be set")
	}

	got, _ := posts.GetByID(post.ID)
	if got.CommentsCount != 1 {
		t.Fatalf("expected comments_count 1, got %d", got.CommentsCount)
	}

	t.Run("missing post", func(t *testing.T) {
		err := comments.Create(&models.Comment{PostID: "missing", UserID: "user-1", Content: "x"})
		if !errors.Is(err, ErrPostNotFound) {
			t.Fatalf("expected ErrPostNotFound, got %v", err)
		}
	})
}

func TestCommentRepository_Replies(t *testing.T) {
	posts, comments := newSocialRepos(t)
	post := seedPost(t, posts, "author", "post")
	parent := &models.Comment{PostID: post.ID, UserID: "user-1", Content: "parent"}
	if err := comments.Create(parent); err != nil {
		t.Fatalf("parent failed: %v", err)
	}

	reply := &models.Comment{PostID: post.ID, UserID: "user-2", ParentCommentID: &parent.ID, Content: "reply"}
	if err := comments.Create(reply); err != nil {
		t.Fatalf("reply failed: %v", err)
	}

	gotParent, _ := comments.GetByID(parent.ID)
	if gotParent.RepliesCount != 1 {
		t.Fatalf("expected replies_count 1, got %d", gotParent.RepliesCount)
	}

	t.Run("reply to a reply is rejected", func(t *testing.T) {
		err := comments.Create(&models.Comment{PostID: post.ID, UserID: "user-3", ParentCommentID: &reply.ID, Content: "nested"})
		if !errors.Is(err, ErrInvalidParent) {
			t.Fatalf("expected ErrInvalidParent, got %v", err)
		}
	})

	t.Run("parent on a different post is rejected", func(t *testing.T) {
		other := seedPost(t, posts, "author", "other post")
		err := comments.Create(&models.Comment{PostID: other.ID, UserID: "user-3", ParentCommentID: &parent.ID, Content: "cross"})
		if !errors.Is(err, ErrInvalidParent) {
			t.Fatalf("expected ErrInvalidParent, got %v", err)
		}
	})

	t.Run("list replies", func(t *testing.T) {
		replies, err := comments.ListReplies(parent.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(replies) != 1 || replies[0].Content != "reply" {
			t.Fatalf("unexpected replies: %+v", replies)
		}
	})

	t.Run("top-level listing excludes replies", func(t *testing.T) {
		topLevel, err := comments.ListByPost(post.ID, 1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(topLevel) != 1 || topLevel[0].ID != parent.ID {
			t.Fatalf("expected only the parent comment, got %+v", topLevel)
		}
	})
}

func TestCommentRepository_DeleteOwned(t *testing.T) {
	posts, comments := newSocialRepos(t)
	post := seedPost(t, posts, "author", "post")
	parent := &models.Comment{PostID: post.ID, UserID: "user-1", Content: "parent"}
	if err := comments.Create(parent); err != nil {
		t.Fatalf("parent failed: %v", err)
	}
	reply := &models.Comment{PostID: post.ID, UserID: "user-2", ParentCommentID: &parent.ID, Content: "reply"}
	if err := comments.Create(reply); err != nil {
		t.Fatalf("reply failed: %v", err)
	}

	if err := comments.DeleteOwned(parent.ID, "intruder"); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}

	// deleting the parent takes its replies with it
	if err := comments.DeleteOwned(parent.ID, "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := comments.GetByID(reply.ID); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected reply to be gone, got %v", err)
	}

	got, _ := posts.GetByID(post.ID)
	if got.CommentsCount != 0 {
		t.Fatalf("expected comments_count back to 0, got %d", got.CommentsCount)
	}
}

func TestCommentRepository_ToggleLike(t *testing.T) {
	posts, comments := newSocialRepos(t)
	post := seedPost(t, posts, "author", "post")
	comment := &models.Comment{PostID: post.ID, UserID: "user-1", Content: "likeable"}
	if err := comments.Create(comment); err != nil {
		t.Fatalf("comment failed: %v", err)
	}

	first, err := comments.ToggleLike(comment.ID, "user-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Liked || first.LikesCount != 1 {
		t.Fatalf("expected liked with count 1, got %+v", first)
	}

	second, err := comments.ToggleLike(comment.ID, "user-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Liked || second.LikesCount != 0 {
		t.Fatalf("expected unliked with count 0, got %+v", second)
	}

	if _, err := comments.ToggleLike("missing", "user-2"); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestCommentRepository_UnlikeZeroRowDeleteLeavesCounter(t *testing.T) {
	posts, comments := newSocialRepos(t)
	post := seedPost(t, posts, "author", "post")
	comment := &models.Comment{PostID: post.ID, UserID: "user-1", Content: "likeable"}
	if err := comments.Create(comment); err != nil {
		t.Fatalf("comment failed: %v", err)
	}

	if _, err := comments.ToggleLike(comment.ID, "user-2"); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if _, err := comments.ToggleLike(comment.ID, "user-2"); err != nil {
		t.Fatalf("unlike failed: %v", err)
	}

	err := comments.DB.Transaction(func(tx *gorm.DB) error {
		removed, err := removeLike(tx, &models.CommentLike{}, "comment_id = ? AND user_id = ?", comment.ID, "user-2")
		if err != nil {
			return err
		}
		if removed {
			t.Fatal("expected the zero-row delete to report nothing removed")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}

	var likes int64
	if err := comments.DB.Model(&models.Comment{}).Select("likes_count").
		Where("id = ?", comment.ID).Scan(&likes).Error; err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if likes != 0 {
		t.Fatalf("expected likes_count 0, got %d", likes)
	}
}
