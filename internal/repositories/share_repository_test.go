package repositories

import (
	"errors"
	"sync"
	"testing"

	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/testhelpers"
)

func newShareRepos(t *testing.T) (*PostRepository, *ShareRepository) {
	t.Helper()
	db := testhelpers.SetupTestDB(t)
	return &PostRepository{DB: db}, &ShareRepository{DB: db}
}

func TestShareRepository_Create(t *testing.T) {
	posts, shares := newShareRepos(t)
	post := seedPost(t, posts, "author", "shareable")

	share := &models.Share{PostID: post.ID, UserID: "user-1"}
	if err := shares.Create(share); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if share.ShareType != models.ShareTypeDirect {
		t.Fatalf("expected default share type, got %q", share.ShareType)
	}

	got, _ := posts.GetByID(post.ID)
	if got.SharesCount != 1 {
		t.Fatalf("expected shares_count 1, got %d", got.SharesCount)
	}

	t.Run("duplicate is rejected", func(t *testing.T) {
		err := shares.Create(&models.Share{PostID: post.ID, UserID: "user-1"})
		if !errors.Is(err, ErrAlreadyShared) {
			t.Fatalf("expected ErrAlreadyShared, got %v", err)
		}
		// the rejected share must not bump the counter
		got, _ := posts.GetByID(post.ID)
		if got.SharesCount != 1 {
			t.Fatalf("expected shares_count unchanged, got %d", got.SharesCount)
		}
	})

	t.Run("missing post", func(t *testing.T) {
		err := shares.Create(&models.Share{PostID: "missing", UserID: "user-1"})
		if !errors.Is(err, ErrPostNotFound) {
			t.Fatalf("expected ErrPostNotFound, got %v", err)
		}
	})
}

func TestShareRepository_Delete(t *testing.T) {
	posts, shares := newShareRepos(t)
	post := seedPost(t, posts, "author", "shareable")
	if err := shares.Create(&models.Share{PostID: post.ID, UserID: "user-1"}); err != nil {
		t.Fatalf("share failed: %v", err)
	}

	if err := shares.Delete(post.ID, "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := posts.GetByID(post.ID)
	if got.SharesCount != 0 {
		t.Fatalf("expected shares_count 0, got %d", got.SharesCount)
	}

	if err := shares.Delete(post.ID, "user-1"); !errors.Is(err, ErrShareNotFound) {
		t.Fatalf("expected ErrShareNotFound, got %v", err)
	}
}

func TestShareRepository_GetByPostAndUser(t *testing.T) {
	posts, shares := newShareRepos(t)
	post := seedPost(t, posts, "author", "shareable")
	if err := shares.Create(&models.Share{PostID: post.ID, UserID: "user-1", ShareType: models.ShareTypeQuote, QuoteText: "look"}); err != nil {
		t.Fatalf("share failed: %v", err)
	}

	got, err := shares.GetByPostAndUser(post.ID, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ShareType != models.ShareTypeQuote || got.QuoteText != "look" {
		t.Fatalf("unexpected share: %+v", got)
	}

	if _, err := shares.GetByPostAndUser(post.ID, "nobody"); !errors.Is(err, ErrShareNotFound) {
		t.Fatalf("expected ErrShareNotFound, got %v", err)
	}
}

func TestShareRepository_ConcurrentSharesOneWins(t *testing.T) {
	posts, shares := newShareRepos(t)
	post := seedPost(t, posts, "author", "shareable")

	sqlDB, err := shares.DB.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- shares.Create(&models.Share{PostID: post.ID, UserID: "user-1"})
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrAlreadyShared):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 || conflicts != 1 {
		t.Fatalf("expected exactly one winner, got %d wins and %d conflicts", wins, conflicts)
	}

	got, err := posts.GetByID(post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SharesCount != 1 {
		t.Fatalf("expected shares_count 1, got %d", got.SharesCount)
	}
}
