package service

import (
	"context"
	"errors"
	"testing"

	"skillconnect/internal/models"
)

func likerRepo(firstName string) *userRepoStub {
	users := noopUserRepo()
	users.getByIDFn = func(ctx context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, FirstName: firstName}, nil
	}
	return users
}

func TestLikeServiceFirstLikeNotifiesAuthor(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(ctx context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 10}, nil
	}
	notifier := &notifierStub{}

	svc := NewLikeService(noopLikeRepo(), posts, likerRepo("Ada"), notifier)
	like, err := svc.Like(context.Background(), 3, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if like == nil || like.UserID != 3 || like.PostID != 5 {
		t.Fatalf("unexpected like record: %#v", like)
	}

	if len(notifier.created) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notifier.created))
	}
	n := notifier.created[0]
	if n.UserID != 10 {
		t.Fatalf("expected notification for post author 10, got %d", n.UserID)
	}
	if n.Title != "You have a new like for your post" {
		t.Fatalf("unexpected title %q", n.Title)
	}
	if n.Message != "Ada has liked to your post" {
		t.Fatalf("unexpected message %q", n.Message)
	}
}

func TestLikeServiceRepeatLikeIsIdempotent(t *testing.T) {
	likes := noopLikeRepo()
	likes.createFn = func(context.Context, *models.Like) (bool, error) {
		return false, nil // already liked
	}
	existing := &models.Like{ID: 77, UserID: 3, PostID: 5}
	likes.getByUserAndPostFn = func(context.Context, uint, uint) (*models.Like, error) {
		return existing, nil
	}
	notifier := &notifierStub{}

	svc := NewLikeService(likes, noopPostRepo(), likerRepo("Ada"), notifier)
	like, err := svc.Like(context.Background(), 3, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if like != existing {
		t.Fatalf("expected the existing like record back, got %#v", like)
	}
	if len(notifier.created) != 0 {
		t.Fatalf("repeat like must not notify again, got %d notifications", len(notifier.created))
	}
}

func TestLikeServiceSelfLikeStillNotifies(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(ctx context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 3}, nil // liker owns the post
	}
	notifier := &notifierStub{}

	svc := NewLikeService(noopLikeRepo(), posts, likerRepo("Ada"), notifier)
	if _, err := svc.Like(context.Background(), 3, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifier.created) != 1 || notifier.created[0].UserID != 3 {
		t.Fatalf("expected self-notification, got %#v", notifier.created)
	}
}

func TestLikeServiceMissingPost(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(ctx context.Context, id, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}

	svc := NewLikeService(noopLikeRepo(), posts, likerRepo("Ada"), &notifierStub{})
	_, err := svc.Like(context.Background(), 3, 5)
	if err == nil {
		t.Fatal("expected not-found error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}

func TestLikeServiceUnlike(t *testing.T) {
	likes := noopLikeRepo()
	present := true
	likes.deleteFn = func(context.Context, uint, uint) (bool, error) {
		was := present
		present = false
		return was, nil
	}

	svc := NewLikeService(likes, noopPostRepo(), likerRepo("Ada"), &notifierStub{})
	ctx := context.Background()

	removed, err := svc.Unlike(ctx, 3, 5)
	if err != nil || !removed {
		t.Fatalf("expected first unlike to remove, got removed=%v err=%v", removed, err)
	}

	removed, err = svc.Unlike(ctx, 3, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed {
		t.Fatal("expected second unlike to report false")
	}
}

func TestLikeServiceNotificationFailureKeepsLike(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(ctx context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 10}, nil
	}
	notifier := &notifierStub{err: errors.New("sink down")}

	svc := NewLikeService(noopLikeRepo(), posts, likerRepo("Ada"), notifier)
	like, err := svc.Like(context.Background(), 3, 5)
	if err != nil {
		t.Fatalf("like must survive a failed notification, got %v", err)
	}
	if like == nil || like.UserID != 3 || like.PostID != 5 {
		t.Fatalf("unexpected like record: %#v", like)
	}
}

func TestLikeServiceRepeatLikeSurvivesRemovedPost(t *testing.T) {
	// The edge check runs before any lookups, so a repeat like still returns
	// the record after the post has been deleted.
	likes := noopLikeRepo()
	existing := &models.Like{ID: 9, UserID: 3, PostID: 5}
	likes.getByUserAndPostFn = func(context.Context, uint, uint) (*models.Like, error) {
		return existing, nil
	}
	posts := noopPostRepo()
	posts.getByIDFn = func(ctx context.Context, id, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}

	svc := NewLikeService(likes, posts, likerRepo("Ada"), &notifierStub{})
	like, err := svc.Like(context.Background(), 3, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if like != existing {
		t.Fatalf("expected the existing like record back, got %#v", like)
	}
}

func TestLikeServiceCreatedLikeIsReturnedDirectly(t *testing.T) {
	// The insert populates the record; no re-read that a concurrent unlike
	// could turn into a nil result.
	likes := noopLikeRepo()
	likes.createFn = func(_ context.Context, l *models.Like) (bool, error) {
		l.ID = 101
		return true, nil
	}
	likes.getByUserAndPostFn = func(context.Context, uint, uint) (*models.Like, error) {
		return nil, nil // concurrent unlike would make a re-read come up empty
	}
	posts := noopPostRepo()
	posts.getByIDFn = func(ctx context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 10}, nil
	}

	svc := NewLikeService(likes, posts, likerRepo("Ada"), &notifierStub{})
	like, err := svc.Like(context.Background(), 3, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if like == nil || like.ID != 101 {
		t.Fatalf("expected the inserted record with its generated ID, got %#v", like)
	}
}
