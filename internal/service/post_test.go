package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/liyedanpdx/WEB602-Project-2/internal/model"
)

func newTestPostService(postRepo *mockPostRepository, userRepo *mockUserRepository) *PostService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewPostService(postRepo, userRepo, logger)
}

// likeState wires the two mocks into a tiny stateful store so a toggle
// round trip exercises both writes.
type likeState struct {
	likeList  map[int64]bool
	likeCount int
}

func newLikeStateMocks(state *likeState) (*mockPostRepository, *mockUserRepository) {
	userRepo := &mockUserRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			u := &model.User{ID: id, Username: "alice1"}
			for postID, liked := range state.likeList {
				if liked {
					u.LikeList = append(u.LikeList, postID)
				}
			}
			return u, nil
		},
		addLikeFn: func(ctx context.Context, userID, postID int64) (bool, error) {
			if state.likeList[postID] {
				return false, nil
			}
			state.likeList[postID] = true
			return true, nil
		},
		removeLikeFn: func(ctx context.Context, userID, postID int64) (bool, error) {
			if !state.likeList[postID] {
				return false, nil
			}
			delete(state.likeList, postID)
			return true, nil
		},
	}
	postRepo := &mockPostRepository{
		existsFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
		adjustLikeCountFn: func(ctx context.Context, postID int64, delta int) (int, error) {
			state.likeCount += delta
			if state.likeCount < 0 {
				state.likeCount = 0
			}
			return state.likeCount, nil
		},
		getByIDFn: func(ctx context.Context, id int64) (*model.Post, error) {
			return &model.Post{ID: id, LikeCount: state.likeCount}, nil
		},
	}
	return postRepo, userRepo
}

func TestToggleLike_RoundTrip(t *testing.T) {
	state := &likeState{likeList: map[int64]bool{}}
	postRepo, userRepo := newLikeStateMocks(state)
	svc := newTestPostService(postRepo, userRepo)
	ctx := context.Background()

	// First toggle: like.
	result, err := svc.ToggleLike(ctx, 1, 10)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !result.IsLiked || result.Likes != 1 {
		t.Errorf("first toggle = {likes:%d isLiked:%v}, want {likes:1 isLiked:true}", result.Likes, result.IsLiked)
	}

	// Second toggle: back to the original state exactly.
	result, err = svc.ToggleLike(ctx, 1, 10)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if result.IsLiked || result.Likes != 0 {
		t.Errorf("second toggle = {likes:%d isLiked:%v}, want {likes:0 isLiked:false}", result.Likes, result.IsLiked)
	}
	if len(state.likeList) != 0 || state.likeCount != 0 {
		t.Errorf("state after round trip = %+v, want empty", state)
	}
}

func TestToggleLike_CountNeverNegative(t *testing.T) {
	// User erroneously marked as having liked a post whose counter is 0.
	userRepo := &mockUserRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, LikeList: pq.Int64Array{10}}, nil
		},
		removeLikeFn: func(ctx context.Context, userID, postID int64) (bool, error) {
			return true, nil
		},
	}
	count := 0
	postRepo := &mockPostRepository{
		existsFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
		adjustLikeCountFn: func(ctx context.Context, postID int64, delta int) (int, error) {
			count += delta
			if count < 0 {
				count = 0
			}
			return count, nil
		},
	}
	svc := newTestPostService(postRepo, userRepo)

	result, err := svc.ToggleLike(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if result.Likes != 0 {
		t.Errorf("likes = %d, want 0 (floored)", result.Likes)
	}
	if result.IsLiked {
		t.Error("isLiked = true, want false")
	}
}

func TestToggleLike_PostNotFound(t *testing.T) {
	postRepo := &mockPostRepository{
		existsFn: func(ctx context.Context, id int64) (bool, error) { return false, nil },
	}
	svc := newTestPostService(postRepo, &mockUserRepository{})

	_, err := svc.ToggleLike(context.Background(), 1, 999)
	if !errors.Is(err, model.ErrPostNotFound) {
		t.Errorf("err = %v, want ErrPostNotFound", err)
	}
}

func TestToggleLike_MissingUserFailsNotFound(t *testing.T) {
	postRepo := &mockPostRepository{
		existsFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
	}
	svc := newTestPostService(postRepo, &mockUserRepository{}) // GetByID -> ErrUserNotFound

	_, err := svc.ToggleLike(context.Background(), 1, 10)
	if !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestToggleLike_LostRaceDoesNotTouchCounter(t *testing.T) {
	adjustCalls := 0
	userRepo := &mockUserRepository{
		getByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id}, nil
		},
		// Another request added the like between our read and write.
		addLikeFn: func(ctx context.Context, userID, postID int64) (bool, error) {
			return false, nil
		},
	}
	postRepo := &mockPostRepository{
		existsFn: func(ctx context.Context, id int64) (bool, error) { return true, nil },
		adjustLikeCountFn: func(ctx context.Context, postID int64, delta int) (int, error) {
			adjustCalls++
			return 1, nil
		},
		getByIDFn: func(ctx context.Context, id int64) (*model.Post, error) {
			return &model.Post{ID: id, LikeCount: 1}, nil
		},
	}
	svc := newTestPostService(postRepo, userRepo)

	result, err := svc.ToggleLike(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if adjustCalls != 0 {
		t.Errorf("counter written %d times on a no-op membership write, want 0", adjustCalls)
	}
	if result.Likes != 1 || !result.IsLiked {
		t.Errorf("result = %+v, want {likes:1 isLiked:true}", result)
	}
}

func TestListResolvesViewerLikes(t *testing.T) {
	postRepo := &mockPostRepository{
		listFn: func(ctx context.Context) ([]model.Post, error) {
			return []model.Post{{ID: 1, LikeCount: 3}, {ID: 2}}, nil
		},
	}
	svc := newTestPostService(postRepo, &mockUserRepository{})

	viewer := &model.User{ID: 5, LikeList: pq.Int64Array{1}}
	posts, err := svc.List(context.Background(), viewer)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !posts[0].IsLiked || posts[1].IsLiked {
		t.Errorf("IsLiked = [%v %v], want [true false]", posts[0].IsLiked, posts[1].IsLiked)
	}
}
