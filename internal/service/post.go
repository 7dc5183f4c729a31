package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/liyedanpdx/WEB602-Project-2/internal/model"
	"github.com/liyedanpdx/WEB602-Project-2/internal/repository"
)

// PostService reads blog posts for rendering and owns the like toggle.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	logger   *logrus.Logger
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, logger *logrus.Logger) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// List returns all posts with IsLiked resolved for the viewer.
func (s *PostService) List(ctx context.Context, viewer *model.User) ([]model.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	if viewer != nil {
		for i := range posts {
			posts[i].IsLiked = viewer.HasLiked(posts[i].ID)
		}
	}

	return posts, nil
}

// GetByID returns one post with IsLiked resolved for the viewer.
func (s *PostService) GetByID(ctx context.Context, postID int64, viewer *model.User) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if viewer != nil {
		post.IsLiked = viewer.HasLiked(post.ID)
	}

	return post, nil
}

// ToggleLike flips the user's liked state on a post and adjusts the
// post's counter to match.
//
// The two updates are independent single-row writes, membership first,
// counter second. There is no cross-table transaction: a crash or a
// concurrent double-toggle between the writes can leave the counter
// briefly out of step with the membership lists. Likes are non-critical
// state and the drift self-corrects on later toggles, so that window is
// accepted. The counter write is skipped when the membership write
// turned out to be a no-op (a lost double-submission race), which keeps
// the race from inflating the counter.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID int64) (*model.ToggleLikeResult, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("check post exists: %w", err)
	}
	if !exists {
		return nil, model.ErrPostNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		// A valid session over a deleted user: fail, don't crash.
		return nil, err
	}

	wasLiked := user.HasLiked(postID)

	var changed bool
	var delta int
	if wasLiked {
		changed, err = s.userRepo.RemoveLike(ctx, userID, postID)
		delta = -1
	} else {
		changed, err = s.userRepo.AddLike(ctx, userID, postID)
		delta = 1
	}
	if err != nil {
		return nil, fmt.Errorf("update like list: %w", err)
	}

	var likes int
	if changed {
		likes, err = s.postRepo.AdjustLikeCount(ctx, postID, delta)
		if err != nil {
			return nil, fmt.Errorf("adjust like count: %w", err)
		}
	} else {
		post, err := s.postRepo.GetByID(ctx, postID)
		if err != nil {
			return nil, err
		}
		likes = post.LikeCount
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"post_id": postID,
		"liked":   !wasLiked,
		"likes":   likes,
	}).Debug("toggled like")

	return &model.ToggleLikeResult{Likes: likes, IsLiked: !wasLiked}, nil
}
