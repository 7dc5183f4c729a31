package service

import (
	"context"

	"github.com/liyedanpdx/WEB602-Project-2/internal/model"
)

// Function-field mocks for the repository interfaces. Each test sets
// only the behavior it cares about; unset calls return not-found.

type mockUserRepository struct {
	createFn           func(ctx context.Context, u *model.User) error
	getByIDFn          func(ctx context.Context, id int64) (*model.User, error)
	getByUsernameFn    func(ctx context.Context, username string) (*model.User, error)
	existsByUsernameFn func(ctx context.Context, username string) (bool, error)
	existsByEmailFn    func(ctx context.Context, email string) (bool, error)
	listFn             func(ctx context.Context) ([]model.User, error)
	addLikeFn          func(ctx context.Context, userID, postID int64) (bool, error)
	removeLikeFn       func(ctx context.Context, userID, postID int64) (bool, error)

	createCalls int
}

func (m *mockUserRepository) Create(ctx context.Context, u *model.User) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsByUsernameFn != nil {
		return m.existsByUsernameFn(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsByEmailFn != nil {
		return m.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]model.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) AddLike(ctx context.Context, userID, postID int64) (bool, error) {
	if m.addLikeFn != nil {
		return m.addLikeFn(ctx, userID, postID)
	}
	return false, nil
}

func (m *mockUserRepository) RemoveLike(ctx context.Context, userID, postID int64) (bool, error) {
	if m.removeLikeFn != nil {
		return m.removeLikeFn(ctx, userID, postID)
	}
	return false, nil
}

type mockPostRepository struct {
	createFn          func(ctx context.Context, p *model.Post) error
	getByIDFn         func(ctx context.Context, id int64) (*model.Post, error)
	listFn            func(ctx context.Context) ([]model.Post, error)
	existsFn          func(ctx context.Context, id int64) (bool, error)
	adjustLikeCountFn func(ctx context.Context, postID int64, delta int) (int, error)
}

func (m *mockPostRepository) Create(ctx context.Context, p *model.Post) error {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	return nil
}

func (m *mockPostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrPostNotFound
}

func (m *mockPostRepository) List(ctx context.Context) ([]model.Post, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockPostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, id)
	}
	return false, nil
}

func (m *mockPostRepository) AdjustLikeCount(ctx context.Context, postID int64, delta int) (int, error) {
	if m.adjustLikeCountFn != nil {
		return m.adjustLikeCountFn(ctx, postID, delta)
	}
	return 0, model.ErrPostNotFound
}
