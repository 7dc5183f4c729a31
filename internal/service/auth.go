package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/liyedanpdx/WEB602-Project-2/internal/model"
	"github.com/liyedanpdx/WEB602-Project-2/internal/repository"
	"github.com/liyedanpdx/WEB602-Project-2/internal/session"
	"github.com/liyedanpdx/WEB602-Project-2/internal/validation"
)

// AuthService verifies credentials, creates user accounts, and manages
// the sessions that prove authentication on later requests.
type AuthService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	sessions *session.Manager
	logger   *logrus.Logger
}

func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher, sessions *session.Manager, logger *logrus.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		sessions: sessions,
		logger:   logger,
	}
}

// Register validates the form, hashes the password, and stores the new
// user. User-correctable problems (bad input, taken username or email)
// come back as field errors; err is reserved for internal failures.
// Nothing is persisted unless every check passes.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, validation.Errors, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)

	if errs := validation.Registration(req.Username, req.Email, req.Phone, req.Password); !errs.Empty() {
		return nil, errs, nil
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       req.Username,
		Email:          req.Email,
		Phone:          req.Phone,
		PasswordHashed: hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Duplicates surface as form errors, same shape as validation.
		if errors.Is(err, model.ErrUsernameExists) {
			return nil, validation.Errors{{Field: "username", Message: "A user with the given username is already registered"}}, nil
		}
		if errors.Is(err, model.ErrEmailExists) {
			return nil, validation.Errors{{Field: "email", Message: "A user with the given email is already registered"}}, nil
		}
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("user registered")
	return user, nil, nil
}

// Login authenticates a user with username and password. Unknown
// username and wrong password both return ErrInvalidCredentials so the
// form cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(req.Password, user.PasswordHashed) {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

// IssueSession creates a session for the user and returns the signed
// cookie value to set on the response.
func (s *AuthService) IssueSession(ctx context.Context, userID int64) (string, error) {
	value, err := s.sessions.Issue(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to issue session: %w", err)
	}
	return value, nil
}

// ResolveUser is the authentication guard: it maps a session cookie to
// the logged-in user. A stale session whose user has since been deleted
// fails the same way an invalid cookie does.
func (s *AuthService) ResolveUser(ctx context.Context, cookieValue string) (*model.User, error) {
	sess, err := s.sessions.Resolve(ctx, cookieValue)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			s.logger.WithField("user_id", sess.UserID).Warn("session references missing user")
			return nil, session.ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

// Logout destroys the session behind the cookie. Idempotent: a second
// logout, or one with a garbage cookie, succeeds quietly.
func (s *AuthService) Logout(ctx context.Context, cookieValue string) error {
	return s.sessions.Destroy(ctx, cookieValue)
}

// ListUsers returns every registration for the administrative view.
func (s *AuthService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// Cookie helpers exposed for the handlers.
func (s *AuthService) NewSessionCookie(value string) *http.Cookie { return s.sessions.NewCookie(value) }
func (s *AuthService) ExpiredSessionCookie() *http.Cookie         { return s.sessions.ExpiredCookie() }
