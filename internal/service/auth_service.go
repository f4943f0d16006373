package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"makecents/internal/auth"
	apperrors "makecents/internal/errors"
	"makecents/internal/model"
	"makecents/internal/repository"
)

// AuthService handles signup and login.
type AuthService interface {
	Signup(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (auth.Session, *model.User, error)
}

type authService struct {
	userRepo      repository.UserRepository
	hasher        *auth.Hasher
	authenticator *auth.Authenticator
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, hasher *auth.Hasher, authenticator *auth.Authenticator) AuthService {
	return &authService{
		userRepo:      userRepo,
		hasher:        hasher,
		authenticator: authenticator,
	}
}

// Signup creates a user holding the hashed password.
func (s *authService) Signup(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.NewValidationError("username", "must not be empty")
	}
	if password == "" {
		return nil, apperrors.NewValidationError("password", "must not be empty")
	}

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, classify(ctx, "find user by username", err)
	}

	user := &model.User{
		Username: username,
		Password: s.hasher.Hash(password),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent signup for the same name
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, classify(ctx, "create user", err)
	}

	slog.InfoContext(ctx, "user signed up", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and issues the session pair.
func (s *authService) Login(ctx context.Context, username, password string) (auth.Session, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return auth.Session{}, nil, apperrors.ErrAuthentication
		}
		return auth.Session{}, nil, classify(ctx, "find user by username", err)
	}

	hashed := s.hasher.Hash(password)
	if subtle.ConstantTimeCompare([]byte(hashed), []byte(user.Password)) != 1 {
		return auth.Session{}, nil, apperrors.ErrAuthentication
	}

	return s.authenticator.Issue(user.ID), user, nil
}
