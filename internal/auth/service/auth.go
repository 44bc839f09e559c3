package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"tripora/internal/auth/token"
	userserrors "tripora/internal/users/errors"
	"tripora/internal/users/repository"
	"tripora/pkg/config"
	apperrors "tripora/pkg/errors"
	"tripora/pkg/model"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *model.User, error)
	Me(ctx context.Context, userID string) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *token.Service
	cfg    *config.Config
}

func NewAuthService(users repository.UserRepository, tokens *token.Service, cfg *config.Config) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		cfg:    cfg,
	}
}

// Login verifies the credentials and issues a bearer token. Unknown
// usernames and wrong passwords return the same error so the endpoint
// cannot be used to enumerate accounts.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	var fields []apperrors.FieldError
	if username == "" {
		fields = append(fields, apperrors.FieldError{Field: "username", Message: "username is required"})
	}
	if password == "" {
		fields = append(fields, apperrors.FieldError{Field: "password", Message: "password is required"})
	}
	if len(fields) > 0 {
		return "", nil, apperrors.ValidationFailed(fields)
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userserrors.ErrNotFound) {
			return "", nil, apperrors.InvalidCredentials()
		}
		s.cfg.Log.Error("Failed to look up user", "error", err)
		return "", nil, apperrors.Internal("Failed to authenticate", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.InvalidCredentials()
	}

	signed, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		s.cfg.Log.Error("Failed to issue token", "error", err)
		return "", nil, apperrors.Internal("Failed to authenticate", err)
	}

	s.cfg.Log.Info("User logged in", "user_id", user.ID, "username", user.Username)
	return signed, user, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userserrors.ErrNotFound) || errors.Is(err, userserrors.ErrInvalidID) {
			return nil, apperrors.NotFound("User")
		}
		return nil, apperrors.Internal("Failed to load user", err)
	}

	return user, nil
}
