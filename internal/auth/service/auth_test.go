package service

import (
	"context"
	"io"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tripora/internal/auth/token"
	userserrors "tripora/internal/users/errors"
	"tripora/pkg/config"
	apperrors "tripora/pkg/errors"
	"tripora/pkg/logger"
	"tripora/pkg/model"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type mockUserRepo struct {
	byUsername map[string]*model.User
	byID       map[string]*model.User
}

func (m *mockUserRepo) Create(_ context.Context, _ *model.User) error { return nil }

func (m *mockUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	user, ok := m.byID[id]
	if !ok {
		return nil, userserrors.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	user, ok := m.byUsername[username]
	if !ok {
		return nil, userserrors.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.byID)), nil
}

func testAuthService(t *testing.T) (AuthService, *token.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	admin := &model.User{
		ID:       "u-1",
		Username: "admin",
		Email:    "admin@tripora.test",
		Password: string(hash),
		Role:     "admin",
	}
	repo := &mockUserRepo{
		byUsername: map[string]*model.User{"admin": admin},
		byID:       map[string]*model.User{"u-1": admin},
	}

	tokens := token.NewService(testSecret, time.Hour)
	log := logger.New(logger.Config{Output: io.Discard})
	return NewAuthService(repo, tokens, &config.Config{Log: log}), tokens
}

func TestLogin(t *testing.T) {
	svc, tokens := testAuthService(t)

	signed, user, err := svc.Login(context.Background(), "admin", "correct-horse")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Username != "admin" {
		t.Errorf("Username = %q, want admin", user.Username)
	}

	claims, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != "u-1" || claims.Email != "admin@tripora.test" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginFailures(t *testing.T) {
	svc, _ := testAuthService(t)

	tests := []struct {
		name     string
		username string
		password string
		wantCode string
	}{
		{name: "missing username", username: "", password: "correct-horse", wantCode: apperrors.CodeValidationFailed},
		{name: "missing password", username: "admin", password: "", wantCode: apperrors.CodeValidationFailed},
		{name: "unknown user", username: "ghost", password: "correct-horse", wantCode: apperrors.CodeInvalidCredentials},
		{name: "wrong password", username: "admin", password: "wrong", wantCode: apperrors.CodeInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tt.username, tt.password)
			if err == nil {
				t.Fatal("expected an error")
			}
			appErr := apperrors.AsAppError(err)
			if appErr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", appErr.Code, tt.wantCode)
			}
		})
	}
}

func TestLoginUnknownUserAndWrongPasswordIndistinguishable(t *testing.T) {
	svc, _ := testAuthService(t)

	_, _, errUnknown := svc.Login(context.Background(), "ghost", "whatever")
	_, _, errWrong := svc.Login(context.Background(), "admin", "wrong")

	unknownErr := apperrors.AsAppError(errUnknown)
	wrongErr := apperrors.AsAppError(errWrong)
	if unknownErr.Code != wrongErr.Code || unknownErr.Message != wrongErr.Message {
		t.Errorf("credential failures must be uniform: %v vs %v", unknownErr, wrongErr)
	}
}

func TestMe(t *testing.T) {
	svc, _ := testAuthService(t)

	user, err := svc.Me(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if user.Email != "admin@tripora.test" {
		t.Errorf("Email = %q", user.Email)
	}

	_, err = svc.Me(context.Background(), "missing")
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("Code = %q, want %q", appErr.Code, apperrors.CodeNotFound)
	}
}
