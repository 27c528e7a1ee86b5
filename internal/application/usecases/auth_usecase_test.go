package usecases

import (
	"errors"
	"testing"

	"github.com/surveyx/surveyx-api/internal/domain/repositories"
)

func setupAuth(t *testing.T) *AuthUseCase {
	t.Helper()
	db := setupTestDB(t)
	return NewAuthUseCase(repositories.NewUserRepository(db), "test-secret")
}

func TestSignupAndLogin(t *testing.T) {
	auth := setupAuth(t)

	user, err := auth.Signup("alice", "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if user.UserID == 0 {
		t.Error("expected a user id to be assigned")
	}
	if user.PasswordHash == "hunter22" {
		t.Error("password must not be stored in plain text")
	}

	token, logged, err := auth.Login("alice", "hunter22")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if logged.UserID != user.UserID {
		t.Errorf("logged in as user %d, want %d", logged.UserID, user.UserID)
	}

	userID, err := auth.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if userID != user.UserID {
		t.Errorf("token subject %d, want %d", userID, user.UserID)
	}
}

func TestSignupRejectsDuplicates(t *testing.T) {
	auth := setupAuth(t)

	if _, err := auth.Signup("alice", "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	if _, err := auth.Signup("alice", "other@example.com", "hunter22"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
	if _, err := auth.Signup("bob", "alice@example.com", "hunter22"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	auth := setupAuth(t)

	if _, err := auth.Signup("alice", "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	if _, _, err := auth.Login("alice", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials for wrong password, got %v", err)
	}
	if _, _, err := auth.Login("nobody", "hunter22"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials for unknown user, got %v", err)
	}
}

func TestVerifyTokenRejectsBadTokens(t *testing.T) {
	auth := setupAuth(t)

	if _, err := auth.VerifyToken("not-a-token"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials, got %v", err)
	}

	// Token signed with a different secret
	if _, err := auth.Signup("carol", "carol@example.com", "hunter22"); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	token, _, err := auth.Login("carol", "hunter22")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	other := NewAuthUseCase(nil, "other-secret")
	if _, err := other.VerifyToken(token); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("expected ErrBadCredentials for foreign token, got %v", err)
	}
}
