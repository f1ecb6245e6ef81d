package services

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestAuthServiceLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("tournament-director"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	service := NewAuthService(string(hash))

	if err := service.Login(context.Background(), LoginInput{Password: "tournament-director"}); err != nil {
		t.Fatalf("expected successful login, got %v", err)
	}

	if err := service.Login(context.Background(), LoginInput{Password: "wrong"}); !errors.Is(err, ErrAuthInvalidCredentials) {
		t.Fatalf("expected ErrAuthInvalidCredentials, got %v", err)
	}

	if err := service.Login(context.Background(), LoginInput{}); !errors.Is(err, ErrAuthInvalidCredentials) {
		t.Fatalf("expected ErrAuthInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthServiceLoginWithoutConfiguredHash(t *testing.T) {
	service := NewAuthService("")

	if err := service.Login(context.Background(), LoginInput{Password: "anything"}); !errors.Is(err, ErrAuthInvalidCredentials) {
		t.Fatalf("expected ErrAuthInvalidCredentials, got %v", err)
	}
}
