package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type LoginInput struct {
	Password string `json:"password"`
}

// AuthService проверяет пароль организатора. Учётных записей нет:
// единственный организатор задаётся bcrypt-хешем в конфигурации,
// токен выписывает HTTP-слой.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) error
}

type authService struct {
	adminPasswordHash string
}

func NewAuthService(adminPasswordHash string) AuthService {
	return &authService{adminPasswordHash: adminPasswordHash}
}

func (s *authService) Login(_ context.Context, input LoginInput) error {
	if s.adminPasswordHash == "" || input.Password == "" {
		return ErrAuthInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(input.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrAuthInvalidCredentials
		}
		return err
	}
	return nil
}
