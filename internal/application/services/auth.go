package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"hotel-accounts-api/internal/application/ports"
	domain "hotel-accounts-api/internal/domain/account"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	accountRepository domain.Repository
}

func NewAuthService(accountRepository domain.Repository) ports.Auth {
	return &AuthService{
		accountRepository: accountRepository,
	}
}

// VerifyLogin returns ErrInvalidCredentials for an unknown email, a deleted
// account, a passwordless account and a wrong password alike, so a caller
// cannot probe which emails exist.
func (as *AuthService) VerifyLogin(ctx context.Context, email, password string) (*domain.Account, error) {
	a, err := as.accountRepository.FetchActiveByEmail(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if a == nil || a.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*a.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a, nil
}
