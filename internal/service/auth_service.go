package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Breezy-Reese/hotel/internal/auth"
	"github.com/Breezy-Reese/hotel/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	adminRepo repository.AdminRepository
	tokens    *auth.Manager
}

func NewAuthService(adminRepo repository.AdminRepository, tokens *auth.Manager) AuthService {
	return &authService{adminRepo: adminRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Deliberately indistinguishable from a wrong password.
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(admin.ID, admin.Email)
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}
