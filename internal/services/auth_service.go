package services

import (
	"context"
	"os"
	"strings"

	"safar/internal/models/request_models"
	"safar/pkg/utils"
)

// AuthService authenticates the single admin account. Credentials come from
// the environment and the whole surface is gated by ADMIN_ENABLED; there is
// no user table. ADMIN_PASSWORD_HASH (bcrypt) is preferred, ADMIN_PASSWORD is
// accepted for local development.
type AuthService interface {
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
}

type authService struct {
	enabled      bool
	email        string
	password     string
	passwordHash string
}

func NewAuthService() AuthService {
	return &authService{
		enabled:      strings.EqualFold(os.Getenv("ADMIN_ENABLED"), "true"),
		email:        os.Getenv("ADMIN_EMAIL"),
		password:     os.Getenv("ADMIN_PASSWORD"),
		passwordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

func (s *authService) Login(_ context.Context, req request_models.LoginRequest) (string, error) {
	if !s.enabled {
		return "", utils.ErrAdminDisabled
	}
	if s.email == "" || !strings.EqualFold(req.Email, s.email) {
		return "", utils.ErrInvalidCredentials
	}

	if s.passwordHash != "" {
		if err := utils.ComparePasswords(s.passwordHash, req.Password); err != nil {
			return "", utils.ErrInvalidCredentials
		}
	} else if s.password == "" || req.Password != s.password {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(s.email, "admin")
	if err != nil {
		return "", err
	}
	return token, nil
}
