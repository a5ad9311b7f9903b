package ports

import (
	"context"

	"github.com/projectpulse/project-management/internal/core/domain"
)

// LoginResult carries everything a successful login produces.
type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

// AuthService defines the registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
