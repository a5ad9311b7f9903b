package ports

import (
	"context"

	"github.com/projectpulse/project-management/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns the stored record, re-fetched
	// by its assigned id.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateRefreshToken overwrites only the stored refresh token; no other
	// field is touched.
	UpdateRefreshToken(ctx context.Context, id, refreshToken string) error
}
