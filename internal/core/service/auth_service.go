package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/projectpulse/project-management/internal/core/domain"
	"github.com/projectpulse/project-management/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register validates and normalizes the four identity fields, hashes the
// password, and persists the new account. The returned user is sanitized.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return nil, domain.ErrAllFieldsRequired
	}

	firstName = strings.ToLower(firstName)
	lastName = strings.ToLower(lastName)
	email = strings.ToLower(email)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleMember,
	})
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domain.ErrUserCreateFailed
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created.Sanitized(), nil
}

// Login verifies credentials and issues the access/refresh token pair. The
// refresh token is persisted on the user record so it can later be
// invalidated.
//
// Only requests missing both fields are rejected up front; a request with a
// single missing field falls through to the lookup and fails there.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" && password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return &ports.LoginResult{
		User:         user.Sanitized(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
