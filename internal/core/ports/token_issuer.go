package ports

import "github.com/projectpulse/project-management/internal/core/domain"

// AccessClaims is the identity carried by a verified access token.
type AccessClaims struct {
	UserID string
	Email  string
	Name   string
}

// TokenIssuer signs and verifies the two token kinds. Access and refresh
// tokens use distinct secrets and distinct lifetimes.
type TokenIssuer interface {
	IssueAccessToken(user *domain.User) (string, error)
	IssueRefreshToken(user *domain.User) (string, error)
	VerifyAccessToken(token string) (*AccessClaims, error)
	// VerifyRefreshToken returns the user id the token was minted for.
	VerifyRefreshToken(token string) (string, error)
}
