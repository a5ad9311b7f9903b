package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/projectpulse/project-management/internal/core/domain"
	"github.com/projectpulse/project-management/internal/core/ports"
)

// accessClaims is the signed claim set of an access token. Subject holds the
// user id.
type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// refreshClaims carries only the registered claims; Subject holds the user id.
type refreshClaims struct {
	jwt.RegisteredClaims
}

// JWTIssuer signs access and refresh tokens with HS256 using separate secrets
// and lifetimes.
type JWTIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewJWTIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTIssuer {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &JWTIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (i *JWTIssuer) IssueAccessToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTTL)),
		},
		Email: user.Email,
		Name:  user.FullName(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.accessSecret)
}

func (i *JWTIssuer) IssueRefreshToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := refreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.refreshTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.refreshSecret)
}

func (i *JWTIssuer) VerifyAccessToken(token string) (*ports.AccessClaims, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.accessSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &ports.AccessClaims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}

func (i *JWTIssuer) VerifyRefreshToken(token string) (string, error) {
	claims := &refreshClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.refreshSecret, nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
