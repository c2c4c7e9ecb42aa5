package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/astralune/trackstar/internal/service"
	"github.com/astralune/trackstar/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// CredentialVerifierI resolves an external sign-in credential into a
// trusted profile. Production verifies Google ID tokens; tests inject
// fakes.
type CredentialVerifierI interface {
	Verify(ctx context.Context, credential string) (*service.Profile, error)
}
