// Package auth provides the identity providers that verify bearer tokens.
package auth

import (
	"context"
	"time"

	"waffer/internal/domain/entity"
	domainerrors "waffer/internal/domain/errors"
	"waffer/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const devIssuer = "waffer-dev"

// DevClaims are the claims of a development token
type DevClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// jwtService verifies HS256 tokens signed with a shared secret, for local development
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService creates a development identity provider
func NewJWTService(secret string) (service.IdentityProvider, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{secret: []byte(secret), now: time.Now}, nil
}

// IssueDevToken signs a token for identity, valid for ttl
func IssueDevToken(secret string, identity entity.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := DevClaims{
		Email: identity.Email,
		Name:  identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    devIssuer,
			Subject:   identity.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}

// Identify implements service.IdentityProvider
func (s *jwtService) Identify(_ context.Context, tokenString string) (*entity.Identity, error) {
	claims := &DevClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(devIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}
	if claims.Email == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token has no email claim")
	}

	return &entity.Identity{UID: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}
