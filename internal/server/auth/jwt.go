// Package auth issues and verifies identity tokens and holds the
// authorization guards that decide what an identity may do.
package auth

import (
	"context"
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the username plus the registered claims
// (iat always, exp only when a validity is configured).
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 identity tokens with a single
// process-wide secret.
type TokenService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// NewTokenService builds a TokenService. A zero validity issues tokens
// without an expiry claim.
func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	return &TokenService{secret: secret, validity: validity, now: time.Now}
}

// Issue signs a token for id.
func (s *TokenService) Issue(id Identity) (string, error) {
	now := s.now()
	claims := Claims{
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.validity > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.validity))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify decodes tokenString. Every failure, including an empty string, is
// reported as common.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, common.ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid || claims.Username == "" {
		return Identity{}, common.ErrInvalidToken
	}

	return Identity{Username: claims.Username}, nil
}

// Authenticate is the fail-open step shared by every transport: a verified
// token yields a context carrying its identity, anything else returns ctx
// unchanged.
func (s *TokenService) Authenticate(ctx context.Context, tokenString string) context.Context {
	id, err := s.Verify(tokenString)
	if err != nil {
		return ctx
	}
	return WithIdentity(ctx, id)
}
