package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/golang-jwt/jwt/v4"
)

const bearerPrefix = "Bearer "

var ErrInvalidToken = fmt.Errorf("%w: invalid or expired token", entities.ErrUnauthorized)

type Claims struct {
	jwt.RegisteredClaims
	Role entities.Role `json:"role"`
}

// TokenManager issues and verifies HS256 tokens. The subject is the user's email.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration, issuer string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
}

func (m *TokenManager) Issue(p entities.Principal) (string, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Email,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Role: p.Role,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (m *TokenManager) Verify(token string) (entities.Principal, error) {
	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	_, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return entities.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !claims.VerifyIssuer(m.issuer, true) || claims.Subject == "" {
		return entities.Principal{}, ErrInvalidToken
	}

	role, err := entities.ParseRole(string(claims.Role))
	if err != nil {
		return entities.Principal{}, ErrInvalidToken
	}
	return entities.Principal{Email: claims.Subject, Role: role}, nil
}

// FromHeader extracts the token from an "Authorization: Bearer <token>" value.
func FromHeader(header string) (string, error) {
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return "", errors.Join(ErrInvalidToken, errors.New("authorization header must be a bearer token"))
	}
	return strings.TrimSpace(token), nil
}
