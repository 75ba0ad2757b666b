package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/baharkarakas/storefront-backend/internal/models"
)

// DefaultTokenTTL is the session lifetime handed to clients.
const DefaultTokenTTL = 7 * 24 * time.Hour

type Claims struct {
	UserID string `json:"uid"`
	// Role is a pointer so an absent claim is told apart from RoleUser.
	Role *models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 bearer tokens. It holds no session
// state, so a token stays valid until it expires or the secret is rotated.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret, issuer string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for the subject and returns it with its expiry.
func (tm *TokenManager) Issue(userID string, role models.Role) (string, time.Time, error) {
	if userID == "" || !role.Valid() {
		return "", time.Time{}, fmt.Errorf("issue token: invalid subject")
	}
	now := tm.now()
	exp := now.Add(tm.ttl)
	claims := Claims{
		UserID: userID,
		Role:   &role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tm.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return tok, claims.ExpiresAt.Time, nil
}

// Verify checks the signature over the raw segments before anything in the
// payload is decoded, then expiry, then claim shape.
func (tm *TokenManager) Verify(token string) (Identity, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Identity{}, ErrMalformed
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(tm.now),
	)

	sig, err := parser.DecodeSegment(parts[2])
	if err != nil {
		return Identity{}, ErrInvalidSignature
	}
	if err := jwt.SigningMethodHS256.Verify(parts[0]+"."+parts[1], sig, tm.secret); err != nil {
		return Identity{}, ErrInvalidSignature
	}

	claims := &Claims{}
	_, err = parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) { return tm.secret, nil })
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return Identity{}, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		// alg header other than HS256
		return Identity{}, ErrInvalidSignature
	default:
		return Identity{}, ErrMalformed
	}

	if tm.issuer != "" && claims.Issuer != tm.issuer {
		return Identity{}, ErrMalformed
	}
	if claims.UserID == "" || claims.Role == nil || claims.IssuedAt == nil {
		return Identity{}, ErrMalformed
	}
	return Identity{UserID: claims.UserID, Role: *claims.Role}, nil
}
