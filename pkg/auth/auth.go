// Package auth issues and verifies bearer tokens and hashes credentials.
// The authenticated principal is passed explicitly into the service layer;
// nothing downstream reads ambient request state.
package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role classifies a principal.
type Role string

// Roles.
const (
	RoleUser     Role = "user"
	RoleOperator Role = "operator"
	RoleAgent    Role = "agent"
)

// Principal is the authenticated identity attached to every request.
type Principal struct {
	UserID   string
	TenantID string
	Role     Role
}

// IsOperator reports whether the principal is a platform operator.
func (p Principal) IsOperator() bool { return p.Role == RoleOperator }

// IsAgent reports whether the principal is a build agent.
func (p Principal) IsAgent() bool { return p.Role == RoleAgent }

// TokenIssuer signs and verifies HS256 bearer tokens.
type TokenIssuer struct {
	key []byte
	ttl time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given signing key and TTL.
func NewTokenIssuer(signingKey string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{key: []byte(signingKey), ttl: ttl}
}

type claims struct {
	TenantID string `json:"tid"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issue returns a signed bearer token for the principal.
func (t *TokenIssuer) Issue(p Principal) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		TenantID: p.TenantID,
		Role:     string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})
	signed, err := token.SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a bearer token and returns the principal it carries.
func (t *TokenIssuer) Verify(tokenStr string) (Principal, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenStr, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.key, nil
	})
	if err != nil || !token.Valid {
		return Principal{}, fmt.Errorf("invalid token: %w", err)
	}
	role := Role(c.Role)
	switch role {
	case RoleUser, RoleOperator, RoleAgent:
	default:
		return Principal{}, fmt.Errorf("invalid token: unknown role %q", c.Role)
	}
	return Principal{UserID: c.Subject, TenantID: c.TenantID, Role: role}, nil
}

// NewSalt returns a random hex salt for password hashing.
func NewSalt() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword returns the hex digest of salt+password.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password matches the stored hash.
// Constant-time comparison.
func VerifyPassword(password, salt, storedHash string) bool {
	computed := HashPassword(password, salt)
	return hmac.Equal([]byte(computed), []byte(storedHash))
}
