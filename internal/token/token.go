// Package token issues and verifies the signed bearer tokens handed out by
// the auth endpoints.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Subject is the fixed "sub" claim of every access token.
const Subject = "access"

var (
	// ErrUnsupportedAlgorithm is returned when the configured algorithm is not an HMAC method.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	// ErrInvalidToken is returned for any token that fails verification.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Config holds token signing settings.
type Config struct {
	Secret    string
	Issuer    string
	Algorithm string
	// TTL bounds token lifetime; zero issues tokens without an exp claim.
	TTL time.Duration
}

// UserClaims is the identity payload embedded in a token. Registration
// tokens carry the name, login tokens carry the role.
type UserClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Claims is the full token payload.
type Claims struct {
	ID         string     `json:"id"`
	UserClaims UserClaims `json:"user_claims"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens. It holds no mutable state and is safe
// for concurrent use.
type Issuer struct {
	method *jwt.SigningMethodHMAC
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer creates an Issuer from cfg.
func NewIssuer(cfg Config) (*Issuer, error) {
	method, ok := jwt.GetSigningMethod(cfg.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, cfg.Algorithm)
	}
	if cfg.Secret == "" {
		return nil, errors.New("token secret is required")
	}

	return &Issuer{
		method: method,
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		now:    time.Now,
	}, nil
}

// Issue returns a signed token for the given user claims.
func (i *Issuer) Issue(user UserClaims) (string, error) {
	now := i.now()
	claims := Claims{
		ID:         user.ID,
		UserClaims: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   i.issuer,
			Subject:  Subject,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if i.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(i.ttl))
	}

	signed, err := jwt.NewWithClaims(i.method, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, algorithm, issuer, subject and expiry of
// tokenString and returns its claims.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{i.method.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithSubject(Subject),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserClaims.ID == "" {
		return nil, fmt.Errorf("%w: missing user claims", ErrInvalidToken)
	}
	return claims, nil
}
