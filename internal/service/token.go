package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"heritage-api/internal/apperr"
)

// TokenService issues and verifies the signed bearer tokens handed out at
// login. Tokens carry only the user id; everything else is looked up.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	now    func() time.Time
}

// NewTokenService accepts the HMAC algorithms HS256, HS384 and HS512.
func NewTokenService(secret, algorithm string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token secret is empty")
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &TokenService{secret: []byte(secret), method: method, now: time.Now}, nil
}

func (s *TokenService) Issue(subject uuid.UUID, ttl time.Duration) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the subject.
// Every failure is reported as apperr.ErrInvalidToken.
func (s *TokenService) Verify(token string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", apperr.ErrInvalidToken, err)
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject is not a user id", apperr.ErrInvalidToken)
	}
	return id, nil
}
