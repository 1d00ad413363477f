package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wellnesshub/employee-api/internal/core/domain"
)

// tokenTTL is the fixed validity window of every issued token.
const tokenTTL = 50 * time.Minute

// tokenClaims is the payload of an issued token: the role claim plus the
// registered subject/issued-at/expiry claims.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens. The signing
// key is fixed process configuration supplied at construction time.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue returns a compact signed token for the given subject and role,
// valid for tokenTTL from now.
func (s *TokenService) Issue(subject, role string) (string, error) {
	issuedAt := s.now()
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenTTL)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// ExtractSubject verifies the signature and returns the subject claim.
// A malformed token, a bad signature, or an unexpected signing method all
// fail with domain.ErrAuthenticationFailed.
func (s *TokenService) ExtractSubject(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// IsValid reports whether a well-formed token carries expectedSubject and has
// not expired. Verification failures are raised as domain.ErrAuthenticationFailed;
// only a well-formed-but-expired-or-mismatched token yields (false, nil).
func (s *TokenService) IsValid(token, expectedSubject string) (bool, error) {
	claims, err := s.parse(token)
	if err != nil {
		return false, err
	}
	if claims.ExpiresAt == nil {
		return false, domain.ErrAuthenticationFailed
	}
	if claims.Subject != expectedSubject {
		return false, nil
	}
	return s.now().Before(claims.ExpiresAt.Time), nil
}

// parse checks the signature only; expiry is judged by the caller so that an
// expired-but-genuine token can be told apart from a tampered one.
func (s *TokenService) parse(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %s", domain.ErrAuthenticationFailed, "token verification failed")
	}
	return claims, nil
}
