package service

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"artist-mgmt/pkg/apierror"
)

// TokenService mints and verifies stateless RS256 bearer tokens bound
// to a user identity and role set. There is no revocation list; validity
// is purely signature plus expiry.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	ttl        time.Duration
	users      UserStore
}

// NewTokenService loads the PEM keypair from disk. A missing or
// malformed key file is a boot-time hard failure; callers must not
// retry.
func NewTokenService(privateKeyPath, publicKeyPath string, ttl time.Duration, users UserStore) (*TokenService, error) {
	privatePEM, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	publicPEM, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	return &TokenService{privateKey: privateKey, publicKey: publicKey, ttl: ttl, users: users}, nil
}

// IssueToken looks up the backing user record by email and returns a
// signed compact token carrying the role authority list plus user_id
// and email claims. Subject is the email; expiry is issuance plus the
// configured TTL.
func (s *TokenService) IssueToken(ctx context.Context, email string, extra map[string]any) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}
	claims["role"] = []string{string(user.Role)}
	claims["user_id"] = user.ID
	claims["email"] = user.Email
	claims["sub"] = user.Email
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// ExtractClaims parses and verifies the token against the public key.
// An elapsed TTL surfaces as an Expired-kind error; anything else that
// fails verification surfaces as Unauthorized.
func (s *TokenService) ExtractClaims(tokenString string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return s.publicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apierror.Expired("token has expired")
		}
		return nil, apierror.Unauthorized("invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, apierror.Unauthorized("invalid token claims")
	}
	return claims, nil
}

func (s *TokenService) ExtractSubject(tokenString string) (string, error) {
	claims, err := s.ExtractClaims(tokenString)
	if err != nil {
		return "", err
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", apierror.Unauthorized("invalid token subject")
	}
	return subject, nil
}

// IsExpired reports whether the token verified but its TTL has elapsed.
func (s *TokenService) IsExpired(tokenString string) bool {
	_, err := s.ExtractClaims(tokenString)
	return apierror.KindOf(err) == apierror.KindExpired
}

// IsValid reports whether the token's subject matches the given
// principal email and the token is not expired.
func (s *TokenService) IsValid(tokenString, email string) bool {
	subject, err := s.ExtractSubject(tokenString)
	if err != nil {
		return false
	}
	return subject == email
}
