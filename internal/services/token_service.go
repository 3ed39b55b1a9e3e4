package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/adanyl0v/go-task-services/internal/models"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = time.Hour

type TokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type tokenServiceImpl struct {
	signingKey []byte
	issuer     string
	now        func() time.Time
}

// NewTokenService returns a TokenService signing with HS256. A nil now
// defaults to time.Now.
func NewTokenService(
	signingKey []byte,
	issuer string,
	now func() time.Time,
) TokenService {
	if now == nil {
		now = time.Now
	}
	return &tokenServiceImpl{
		signingKey: signingKey,
		issuer:     issuer,
		now:        now,
	}
}

func (s *tokenServiceImpl) Issue(username string) (*IssuedToken, error) {
	return IssueToken(s.signingKey, s.issuer, username, s.now())
}

func (s *tokenServiceImpl) Verify(token string) (*models.Identity, error) {
	return VerifyToken(s.signingKey, s.issuer, token, s.now())
}

// IssueToken signs a token for username valid from now until now+TokenTTL.
func IssueToken(
	signingKey []byte,
	issuer string,
	username string,
	now time.Time,
) (*IssuedToken, error) {
	tokenUUID, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate id: %w", err)
	}

	expiresAt := now.Add(TokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenUUID.String(),
			Issuer:    issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString(signingKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &IssuedToken{
		Token:     signed,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}, nil
}

// VerifyToken validates the token against signingKey as of now. It depends
// on nothing but its arguments.
func VerifyToken(
	signingKey []byte,
	issuer string,
	token string,
	now time.Time,
) (*models.Identity, error) {
	t, err := jwt.ParseWithClaims(
		token,
		&TokenClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := t.Claims.(*TokenClaims)
	if !ok || claims.Username == "" {
		return nil, fmt.Errorf("%w: missing username claim", ErrTokenInvalid)
	}

	identity := &models.Identity{Username: claims.Username}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}
