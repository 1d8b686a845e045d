// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/persistence"
)

const (
	tokenIssuer = "finance-planner"

	kindAccess  = "access"
	kindRefresh = "refresh"

	resetTokenTTL   = time.Hour
	resetTokenBytes = 32
)

// sessionClaims identifies the user through the standard subject claim.
type sessionClaims struct {
	Username string `json:"username"`
	Kind     string `json:"kind"`
	jwt.RegisteredClaims
}

// TokenConfig holds the signing secret and token lifetimes. Zero lifetimes
// mean one hour for access tokens and seven days for refresh tokens.
type TokenConfig struct {
	Secret               string
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
}

type tokenService struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	parser     *jwt.Parser
	store      persistence.TokenRepository
}

func NewTokenService(cfg TokenConfig, store persistence.TokenRepository) adapter.TokenService {
	s := &tokenService{
		key:        []byte(cfg.Secret),
		accessTTL:  cfg.AccessTokenDuration,
		refreshTTL: cfg.RefreshTokenDuration,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(tokenIssuer),
			jwt.WithExpirationRequired(),
		),
		store: store,
	}
	if s.accessTTL <= 0 {
		s.accessTTL = time.Hour
	}
	if s.refreshTTL <= 0 {
		s.refreshTTL = 7 * 24 * time.Hour
	}
	return s
}

func (s *tokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, username string) (*adapter.TokenPair, error) {
	now := time.Now().UTC()

	access, err := s.sign(userID, username, kindAccess, now, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.sign(userID, username, kindRefresh, now, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.store.SaveRefreshToken(ctx, refresh, userID, now.Add(s.refreshTTL)); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &adapter.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    s.accessTTL,
	}, nil
}

func (s *tokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	return s.verify(token, kindAccess)
}

// ValidateRefreshToken also requires the token to be stored and not revoked.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.verify(token, kindRefresh)
	if err != nil {
		return nil, err
	}

	active, err := s.store.IsRefreshTokenValid(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if !active {
		return nil, domainerror.ErrInvalidToken
	}
	return claims, nil
}

func (s *tokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	return s.store.InvalidateRefreshToken(ctx, token)
}

func (s *tokenService) InvalidateAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	return s.store.InvalidateAllUserRefreshTokens(ctx, userID)
}

// sign issues an HS256 token. The random jti keeps two tokens minted in the
// same second distinct.
func (s *tokenService) sign(userID uuid.UUID, username, kind string, now time.Time, ttl time.Duration) (string, error) {
	claims := sessionClaims{
		Username: username,
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

func (s *tokenService) verify(raw, kind string) (*adapter.TokenClaims, error) {
	var claims sessionClaims
	_, err := s.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("%w: %v", domainerror.ErrExpiredToken, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	}

	if claims.Kind != kind {
		return nil, fmt.Errorf("%w: not an %s token", domainerror.ErrInvalidToken, kind)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed subject", domainerror.ErrInvalidToken)
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

type passwordResetTokenService struct {
	store persistence.TokenRepository
}

func NewPasswordResetTokenService(store persistence.TokenRepository) adapter.PasswordResetTokenService {
	return &passwordResetTokenService{store: store}
}

// GenerateResetToken stores a random single-use token valid for one hour.
func (s *passwordResetTokenService) GenerateResetToken(ctx context.Context, userID uuid.UUID, email string) (*adapter.PasswordResetToken, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}

	reset := &adapter.PasswordResetToken{
		Token:     hex.EncodeToString(buf),
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().UTC().Add(resetTokenTTL),
	}
	if err := s.store.SavePasswordResetToken(ctx, reset.Token, userID, email, reset.ExpiresAt); err != nil {
		return nil, fmt.Errorf("failed to save reset token: %w", err)
	}
	return reset, nil
}

func (s *passwordResetTokenService) ValidateResetToken(ctx context.Context, token string) (*adapter.PasswordResetToken, error) {
	stored, err := s.store.GetPasswordResetToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !time.Now().UTC().Before(stored.ExpiresAt) {
		return nil, domainerror.ErrInvalidResetToken
	}
	return &adapter.PasswordResetToken{
		Token:     token,
		UserID:    stored.UserID,
		Email:     stored.Email,
		ExpiresAt: stored.ExpiresAt,
	}, nil
}

func (s *passwordResetTokenService) InvalidateResetToken(ctx context.Context, token string) error {
	return s.store.InvalidatePasswordResetToken(ctx, token)
}
