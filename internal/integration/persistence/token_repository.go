package persistence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

// TokenRepository persists refresh and password reset tokens. Tokens are
// looked up by their SHA-256 digest; the raw value is never stored.
type TokenRepository interface {
	// SaveRefreshToken saves a refresh token to the database.
	SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error

	// IsRefreshTokenValid reports whether the token exists, is not revoked and has not expired.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)

	// InvalidateRefreshToken marks a refresh token as invalidated.
	InvalidateRefreshToken(ctx context.Context, token string) error

	// InvalidateAllUserRefreshTokens invalidates all refresh tokens for a user.
	InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error

	// SavePasswordResetToken saves a password reset token to the database.
	SavePasswordResetToken(ctx context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error

	// GetPasswordResetToken returns an unused reset token or ErrInvalidResetToken.
	GetPasswordResetToken(ctx context.Context, token string) (*model.PasswordResetTokenModel, error)

	// InvalidatePasswordResetToken marks a password reset token as used.
	InvalidatePasswordResetToken(ctx context.Context, token string) error
}

// tokenRepository implements the TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository instance.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// HashToken returns the hex SHA-256 digest under which a token is stored.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// SaveRefreshToken saves a refresh token to the database.
func (r *tokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	refreshToken := &model.RefreshTokenModel{
		ID:        uuid.New(),
		TokenHash: HashToken(token),
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	if err := DBFromContext(ctx, r.db).Create(refreshToken).Error; err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// IsRefreshTokenValid reports whether the token exists, is not revoked and has not expired.
func (r *tokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	var count int64
	result := DBFromContext(ctx, r.db).
		Model(&model.RefreshTokenModel{}).
		Where("token_hash = ? AND invalidated = ? AND expires_at > ?", HashToken(token), false, time.Now().UTC()).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check refresh token: %w", result.Error)
	}
	return count > 0, nil
}

// InvalidateRefreshToken marks a refresh token as invalidated.
func (r *tokenRepository) InvalidateRefreshToken(ctx context.Context, token string) error {
	result := DBFromContext(ctx, r.db).
		Model(&model.RefreshTokenModel{}).
		Where("token_hash = ?", HashToken(token)).
		Update("invalidated", true)
	if result.Error != nil {
		return fmt.Errorf("failed to invalidate refresh token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInvalidToken
	}
	return nil
}

// InvalidateAllUserRefreshTokens invalidates all refresh tokens for a user.
func (r *tokenRepository) InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	result := DBFromContext(ctx, r.db).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ? AND invalidated = ?", userID, false).
		Update("invalidated", true)
	if result.Error != nil {
		return fmt.Errorf("failed to invalidate user refresh tokens: %w", result.Error)
	}
	return nil
}

// SavePasswordResetToken saves a password reset token to the database.
func (r *tokenRepository) SavePasswordResetToken(ctx context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error {
	resetToken := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		TokenHash: HashToken(token),
		UserID:    userID,
		Email:     email,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	if err := DBFromContext(ctx, r.db).Create(resetToken).Error; err != nil {
		return fmt.Errorf("failed to save password reset token: %w", err)
	}
	return nil
}

// GetPasswordResetToken returns an unused reset token or ErrInvalidResetToken.
func (r *tokenRepository) GetPasswordResetToken(ctx context.Context, token string) (*model.PasswordResetTokenModel, error) {
	var resetToken model.PasswordResetTokenModel
	result := DBFromContext(ctx, r.db).
		Where("token_hash = ? AND used = ?", HashToken(token), false).
		First(&resetToken)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvalidResetToken
		}
		return nil, fmt.Errorf("failed to find password reset token: %w", result.Error)
	}
	return &resetToken, nil
}

// InvalidatePasswordResetToken marks a password reset token as used.
func (r *tokenRepository) InvalidatePasswordResetToken(ctx context.Context, token string) error {
	now := time.Now().UTC()
	result := DBFromContext(ctx, r.db).
		Model(&model.PasswordResetTokenModel{}).
		Where("token_hash = ?", HashToken(token)).
		Updates(map[string]any{
			"used":    true,
			"used_at": &now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to invalidate password reset token: %w", result.Error)
	}
	return nil
}
