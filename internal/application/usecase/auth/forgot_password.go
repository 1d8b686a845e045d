package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/finance-planner/backend/internal/application/adapter"
)

// ForgotPasswordInput represents the input for forgot password request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of forgot password request.
type ForgotPasswordOutput struct {
	Message string
}

// ForgotPasswordUseCase handles forgot password logic.
type ForgotPasswordUseCase struct {
	userRepo          adapter.UserRepository
	resetTokenService adapter.PasswordResetTokenService
	emailService      adapter.EmailService
	appBaseURL        string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	resetTokenService adapter.PasswordResetTokenService,
	emailService adapter.EmailService,
	appBaseURL string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:          userRepo,
		resetTokenService: resetTokenService,
		emailService:      emailService,
		appBaseURL:        appBaseURL,
	}
}

// Execute performs the forgot password request.
// It always succeeds so callers cannot learn which emails are registered.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	out := &ForgotPasswordOutput{Message: genericResetMessage}

	email := normalizeEmail(input.Email)
	if !IsValidEmail(email) {
		return out, nil
	}

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		slog.DebugContext(ctx, "forgot password requested for unknown email")
		return out, nil
	}

	resetToken, err := uc.resetTokenService.GenerateResetToken(ctx, user.ID, user.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate reset token", "error", err, "user_id", user.ID)
		return out, nil
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.appBaseURL, url.QueryEscape(resetToken.Token))

	if uc.emailService == nil {
		slog.InfoContext(ctx, "password reset token generated (email service not configured)",
			"user_id", user.ID,
			"reset_url", resetURL,
		)
		return out, nil
	}

	err = uc.emailService.QueuePasswordResetEmail(ctx, adapter.QueuePasswordResetInput{
		UserEmail: user.Email,
		UserName:  user.Username,
		ResetURL:  resetURL,
		ExpiresIn: "1 hour",
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to queue password reset email", "error", err, "user_id", user.ID)
	} else {
		slog.InfoContext(ctx, "password reset email queued", "user_id", user.ID)
	}

	return out, nil
}
