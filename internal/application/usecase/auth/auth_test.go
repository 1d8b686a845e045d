package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/application/adapter/mocks"
	"github.com/finance-planner/backend/internal/application/usecase/auth"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

type authMocks struct {
	users     *mocks.MockUserRepository
	passwords *mocks.MockPasswordService
	tokens    *mocks.MockTokenService
	resets    *mocks.MockPasswordResetTokenService
	emails    *mocks.MockEmailService
}

func newAuthMocks(t *testing.T) authMocks {
	ctrl := gomock.NewController(t)
	return authMocks{
		users:     mocks.NewMockUserRepository(ctrl),
		passwords: mocks.NewMockPasswordService(ctrl),
		tokens:    mocks.NewMockTokenService(ctrl),
		resets:    mocks.NewMockPasswordResetTokenService(ctrl),
		emails:    mocks.NewMockEmailService(ctrl),
	}
}

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	require.True(t, errors.As(err, &authErr), "expected AuthError, got %v", err)
	return authErr.Code
}

func TestRegisterUser_Success(t *testing.T) {
	m := newAuthMocks(t)

	m.passwords.EXPECT().ValidatePasswordStrength("s3cretpass").Return(nil)
	m.users.EXPECT().ExistsByUsername(gomock.Any(), "alice").Return(false, nil)
	m.users.EXPECT().ExistsByEmail(gomock.Any(), "alice@example.com").Return(false, nil)
	m.passwords.EXPECT().HashPassword("s3cretpass").Return("hashed", nil)
	m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.tokens.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), "alice").
		Return(&adapter.TokenPair{AccessToken: "a", RefreshToken: "r", ExpiresIn: time.Hour}, nil)

	out, err := auth.NewRegisterUserUseCase(m.users, m.passwords, m.tokens).Execute(context.Background(), auth.RegisterUserInput{
		Username: " alice ",
		Email:    "Alice@Example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", out.User.Username)
	assert.Equal(t, "alice@example.com", out.User.Email)
	assert.Equal(t, "hashed", out.User.PasswordHash)
	assert.Equal(t, entity.DefaultCurrency, out.User.PreferredCurrency)
	assert.Equal(t, int64(3600), out.ExpiresIn)
}

func TestRegisterUser_Conflicts(t *testing.T) {
	t.Run("username taken", func(t *testing.T) {
		m := newAuthMocks(t)
		m.passwords.EXPECT().ValidatePasswordStrength(gomock.Any()).Return(nil)
		m.users.EXPECT().ExistsByUsername(gomock.Any(), "alice").Return(true, nil)

		_, err := auth.NewRegisterUserUseCase(m.users, m.passwords, m.tokens).Execute(context.Background(), auth.RegisterUserInput{
			Username: "alice", Email: "a@example.com", Password: "s3cretpass",
		})
		assert.Equal(t, domainerror.ErrCodeUsernameExists, authCode(t, err))
		assert.ErrorIs(t, err, domainerror.ErrUsernameAlreadyExists)
	})

	t.Run("email taken", func(t *testing.T) {
		m := newAuthMocks(t)
		m.passwords.EXPECT().ValidatePasswordStrength(gomock.Any()).Return(nil)
		m.users.EXPECT().ExistsByUsername(gomock.Any(), "bob").Return(false, nil)
		m.users.EXPECT().ExistsByEmail(gomock.Any(), "a@example.com").Return(true, nil)

		_, err := auth.NewRegisterUserUseCase(m.users, m.passwords, m.tokens).Execute(context.Background(), auth.RegisterUserInput{
			Username: "bob", Email: "A@example.com", Password: "s3cretpass",
		})
		assert.Equal(t, domainerror.ErrCodeEmailExists, authCode(t, err))
	})
}

func TestRegisterUser_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input auth.RegisterUserInput
		code  domainerror.AuthErrorCode
	}{
		{"missing fields", auth.RegisterUserInput{Username: "alice"}, domainerror.ErrCodeMissingFields},
		{"short username", auth.RegisterUserInput{Username: "al", Email: "a@example.com", Password: "x"}, domainerror.ErrCodeInvalidUsername},
		{"spaces in username", auth.RegisterUserInput{Username: "al ice", Email: "a@example.com", Password: "x"}, domainerror.ErrCodeInvalidUsername},
		{"bad email", auth.RegisterUserInput{Username: "alice", Email: "not-an-email", Password: "x"}, domainerror.ErrCodeInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newAuthMocks(t)
			_, err := auth.NewRegisterUserUseCase(m.users, m.passwords, m.tokens).Execute(context.Background(), tt.input)
			assert.Equal(t, tt.code, authCode(t, err))
		})
	}

	t.Run("weak password", func(t *testing.T) {
		m := newAuthMocks(t)
		m.passwords.EXPECT().ValidatePasswordStrength("short").Return(domainerror.ErrWeakPassword)
		_, err := auth.NewRegisterUserUseCase(m.users, m.passwords, m.tokens).Execute(context.Background(), auth.RegisterUserInput{
			Username: "alice", Email: "a@example.com", Password: "short",
		})
		assert.Equal(t, domainerror.ErrCodeWeakPassword, authCode(t, err))
	})
}

func TestLoginUser(t *testing.T) {
	user := entity.NewUser("alice", "alice@example.com", "hashed")

	t.Run("by username or email", func(t *testing.T) {
		for _, identifier := range []string{"alice", "ALICE@example.com"} {
			m := newAuthMocks(t)
			m.users.EXPECT().FindByIdentifier(gomock.Any(), identifier).Return(user, nil)
			m.passwords.EXPECT().VerifyPassword("hashed", "pw").Return(nil)
			m.tokens.EXPECT().GenerateTokenPair(gomock.Any(), user.ID, "alice").
				Return(&adapter.TokenPair{AccessToken: "a", RefreshToken: "r", ExpiresIn: time.Hour}, nil)

			out, err := auth.NewLoginUserUseCase(m.users, m.passwords, m.tokens).Execute(context.Background(), auth.LoginUserInput{
				Identifier: identifier,
				Password:   "pw",
			})
			require.NoError(t, err)
			assert.Equal(t, "a", out.AccessToken)
			assert.Equal(t, "alice", out.User.Username)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		m := newAuthMocks(t)
		m.users.EXPECT().FindByIdentifier(gomock.Any(), "ghost").Return(nil, domainerror.ErrUserNotFound)

		_, err := auth.NewLoginUserUseCase(m.users, m.passwords, m.tokens).Execute(context.Background(), auth.LoginUserInput{
			Identifier: "ghost", Password: "pw",
		})
		assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, err))
	})

	t.Run("wrong password", func(t *testing.T) {
		m := newAuthMocks(t)
		m.users.EXPECT().FindByIdentifier(gomock.Any(), "alice").Return(user, nil)
		m.passwords.EXPECT().VerifyPassword("hashed", "nope").Return(domainerror.ErrInvalidCredentials)

		_, err := auth.NewLoginUserUseCase(m.users, m.passwords, m.tokens).Execute(context.Background(), auth.LoginUserInput{
			Identifier: "alice", Password: "nope",
		})
		assert.ErrorIs(t, err, domainerror.ErrInvalidCredentials)
	})
}

func TestRefreshToken_RotatesPair(t *testing.T) {
	m := newAuthMocks(t)
	userID := uuid.New()

	gomock.InOrder(
		m.tokens.EXPECT().ValidateRefreshToken(gomock.Any(), "old").
			Return(&adapter.TokenClaims{UserID: userID, Username: "alice"}, nil),
		m.tokens.EXPECT().InvalidateRefreshToken(gomock.Any(), "old").Return(nil),
		m.tokens.EXPECT().GenerateTokenPair(gomock.Any(), userID, "alice").
			Return(&adapter.TokenPair{AccessToken: "a2", RefreshToken: "r2", ExpiresIn: time.Hour}, nil),
	)

	out, err := auth.NewRefreshTokenUseCase(m.tokens).Execute(context.Background(), auth.RefreshTokenInput{RefreshToken: "old"})
	require.NoError(t, err)
	assert.Equal(t, "r2", out.RefreshToken)
}

func TestRefreshToken_Revoked(t *testing.T) {
	m := newAuthMocks(t)
	m.tokens.EXPECT().ValidateRefreshToken(gomock.Any(), "old").Return(nil, domainerror.ErrInvalidToken)

	_, err := auth.NewRefreshTokenUseCase(m.tokens).Execute(context.Background(), auth.RefreshTokenInput{RefreshToken: "old"})
	assert.Equal(t, domainerror.ErrCodeInvalidToken, authCode(t, err))
}

func TestLogoutUser_IgnoresUnknownToken(t *testing.T) {
	m := newAuthMocks(t)
	m.tokens.EXPECT().InvalidateRefreshToken(gomock.Any(), "gone").Return(domainerror.ErrInvalidToken)

	err := auth.NewLogoutUserUseCase(m.tokens).Execute(context.Background(), auth.LogoutUserInput{RefreshToken: "gone"})
	assert.NoError(t, err)
}

func TestForgotPassword_QueuesEmailForKnownUser(t *testing.T) {
	m := newAuthMocks(t)
	user := entity.NewUser("alice", "alice@example.com", "hashed")

	m.users.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
	m.resets.EXPECT().GenerateResetToken(gomock.Any(), user.ID, user.Email).
		Return(&adapter.PasswordResetToken{Token: "tok", UserID: user.ID}, nil)
	m.emails.EXPECT().QueuePasswordResetEmail(gomock.Any(), adapter.QueuePasswordResetInput{
		UserEmail: "alice@example.com",
		UserName:  "alice",
		ResetURL:  "https://app.test/reset-password?token=tok",
		ExpiresIn: "1 hour",
	}).Return(nil)

	out, err := auth.NewForgotPasswordUseCase(m.users, m.resets, m.emails, "https://app.test").
		Execute(context.Background(), auth.ForgotPasswordInput{Email: "Alice@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Message)
}

func TestForgotPassword_SameAnswerForUnknownEmail(t *testing.T) {
	m := newAuthMocks(t)
	m.users.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, domainerror.ErrUserNotFound)

	uc := auth.NewForgotPasswordUseCase(m.users, m.resets, m.emails, "https://app.test")
	unknown, err := uc.Execute(context.Background(), auth.ForgotPasswordInput{Email: "ghost@example.com"})
	require.NoError(t, err)

	malformed, err := uc.Execute(context.Background(), auth.ForgotPasswordInput{Email: "nope"})
	require.NoError(t, err)
	assert.Equal(t, unknown.Message, malformed.Message)
}

func TestResetPassword(t *testing.T) {
	user := entity.NewUser("alice", "alice@example.com", "old-hash")

	t.Run("valid token", func(t *testing.T) {
		m := newAuthMocks(t)
		m.resets.EXPECT().ValidateResetToken(gomock.Any(), "tok").
			Return(&adapter.PasswordResetToken{Token: "tok", UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
		m.passwords.EXPECT().ValidatePasswordStrength("newpassword").Return(nil)
		m.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		m.passwords.EXPECT().HashPassword("newpassword").Return("new-hash", nil)
		m.users.EXPECT().Update(gomock.Any(), user).Return(nil)
		m.resets.EXPECT().InvalidateResetToken(gomock.Any(), "tok").Return(nil)
		m.tokens.EXPECT().InvalidateAllUserTokens(gomock.Any(), user.ID).Return(nil)

		err := auth.NewResetPasswordUseCase(m.users, m.passwords, m.resets, m.tokens).Execute(context.Background(), auth.ResetPasswordInput{
			Token: "tok", NewPassword: "newpassword",
		})
		require.NoError(t, err)
		assert.Equal(t, "new-hash", user.PasswordHash)
	})

	t.Run("expired token", func(t *testing.T) {
		m := newAuthMocks(t)
		m.resets.EXPECT().ValidateResetToken(gomock.Any(), "tok").
			Return(&adapter.PasswordResetToken{Token: "tok", UserID: user.ID, ExpiresAt: time.Now().Add(-time.Minute)}, nil)

		err := auth.NewResetPasswordUseCase(m.users, m.passwords, m.resets, m.tokens).Execute(context.Background(), auth.ResetPasswordInput{
			Token: "tok", NewPassword: "newpassword",
		})
		assert.Equal(t, domainerror.ErrCodeInvalidResetToken, authCode(t, err))
	})
}
