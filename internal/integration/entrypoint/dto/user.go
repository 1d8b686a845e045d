package dto

// UpdateProfileRequest represents a partial profile update.
type UpdateProfileRequest struct {
	Email              *string `json:"email,omitempty"`
	PreferredCurrency  *string `json:"preferredCurrency,omitempty"`
	Theme              *string `json:"theme,omitempty"`
	RecurringReminders *bool   `json:"recurringReminders,omitempty"`
}

// ChangePasswordRequest represents the request body for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// DeleteAccountRequest represents the request body for account deletion.
type DeleteAccountRequest struct {
	Password     string `json:"password" binding:"required"`
	Confirmation string `json:"confirmation" binding:"required"`
}
