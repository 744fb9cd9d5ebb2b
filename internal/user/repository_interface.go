package user

import (
	"context"

	"tradejournal/internal/backend"
	"tradejournal/internal/models"
	"tradejournal/internal/store"
)

// Session is the auth slice of the view-state store.
type Session interface {
	Login(ctx context.Context, req backend.LoginRequest) (*backend.AuthResponse, error)
	Register(ctx context.Context, req backend.RegisterRequest) (*backend.AuthResponse, error)
	LoadProfile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req backend.UpdateProfileRequest) (*models.User, error)
	Logout(ctx context.Context)
	Auth() store.AuthState
}

// Account covers the auth endpoints that leave no view state behind.
type Account interface {
	ChangePassword(ctx context.Context, req backend.ChangePasswordRequest) error
	VerifyEmail(ctx context.Context, req backend.VerifyEmailRequest) error
	ResendVerification(ctx context.Context, req backend.EmailRequest) error
	RequestResetOTP(ctx context.Context, req backend.EmailRequest) error
	VerifyResetOTP(ctx context.Context, req backend.VerifyOTPRequest) error
	ResetPassword(ctx context.Context, req backend.ResetPasswordRequest) error
	SetToken(token string)
}
