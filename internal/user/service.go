package user

import (
	"context"

	"tradejournal/internal/backend"
	"tradejournal/internal/logger"
	"tradejournal/internal/models"
)

type Service interface {
	Register(ctx context.Context, req backend.RegisterRequest) (*backend.AuthResponse, error)
	Login(ctx context.Context, req backend.LoginRequest) (*backend.AuthResponse, error)
	Logout(ctx context.Context)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req backend.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, req backend.ChangePasswordRequest) error
	VerifyEmail(ctx context.Context, req backend.VerifyEmailRequest) error
	ResendVerification(ctx context.Context, req backend.EmailRequest) error
	RequestResetOTP(ctx context.Context, req backend.EmailRequest) error
	VerifyResetOTP(ctx context.Context, req backend.VerifyOTPRequest) error
	ResetPassword(ctx context.Context, req backend.ResetPasswordRequest) error
}

type service struct {
	session  Session
	account  Account
	onLogout []func()
}

// NewService wires the session to the account client. onLogout hooks run
// after the session is cleared.
func NewService(session Session, account Account, onLogout ...func()) Service {
	return &service{
		session:  session,
		account:  account,
		onLogout: onLogout,
	}
}

func (s *service) Register(ctx context.Context, req backend.RegisterRequest) (*backend.AuthResponse, error) {
	resp, err := s.session.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	s.account.SetToken(resp.Token)
	return resp, nil
}

func (s *service) Login(ctx context.Context, req backend.LoginRequest) (*backend.AuthResponse, error) {
	resp, err := s.session.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	s.account.SetToken(resp.Token)
	logger.Info("user logged in", "user_id", userID(resp.User))
	return resp, nil
}

func userID(u *models.User) string {
	if u == nil {
		return ""
	}
	return u.ID
}

func (s *service) Logout(ctx context.Context) {
	s.session.Logout(ctx)
	s.account.SetToken("")
	for _, hook := range s.onLogout {
		hook()
	}
}

func (s *service) Profile(ctx context.Context) (*models.User, error) {
	u, err := s.session.LoadProfile(ctx)
	if err != nil {
		if backend.IsUnauthorized(err) {
			return nil, err
		}
		if cached := s.session.Auth().User; cached != nil {
			logger.WithError(err).Warn("profile refresh failed, serving cached user")
			return cached, nil
		}
		return nil, err
	}
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, req backend.UpdateProfileRequest) (*models.User, error) {
	return s.session.UpdateProfile(ctx, req)
}

func (s *service) ChangePassword(ctx context.Context, req backend.ChangePasswordRequest) error {
	return s.account.ChangePassword(ctx, req)
}

func (s *service) VerifyEmail(ctx context.Context, req backend.VerifyEmailRequest) error {
	return s.account.VerifyEmail(ctx, req)
}

func (s *service) ResendVerification(ctx context.Context, req backend.EmailRequest) error {
	return s.account.ResendVerification(ctx, req)
}

func (s *service) RequestResetOTP(ctx context.Context, req backend.EmailRequest) error {
	return s.account.RequestResetOTP(ctx, req)
}

func (s *service) VerifyResetOTP(ctx context.Context, req backend.VerifyOTPRequest) error {
	return s.account.VerifyResetOTP(ctx, req)
}

func (s *service) ResetPassword(ctx context.Context, req backend.ResetPasswordRequest) error {
	return s.account.ResetPassword(ctx, req)
}
