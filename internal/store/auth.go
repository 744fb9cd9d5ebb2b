package store

import (
	"context"

	"tradejournal/internal/backend"
	"tradejournal/internal/logger"
	"tradejournal/internal/models"
)

func (s *Store) beginAuth() {
	s.mu.Lock()
	s.auth.begin()
	s.mu.Unlock()
}

func (s *Store) failAuth(err error) error {
	s.mu.Lock()
	s.auth.fail(err)
	s.mu.Unlock()
	return err
}

func (s *Store) setSession(resp *backend.AuthResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.Token = resp.Token
	s.auth.User = resp.User
	if resp.User != nil && resp.User.Subscription != nil {
		sub := *resp.User.Subscription
		s.subscription.Subscription = &sub
	}
	s.auth.succeed()
}

func (s *Store) Login(ctx context.Context, req backend.LoginRequest) (*backend.AuthResponse, error) {
	s.beginAuth()
	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return nil, s.failAuth(err)
	}
	s.setSession(resp)
	logger.Info("user logged in", "email", req.Email)
	return resp, nil
}

func (s *Store) Register(ctx context.Context, req backend.RegisterRequest) (*backend.AuthResponse, error) {
	s.beginAuth()
	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, s.failAuth(err)
	}
	s.setSession(resp)
	return resp, nil
}

func (s *Store) LoadProfile(ctx context.Context) (*models.User, error) {
	s.beginAuth()
	u, err := s.api.Me(ctx)
	if err != nil {
		return nil, s.failAuth(err)
	}
	s.mu.Lock()
	s.auth.User = u
	if u.Subscription != nil {
		sub := *u.Subscription
		s.subscription.Subscription = &sub
	}
	s.auth.succeed()
	s.mu.Unlock()
	return u, nil
}

func (s *Store) UpdateProfile(ctx context.Context, req backend.UpdateProfileRequest) (*models.User, error) {
	s.beginAuth()
	u, err := s.api.UpdateProfile(ctx, req)
	if err != nil {
		return nil, s.failAuth(err)
	}
	s.mu.Lock()
	if s.auth.User != nil && u.Subscription == nil {
		u.Subscription = s.auth.User.Subscription
	}
	s.auth.User = u
	s.auth.succeed()
	s.mu.Unlock()
	return u, nil
}

// Logout clears the session even when the backend call fails.
func (s *Store) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		logger.WithError(err).Warn("backend logout failed")
	}
	s.Reset()
}
