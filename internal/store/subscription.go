package store

import (
	"context"

	"tradejournal/internal/models"
)

func (s *Store) FetchSubscription(ctx context.Context) (*models.Subscription, error) {
	s.mu.Lock()
	s.subscription.begin()
	s.mu.Unlock()

	sub, err := s.api.MySubscription(ctx)
	if err != nil {
		s.mu.Lock()
		s.subscription.fail(err)
		s.mu.Unlock()
		return nil, err
	}

	s.SetSubscription(*sub)
	return sub, nil
}
