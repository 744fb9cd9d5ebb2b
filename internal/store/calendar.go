package store

import (
	"context"

	"tradejournal/internal/models"
)

func (s *Store) beginCalendar() {
	s.mu.Lock()
	s.calendar.begin()
	s.mu.Unlock()
}

func (s *Store) failCalendar(err error) error {
	s.mu.Lock()
	s.calendar.fail(err)
	s.mu.Unlock()
	return err
}

func (s *Store) replaceEvent(ev models.CalendarEvent) {
	for i := range s.calendar.Events {
		if s.calendar.Events[i].ID == ev.ID {
			s.calendar.Events[i] = ev
			return
		}
	}
}

func (s *Store) FetchEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	s.beginCalendar()
	events, err := s.api.ListEvents(ctx)
	if err != nil {
		return nil, s.failCalendar(err)
	}
	s.mu.Lock()
	s.calendar.Events = events
	s.calendar.succeed()
	s.mu.Unlock()
	return append([]models.CalendarEvent(nil), events...), nil
}

func (s *Store) CreateEvent(ctx context.Context, ev models.CalendarEvent) (*models.CalendarEvent, error) {
	s.beginCalendar()
	created, err := s.api.CreateEvent(ctx, ev)
	if err != nil {
		return nil, s.failCalendar(err)
	}
	s.mu.Lock()
	s.calendar.Events = append(s.calendar.Events, *created)
	s.calendar.succeed()
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateEvent(ctx context.Context, id string, ev models.CalendarEvent) (*models.CalendarEvent, error) {
	s.beginCalendar()
	updated, err := s.api.UpdateEvent(ctx, id, ev)
	if err != nil {
		return nil, s.failCalendar(err)
	}
	s.mu.Lock()
	updated.ID = id
	s.replaceEvent(*updated)
	s.calendar.succeed()
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	s.beginCalendar()
	if err := s.api.DeleteEvent(ctx, id); err != nil {
		return s.failCalendar(err)
	}
	s.mu.Lock()
	kept := make([]models.CalendarEvent, 0, len(s.calendar.Events))
	for _, ev := range s.calendar.Events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	s.calendar.Events = kept
	s.calendar.succeed()
	s.mu.Unlock()
	return nil
}

// ToggleEventCompletion flips isCompleted locally to match the backend.
func (s *Store) ToggleEventCompletion(ctx context.Context, id string) (*models.CalendarEvent, error) {
	s.beginCalendar()
	ev, err := s.api.ToggleEventCompletion(ctx, id)
	if err != nil {
		return nil, s.failCalendar(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.calendar.Events {
		if s.calendar.Events[i].ID == id {
			if ev != nil && ev.ID != "" {
				s.calendar.Events[i].IsCompleted = ev.IsCompleted
			} else {
				s.calendar.Events[i].IsCompleted = !s.calendar.Events[i].IsCompleted
			}
			updated := s.calendar.Events[i]
			s.calendar.succeed()
			return &updated, nil
		}
	}
	s.calendar.succeed()
	return ev, nil
}
