package activity

import (
	"context"
	"fmt"
	"log/slog"
)

// Service handles the recent-activity feed.
type Service struct {
	repo      Repository
	persister Persister
	logger    *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, persister Persister, logger *slog.Logger) *Service {
	return &Service{repo: repo, persister: persister, logger: logger}
}

// Log prepends an activity entry. The feed never grows past MaxEntries.
func (s *Service) Log(ctx context.Context, action, details, icon string) (*Entry, error) {
	entry := &Entry{
		Action:  action,
		Details: details,
		Time:    "Just now",
		Icon:    icon,
	}

	if err := s.repo.Log(ctx, entry); err != nil {
		return nil, fmt.Errorf("logging activity: %w", err)
	}
	s.persister.Persist(ctx)

	return entry, nil
}

// Recent returns the activity feed, newest first.
func (s *Service) Recent(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}
