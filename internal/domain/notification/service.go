package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/accessarch/crm/internal/repository"
)

// Service handles notification operations.
type Service struct {
	repo      Repository
	persister Persister
	logger    *slog.Logger
}

// NewService creates a new notification service.
func NewService(repo Repository, persister Persister, logger *slog.Logger) *Service {
	return &Service{repo: repo, persister: persister, logger: logger}
}

// Add creates a notification and prepends it to the collection.
// An empty type defaults to "info".
func (s *Service) Add(ctx context.Context, title, message string, typ Type) (*Notification, error) {
	if typ == "" {
		typ = TypeInfo
	}
	if !typ.Valid() {
		return nil, ErrInvalidInput
	}

	n := &Notification{
		Title:   title,
		Message: message,
		Time:    "Just now",
		Type:    typ,
		Read:    false,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("creating notification: %w", err)
	}
	s.persister.Persist(ctx)

	return n, nil
}

// MarkRead marks a single notification as read.
func (s *Service) MarkRead(ctx context.Context, id int) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("marking notification read: %w", err)
	}
	s.persister.Persist(ctx)
	return nil
}

// MarkAllRead marks every notification as read.
func (s *Service) MarkAllRead(ctx context.Context) error {
	if err := s.repo.MarkAllRead(ctx); err != nil {
		return fmt.Errorf("marking all notifications read: %w", err)
	}
	s.persister.Persist(ctx)
	return nil
}

// Delete removes a notification.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("deleting notification: %w", err)
	}
	s.persister.Persist(ctx)
	return nil
}

// List returns all notifications, newest first.
func (s *Service) List(ctx context.Context) ([]Notification, error) {
	return s.repo.List(ctx)
}

// UnreadCount returns the number of unread notifications.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	return s.repo.CountUnread(ctx)
}
