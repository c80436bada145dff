package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/accessarch/crm/internal/alerts"
	"github.com/accessarch/crm/internal/clock"
	"github.com/accessarch/crm/internal/domain/activity"
	"github.com/accessarch/crm/internal/domain/notification"
	"github.com/accessarch/crm/internal/repository"
)

// Service handles client operations.
type Service struct {
	repo          Repository
	projects      ProjectRepository
	notifications NotificationRepository
	activities    ActivityRepository
	persister     Persister
	alerts        alerts.Sink
	clock         clock.Clock
	logger        *slog.Logger
}

// NewService creates a new client service.
func NewService(
	repo Repository,
	projects ProjectRepository,
	notifications NotificationRepository,
	activities ActivityRepository,
	persister Persister,
	sink alerts.Sink,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:          repo,
		projects:      projects,
		notifications: notifications,
		activities:    activities,
		persister:     persister,
		alerts:        sink,
		clock:         clk,
		logger:        logger,
	}
}

// AddRequest defines client creation inputs.
type AddRequest struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Status  Status
}

// UpdateRequest defines a client patch; nil fields are left unchanged.
type UpdateRequest struct {
	Name    *string
	Email   *string
	Company *string
	Phone   *string
	Status  *Status
}

// Add creates a client, stamps its join date, and emits the lead
// notification and activity entry.
func (s *Service) Add(ctx context.Context, req AddRequest) (*Client, error) {
	if strings.TrimSpace(req.Name) == "" {
		alerts.Error(s.alerts, "Client name is required")
		return nil, ErrInvalidInput
	}
	status := req.Status
	if status == "" {
		status = StatusActive
	}
	if !status.Valid() {
		alerts.Error(s.alerts, fmt.Sprintf("Unknown client status %q", req.Status))
		return nil, ErrInvalidInput
	}

	c := &Client{
		Name:     req.Name,
		Email:    req.Email,
		Company:  req.Company,
		Phone:    req.Phone,
		Status:   status,
		JoinDate: s.clock.Now().Format("2006-01-02"),
		Projects: 0,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		alerts.Error(s.alerts, "Failed to add client")
		return nil, fmt.Errorf("creating client: %w", err)
	}

	s.notify(ctx, "New Client", fmt.Sprintf("%s has been added as a new client", c.Name), notification.TypeLead)
	s.logActivity(ctx, "Client Added", fmt.Sprintf("%s added to database", c.Name), "user-plus")
	s.persister.Persist(ctx)

	alerts.Success(s.alerts, fmt.Sprintf("Client %s added successfully!", c.Name))
	return c, nil
}

// Update shallow-merges the patch into an existing client.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Client, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			alerts.Error(s.alerts, "Client not found")
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("loading client: %w", err)
	}

	updated := *current
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Email != nil {
		updated.Email = *req.Email
	}
	if req.Company != nil {
		updated.Company = *req.Company
	}
	if req.Phone != nil {
		updated.Phone = *req.Phone
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			alerts.Error(s.alerts, fmt.Sprintf("Unknown client status %q", *req.Status))
			return nil, ErrInvalidInput
		}
		updated.Status = *req.Status
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		alerts.Error(s.alerts, "Failed to update client")
		return nil, fmt.Errorf("updating client: %w", err)
	}
	s.persister.Persist(ctx)

	alerts.Success(s.alerts, "Client updated successfully!")
	return &updated, nil
}

// Delete removes a client and cascades deletion of its projects.
// Feedback referencing those projects is deliberately left in place.
func (s *Service) Delete(ctx context.Context, id int) error {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			alerts.Error(s.alerts, "Client not found")
			return ErrClientNotFound
		}
		return fmt.Errorf("loading client: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		alerts.Error(s.alerts, "Failed to delete client")
		return fmt.Errorf("deleting client: %w", err)
	}

	removed, err := s.projects.DeleteByClient(ctx, id)
	if err != nil {
		return fmt.Errorf("cascading project delete: %w", err)
	}
	if removed > 0 {
		s.logger.Debug("cascaded project delete", "client", id, "projects", removed)
	}

	s.notify(ctx, "Client Removed", fmt.Sprintf("%s has been removed from the system", current.Name), notification.TypeProject)
	s.logActivity(ctx, "Client Deleted", fmt.Sprintf("%s removed from database", current.Name), "user-minus")
	s.persister.Persist(ctx)

	alerts.Success(s.alerts, fmt.Sprintf("Client %s deleted successfully!", current.Name))
	return nil
}

// Get returns a client by ID.
func (s *Service) Get(ctx context.Context, id int) (*Client, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("getting client: %w", err)
	}
	return c, nil
}

// List returns all clients.
func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

func (s *Service) notify(ctx context.Context, title, message string, typ notification.Type) {
	err := s.notifications.Create(ctx, &notification.Notification{
		Title:   title,
		Message: message,
		Time:    "Just now",
		Type:    typ,
	})
	if err != nil {
		s.logger.Warn("notification emit failed", "title", title, "error", err)
	}
}

func (s *Service) logActivity(ctx context.Context, action, details, icon string) {
	err := s.activities.Log(ctx, &activity.Entry{
		Action:  action,
		Details: details,
		Time:    "Just now",
		Icon:    icon,
	})
	if err != nil {
		s.logger.Warn("activity log failed", "action", action, "error", err)
	}
}
