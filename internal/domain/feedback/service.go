package feedback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/accessarch/crm/internal/alerts"
	"github.com/accessarch/crm/internal/clock"
	"github.com/accessarch/crm/internal/domain/activity"
	"github.com/accessarch/crm/internal/domain/notification"
	"github.com/accessarch/crm/internal/repository"
)

// Service handles feedback operations.
type Service struct {
	repo          Repository
	clients       ClientRepository
	projects      ProjectRepository
	notifications NotificationRepository
	activities    ActivityRepository
	persister     Persister
	alerts        alerts.Sink
	clock         clock.Clock
	logger        *slog.Logger
}

// NewService creates a new feedback service.
func NewService(
	repo Repository,
	clients ClientRepository,
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
		clients:       clients,
		projects:      projects,
		notifications: notifications,
		activities:    activities,
		persister:     persister,
		alerts:        sink,
		clock:         clk,
		logger:        logger,
	}
}

// AddRequest defines feedback creation inputs.
type AddRequest struct {
	ClientID  int
	ProjectID int
	Rating    int
	Comments  string
}

// Add creates a feedback record after resolving both references,
// snapshotting the client and project names and stamping the date.
func (s *Service) Add(ctx context.Context, req AddRequest) (*Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		alerts.Error(s.alerts, "Rating must be between 1 and 5")
		return nil, ErrInvalidInput
	}

	owner, err := s.clients.Get(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			alerts.Error(s.alerts, "Client or project not found")
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("resolving client: %w", err)
	}

	proj, err := s.projects.Get(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			alerts.Error(s.alerts, "Client or project not found")
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("resolving project: %w", err)
	}

	f := &Feedback{
		ClientID:    owner.ID,
		ProjectID:   proj.ID,
		ClientName:  owner.Name,
		ProjectName: proj.Name,
		Rating:      req.Rating,
		Comments:    req.Comments,
		Date:        s.clock.Now().Format("2006-01-02"),
	}

	if err := s.repo.Create(ctx, f); err != nil {
		alerts.Error(s.alerts, "Failed to submit feedback")
		return nil, fmt.Errorf("creating feedback: %w", err)
	}

	s.notify(ctx, "New Feedback", fmt.Sprintf("%s submitted feedback for %s", owner.Name, proj.Name))
	s.logActivity(ctx, "Feedback Submitted", fmt.Sprintf("%s rated %s", owner.Name, proj.Name), "message-square")
	s.persister.Persist(ctx)

	alerts.Success(s.alerts, "Feedback submitted successfully!")
	return f, nil
}

// Delete removes a feedback record. Unlike the other delete operations
// it emits no notification or activity entry.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			alerts.Error(s.alerts, "Feedback not found")
			return ErrFeedbackNotFound
		}
		alerts.Error(s.alerts, "Failed to delete feedback")
		return fmt.Errorf("deleting feedback: %w", err)
	}
	s.persister.Persist(ctx)

	alerts.Success(s.alerts, "Feedback deleted successfully!")
	return nil
}

// Get returns a feedback record by ID.
func (s *Service) Get(ctx context.Context, id int) (*Feedback, error) {
	f, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("getting feedback: %w", err)
	}
	return f, nil
}

// List returns all feedback records.
func (s *Service) List(ctx context.Context) ([]Feedback, error) {
	return s.repo.List(ctx)
}

// ByProject returns the feedback referencing a project.
func (s *Service) ByProject(ctx context.Context, projectID int) ([]Feedback, error) {
	return s.repo.ListByProject(ctx, projectID)
}

func (s *Service) notify(ctx context.Context, title, message string) {
	err := s.notifications.Create(ctx, &notification.Notification{
		Title:   title,
		Message: message,
		Time:    "Just now",
		Type:    notification.TypeFeedback,
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
