package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/accessarch/crm/internal/alerts"
	"github.com/accessarch/crm/internal/domain/activity"
	"github.com/accessarch/crm/internal/domain/notification"
	"github.com/accessarch/crm/internal/repository"
)

// Service handles project operations.
type Service struct {
	repo          Repository
	clients       ClientRepository
	notifications NotificationRepository
	activities    ActivityRepository
	persister     Persister
	alerts        alerts.Sink
	logger        *slog.Logger
}

// NewService creates a new project service.
func NewService(
	repo Repository,
	clients ClientRepository,
	notifications NotificationRepository,
	activities ActivityRepository,
	persister Persister,
	sink alerts.Sink,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:          repo,
		clients:       clients,
		notifications: notifications,
		activities:    activities,
		persister:     persister,
		alerts:        sink,
		logger:        logger,
	}
}

// AddRequest defines project creation inputs.
type AddRequest struct {
	Name        string
	ClientID    int
	DueDate     string
	Status      Status
	Progress    int
	Budget      float64
	Description string
}

// UpdateRequest defines a project patch; nil fields are left unchanged.
type UpdateRequest struct {
	Name        *string
	DueDate     *string
	Status      *Status
	Progress    *int
	Budget      *float64
	Description *string
}

// Add creates a project after resolving its client, snapshots the
// client name, and increments the client's project counter.
func (s *Service) Add(ctx context.Context, req AddRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		alerts.Error(s.alerts, "Project name is required")
		return nil, ErrInvalidInput
	}
	if req.Progress < 0 || req.Progress > 100 {
		alerts.Error(s.alerts, "Progress must be between 0 and 100")
		return nil, ErrInvalidInput
	}
	if req.Budget < 0 {
		alerts.Error(s.alerts, "Budget must not be negative")
		return nil, ErrInvalidInput
	}
	status := req.Status
	if status == "" {
		status = StatusPlanning
	}
	if !status.Valid() {
		alerts.Error(s.alerts, fmt.Sprintf("Unknown project status %q", req.Status))
		return nil, ErrInvalidInput
	}

	owner, err := s.clients.Get(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			alerts.Error(s.alerts, "Client not found")
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("resolving client: %w", err)
	}

	p := &Project{
		Name:        req.Name,
		ClientID:    owner.ID,
		ClientName:  owner.Name,
		DueDate:     req.DueDate,
		Status:      status,
		Progress:    req.Progress,
		Budget:      req.Budget,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		alerts.Error(s.alerts, "Failed to add project")
		return nil, fmt.Errorf("creating project: %w", err)
	}

	if err := s.clients.AdjustProjects(ctx, owner.ID, 1); err != nil {
		return nil, fmt.Errorf("incrementing client project count: %w", err)
	}

	s.notify(ctx, "New Project", fmt.Sprintf("%s has been added", p.Name))
	s.logActivity(ctx, "Project Created", fmt.Sprintf("%s added to portfolio", p.Name), "folder-plus")
	s.persister.Persist(ctx)

	alerts.Success(s.alerts, fmt.Sprintf("Project %s added successfully!", p.Name))
	return p, nil
}

// Update shallow-merges the patch into an existing project. A
// transition into "completed" emits the completion notification.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Project, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			alerts.Error(s.alerts, "Project not found")
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("loading project: %w", err)
	}

	updated := *current
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.DueDate != nil {
		updated.DueDate = *req.DueDate
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			alerts.Error(s.alerts, fmt.Sprintf("Unknown project status %q", *req.Status))
			return nil, ErrInvalidInput
		}
		updated.Status = *req.Status
	}
	if req.Progress != nil {
		if *req.Progress < 0 || *req.Progress > 100 {
			alerts.Error(s.alerts, "Progress must be between 0 and 100")
			return nil, ErrInvalidInput
		}
		updated.Progress = *req.Progress
	}
	if req.Budget != nil {
		if *req.Budget < 0 {
			alerts.Error(s.alerts, "Budget must not be negative")
			return nil, ErrInvalidInput
		}
		updated.Budget = *req.Budget
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		alerts.Error(s.alerts, "Failed to update project")
		return nil, fmt.Errorf("updating project: %w", err)
	}

	if current.Status != StatusCompleted && updated.Status == StatusCompleted {
		s.notify(ctx, "Project Completed", fmt.Sprintf("%s has been completed", updated.Name))
	}
	s.persister.Persist(ctx)

	alerts.Success(s.alerts, "Project updated successfully!")
	return &updated, nil
}

// Delete removes a project and decrements the owning client's project
// counter. A missing owner is tolerated; the counter floors at zero.
func (s *Service) Delete(ctx context.Context, id int) error {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			alerts.Error(s.alerts, "Project not found")
			return ErrProjectNotFound
		}
		return fmt.Errorf("loading project: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		alerts.Error(s.alerts, "Failed to delete project")
		return fmt.Errorf("deleting project: %w", err)
	}

	if err := s.clients.AdjustProjects(ctx, current.ClientID, -1); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("decrementing client project count: %w", err)
	}

	s.notify(ctx, "Project Removed", fmt.Sprintf("%s has been deleted", current.Name))
	s.logActivity(ctx, "Project Deleted", fmt.Sprintf("%s removed from portfolio", current.Name), "folder-minus")
	s.persister.Persist(ctx)

	alerts.Success(s.alerts, fmt.Sprintf("Project %s deleted successfully!", current.Name))
	return nil
}

// Get returns a project by ID.
func (s *Service) Get(ctx context.Context, id int) (*Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return p, nil
}

// List returns all projects.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

// ByClient returns the projects referencing a client.
func (s *Service) ByClient(ctx context.Context, clientID int) ([]Project, error) {
	return s.repo.ListByClient(ctx, clientID)
}

// AdvanceProgress simulates work on every in-progress project: each
// gains a random 1-5 points clamped to 100, and any project reaching
// 100 transitions to completed with exactly one completion
// notification. Reports whether anything changed so callers can decide
// whether to re-render.
func (s *Service) AdvanceProgress(ctx context.Context, rng Rand) (bool, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return false, fmt.Errorf("listing projects: %w", err)
	}

	changed := false
	for i := range projects {
		p := projects[i]
		if p.Status != StatusInProgress || p.Progress >= 100 {
			continue
		}

		p.Progress += rng.Intn(5) + 1
		if p.Progress > 100 {
			p.Progress = 100
		}
		if p.Progress == 100 {
			p.Status = StatusCompleted
		}

		if err := s.repo.Update(ctx, &p); err != nil {
			return changed, fmt.Errorf("advancing project %d: %w", p.ID, err)
		}
		changed = true

		if p.Status == StatusCompleted {
			s.notify(ctx, "Project Completed", fmt.Sprintf("%s has been marked as completed", p.Name))
			s.logActivity(ctx, "Project Completed", fmt.Sprintf("%s finished successfully", p.Name), "check-circle")
		}
	}

	if changed {
		s.persister.Persist(ctx)
	}
	return changed, nil
}

func (s *Service) notify(ctx context.Context, title, message string) {
	err := s.notifications.Create(ctx, &notification.Notification{
		Title:   title,
		Message: message,
		Time:    "Just now",
		Type:    notification.TypeProject,
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
