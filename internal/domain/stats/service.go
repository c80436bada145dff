// Package stats derives dashboard figures from current state. Every
// call recomputes from scratch; nothing is cached or maintained
// incrementally.
package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/accessarch/crm/internal/domain/client"
	"github.com/accessarch/crm/internal/domain/feedback"
	"github.com/accessarch/crm/internal/domain/project"
)

// ClientRepository lists clients for counting.
type ClientRepository interface {
	List(ctx context.Context) ([]client.Client, error)
}

// ProjectRepository lists projects for aggregation.
type ProjectRepository interface {
	List(ctx context.Context) ([]project.Project, error)
}

// FeedbackRepository lists feedback for the pending-feedback figure.
type FeedbackRepository interface {
	List(ctx context.Context) ([]feedback.Feedback, error)
}

// Overview is the dashboard stat block.
type Overview struct {
	TotalClients       int     `json:"totalClients"`
	TotalProjects      int     `json:"totalProjects"`
	PendingFeedback    int     `json:"pendingFeedback"`
	TotalRevenue       float64 `json:"totalRevenue"`
	CompletedProjects  int     `json:"completedProjects"`
	InProgressProjects int     `json:"inProgressProjects"`
	DelayedProjects    int     `json:"delayedProjects"`
}

// Service computes derived statistics.
type Service struct {
	clients  ClientRepository
	projects ProjectRepository
	feedback FeedbackRepository
	logger   *slog.Logger
}

// NewService creates a new stats service.
func NewService(clients ClientRepository, projects ProjectRepository, feedback FeedbackRepository, logger *slog.Logger) *Service {
	return &Service{clients: clients, projects: projects, feedback: feedback, logger: logger}
}

// Compute aggregates the current store state. PendingFeedback counts
// projects with no feedback record referencing them; TotalRevenue sums
// project budgets.
func (s *Service) Compute(ctx context.Context) (Overview, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("listing clients: %w", err)
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("listing projects: %w", err)
	}
	entries, err := s.feedback.List(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("listing feedback: %w", err)
	}

	rated := make(map[int]bool, len(entries))
	for _, f := range entries {
		rated[f.ProjectID] = true
	}

	o := Overview{
		TotalClients:  len(clients),
		TotalProjects: len(projects),
	}
	for _, p := range projects {
		o.TotalRevenue += p.Budget
		if !rated[p.ID] {
			o.PendingFeedback++
		}
		switch p.Status {
		case project.StatusCompleted:
			o.CompletedProjects++
		case project.StatusInProgress:
			o.InProgressProjects++
		case project.StatusDelayed:
			o.DelayedProjects++
		}
	}

	return o, nil
}
