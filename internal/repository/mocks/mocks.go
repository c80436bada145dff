// Package mocks provides testify mocks for the repository interfaces
// consumed by the domain services.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/accessarch/crm/internal/domain/activity"
	"github.com/accessarch/crm/internal/domain/client"
	"github.com/accessarch/crm/internal/domain/feedback"
	"github.com/accessarch/crm/internal/domain/notification"
	"github.com/accessarch/crm/internal/domain/project"
)

// ClientRepository is a mock for the client repository views.
type ClientRepository struct {
	mock.Mock
}

func (m *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ClientRepository) Get(ctx context.Context, id int) (*client.Client, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*client.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) List(ctx context.Context) ([]client.Client, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]client.Client); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ClientRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ClientRepository) AdjustProjects(ctx context.Context, clientID, delta int) error {
	args := m.Called(ctx, clientID, delta)
	return args.Error(0)
}

// ProjectRepository is a mock for the project repository views.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id int) (*project.Project, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*project.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProjectRepository) ListByClient(ctx context.Context, clientID int) ([]project.Project, error) {
	args := m.Called(ctx, clientID)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) DeleteByClient(ctx context.Context, clientID int) (int, error) {
	args := m.Called(ctx, clientID)
	return args.Int(0), args.Error(1)
}

// FeedbackRepository is a mock for the feedback repository views.
type FeedbackRepository struct {
	mock.Mock
}

func (m *FeedbackRepository) Create(ctx context.Context, f *feedback.Feedback) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *FeedbackRepository) Get(ctx context.Context, id int) (*feedback.Feedback, error) {
	args := m.Called(ctx, id)
	if f, ok := args.Get(0).(*feedback.Feedback); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *FeedbackRepository) List(ctx context.Context) ([]feedback.Feedback, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]feedback.Feedback); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *FeedbackRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *FeedbackRepository) ListByProject(ctx context.Context, projectID int) ([]feedback.Feedback, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]feedback.Feedback); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// NotificationRepository is a mock for the notification repository views.
type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NotificationRepository) List(ctx context.Context) ([]notification.Notification, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]notification.Notification); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotificationRepository) MarkAllRead(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *NotificationRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotificationRepository) CountUnread(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// ActivityRepository is a mock for the activity repository views.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context) ([]activity.Entry, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// Persister is a no-op snapshot persister for tests.
type Persister struct {
	Calls int
}

func (p *Persister) Persist(ctx context.Context) {
	p.Calls++
}
