package client

import (
	"context"

	"github.com/accessarch/crm/internal/domain/activity"
	"github.com/accessarch/crm/internal/domain/notification"
)

// Repository provides persistence for clients.
type Repository interface {
	Create(ctx context.Context, c *Client) error
	Get(ctx context.Context, id int) (*Client, error)
	List(ctx context.Context) ([]Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id int) error
}

// ProjectRepository provides the cascade used when a client is removed.
type ProjectRepository interface {
	DeleteByClient(ctx context.Context, clientID int) (int, error)
}

// NotificationRepository emits client notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error
}

// ActivityRepository logs client activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

// Persister writes the full entity snapshot after a mutation.
type Persister interface {
	Persist(ctx context.Context)
}
