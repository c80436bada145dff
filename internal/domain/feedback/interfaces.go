package feedback

import (
	"context"

	"github.com/accessarch/crm/internal/domain/activity"
	"github.com/accessarch/crm/internal/domain/client"
	"github.com/accessarch/crm/internal/domain/notification"
	"github.com/accessarch/crm/internal/domain/project"
)

// Repository provides persistence for feedback records.
type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	Get(ctx context.Context, id int) (*Feedback, error)
	List(ctx context.Context) ([]Feedback, error)
	Delete(ctx context.Context, id int) error
	ListByProject(ctx context.Context, projectID int) ([]Feedback, error)
}

// ClientRepository resolves the referenced client.
type ClientRepository interface {
	Get(ctx context.Context, id int) (*client.Client, error)
}

// ProjectRepository resolves the referenced project.
type ProjectRepository interface {
	Get(ctx context.Context, id int) (*project.Project, error)
}

// NotificationRepository emits feedback notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error
}

// ActivityRepository logs feedback activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

// Persister writes the full entity snapshot after a mutation.
type Persister interface {
	Persist(ctx context.Context)
}
