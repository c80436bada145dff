package project

import (
	"context"

	"github.com/accessarch/crm/internal/domain/activity"
	"github.com/accessarch/crm/internal/domain/client"
	"github.com/accessarch/crm/internal/domain/notification"
)

// Repository provides persistence for projects.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	Get(ctx context.Context, id int) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id int) error
	ListByClient(ctx context.Context, clientID int) ([]Project, error)
}

// ClientRepository resolves project-to-client references and maintains
// the denormalized project counter.
type ClientRepository interface {
	Get(ctx context.Context, id int) (*client.Client, error)
	AdjustProjects(ctx context.Context, clientID, delta int) error
}

// NotificationRepository emits project notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error
}

// ActivityRepository logs project activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

// Persister writes the full entity snapshot after a mutation.
type Persister interface {
	Persist(ctx context.Context)
}

// Rand supplies bounded random increments for the simulated progress
// tick; tests inject a seeded source.
type Rand interface {
	Intn(n int) int
}
