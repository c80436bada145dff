package notification

import "context"

// Repository provides persistence for notifications. New entries are
// prepended so the collection stays ordered newest-first.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	List(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id int) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id int) error
	CountUnread(ctx context.Context) (int, error)
}

// Persister writes the full entity snapshot after a mutation.
// Failures are logged by the implementation and never surfaced.
type Persister interface {
	Persist(ctx context.Context)
}
