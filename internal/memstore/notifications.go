package memstore

import (
	"context"

	"github.com/accessarch/crm/internal/domain/notification"
	"github.com/accessarch/crm/internal/repository"
)

// NotificationRepository is the notification view over the store.
type NotificationRepository struct {
	s *Store
}

// Create assigns the next notification id and prepends the record so
// the collection stays newest-first.
func (r *NotificationRepository) Create(_ context.Context, n *notification.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n.ID = r.s.next.Notifications
	r.s.next.Notifications++
	r.s.data.Notifications = append([]notification.Notification{*n}, r.s.data.Notifications...)
	return nil
}

// List returns a copy of all notifications, newest first.
func (r *NotificationRepository) List(_ context.Context) ([]notification.Notification, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]notification.Notification(nil), r.s.data.Notifications...), nil
}

// MarkRead flags a single notification as read.
func (r *NotificationRepository) MarkRead(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.data.Notifications {
		if r.s.data.Notifications[i].ID == id {
			r.s.data.Notifications[i].Read = true
			return nil
		}
	}
	return repository.ErrNotFound
}

// MarkAllRead flags every notification as read.
func (r *NotificationRepository) MarkAllRead(_ context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.data.Notifications {
		r.s.data.Notifications[i].Read = true
	}
	return nil
}

// Delete removes the notification with the given id.
func (r *NotificationRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.data.Notifications {
		if r.s.data.Notifications[i].ID == id {
			r.s.data.Notifications = append(r.s.data.Notifications[:i], r.s.data.Notifications[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// CountUnread returns the number of unread notifications.
func (r *NotificationRepository) CountUnread(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, n := range r.s.data.Notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}
