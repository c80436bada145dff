package memstore

import (
	"context"

	"github.com/accessarch/crm/internal/domain/activity"
)

// ActivityRepository is the activity-feed view over the store.
type ActivityRepository struct {
	s *Store
}

// Log assigns the next activity id and prepends the entry. The feed is
// truncated to activity.MaxEntries, evicting the oldest.
func (r *ActivityRepository) Log(_ context.Context, entry *activity.Entry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry.ID = r.s.next.Activities
	r.s.next.Activities++
	r.s.data.Activities = append([]activity.Entry{*entry}, r.s.data.Activities...)
	if len(r.s.data.Activities) > activity.MaxEntries {
		r.s.data.Activities = r.s.data.Activities[:activity.MaxEntries]
	}
	return nil
}

// List returns a copy of the feed, newest first.
func (r *ActivityRepository) List(_ context.Context) ([]activity.Entry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]activity.Entry(nil), r.s.data.Activities...), nil
}
