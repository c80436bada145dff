// Package memstore is the in-memory entity store: the source of truth
// for the five collections and their monotonic id counters. Repository
// accessors hand out per-entity views over the shared state, mirroring
// how the persistence backends expose one repository per entity.
package memstore

import (
	"sync"

	"github.com/accessarch/crm/internal/domain/activity"
	"github.com/accessarch/crm/internal/domain/client"
	"github.com/accessarch/crm/internal/domain/feedback"
	"github.com/accessarch/crm/internal/domain/notification"
	"github.com/accessarch/crm/internal/domain/project"
)

// Snapshot is a full value copy of the store's collections, shaped for
// JSON persistence under the crm_data key.
type Snapshot struct {
	Clients       []client.Client             `json:"clients"`
	Projects      []project.Project           `json:"projects"`
	Feedback      []feedback.Feedback         `json:"feedback"`
	Notifications []notification.Notification `json:"notifications"`
	Activities    []activity.Entry            `json:"activities"`
}

// Counters holds the next id per collection, shaped for JSON
// persistence under the crm_next_id key. Retired ids are never reused.
type Counters struct {
	Clients       int `json:"clients"`
	Projects      int `json:"projects"`
	Feedback      int `json:"feedback"`
	Notifications int `json:"notifications"`
	Activities    int `json:"activities"`
}

// Store holds all entity collections behind one lock.
type Store struct {
	mu   sync.RWMutex
	data Snapshot
	next Counters
}

// New creates an empty store with all counters at 1.
func New() *Store {
	return &Store{
		next: Counters{Clients: 1, Projects: 1, Feedback: 1, Notifications: 1, Activities: 1},
	}
}

// Snapshot returns a deep value copy of the collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Clients:       append([]client.Client(nil), s.data.Clients...),
		Projects:      append([]project.Project(nil), s.data.Projects...),
		Feedback:      append([]feedback.Feedback(nil), s.data.Feedback...),
		Notifications: append([]notification.Notification(nil), s.data.Notifications...),
		Activities:    append([]activity.Entry(nil), s.data.Activities...),
	}
}

// Counters returns the current id counters.
func (s *Store) Counters() Counters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.next
}

// Restore replaces the store state with a snapshot and its counters.
func (s *Store) Restore(snap Snapshot, next Counters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = Snapshot{
		Clients:       append([]client.Client(nil), snap.Clients...),
		Projects:      append([]project.Project(nil), snap.Projects...),
		Feedback:      append([]feedback.Feedback(nil), snap.Feedback...),
		Notifications: append([]notification.Notification(nil), snap.Notifications...),
		Activities:    append([]activity.Entry(nil), snap.Activities...),
	}
	s.next = next
	s.floorCounters()
}

// Reset empties the store and restarts every counter at 1.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = Snapshot{}
	s.next = Counters{Clients: 1, Projects: 1, Feedback: 1, Notifications: 1, Activities: 1}
}

// floorCounters keeps counters strictly above every live id, so a
// snapshot with stale counters can never hand out a duplicate.
func (s *Store) floorCounters() {
	for _, c := range s.data.Clients {
		if c.ID >= s.next.Clients {
			s.next.Clients = c.ID + 1
		}
	}
	for _, p := range s.data.Projects {
		if p.ID >= s.next.Projects {
			s.next.Projects = p.ID + 1
		}
	}
	for _, f := range s.data.Feedback {
		if f.ID >= s.next.Feedback {
			s.next.Feedback = f.ID + 1
		}
	}
	for _, n := range s.data.Notifications {
		if n.ID >= s.next.Notifications {
			s.next.Notifications = n.ID + 1
		}
	}
	for _, a := range s.data.Activities {
		if a.ID >= s.next.Activities {
			s.next.Activities = a.ID + 1
		}
	}
	if s.next.Clients < 1 {
		s.next.Clients = 1
	}
	if s.next.Projects < 1 {
		s.next.Projects = 1
	}
	if s.next.Feedback < 1 {
		s.next.Feedback = 1
	}
	if s.next.Notifications < 1 {
		s.next.Notifications = 1
	}
	if s.next.Activities < 1 {
		s.next.Activities = 1
	}
}

// Clients returns the client repository view.
func (s *Store) Clients() *ClientRepository { return &ClientRepository{s: s} }

// Projects returns the project repository view.
func (s *Store) Projects() *ProjectRepository { return &ProjectRepository{s: s} }

// Feedback returns the feedback repository view.
func (s *Store) Feedback() *FeedbackRepository { return &FeedbackRepository{s: s} }

// Notifications returns the notification repository view.
func (s *Store) Notifications() *NotificationRepository { return &NotificationRepository{s: s} }

// Activities returns the activity repository view.
func (s *Store) Activities() *ActivityRepository { return &ActivityRepository{s: s} }
