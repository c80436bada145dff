package memstore

import (
	"context"

	"github.com/accessarch/crm/internal/domain/feedback"
	"github.com/accessarch/crm/internal/repository"
)

// FeedbackRepository is the feedback view over the store.
type FeedbackRepository struct {
	s *Store
}

// Create assigns the next feedback id and appends the record.
func (r *FeedbackRepository) Create(_ context.Context, f *feedback.Feedback) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f.ID = r.s.next.Feedback
	r.s.next.Feedback++
	r.s.data.Feedback = append(r.s.data.Feedback, *f)
	return nil
}

// Get returns a copy of the feedback record with the given id.
func (r *FeedbackRepository) Get(_ context.Context, id int) (*feedback.Feedback, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.data.Feedback {
		if r.s.data.Feedback[i].ID == id {
			f := r.s.data.Feedback[i]
			return &f, nil
		}
	}
	return nil, repository.ErrNotFound
}

// List returns a copy of all feedback records in insertion order.
func (r *FeedbackRepository) List(_ context.Context) ([]feedback.Feedback, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]feedback.Feedback(nil), r.s.data.Feedback...), nil
}

// Delete removes the feedback record with the given id.
func (r *FeedbackRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.data.Feedback {
		if r.s.data.Feedback[i].ID == id {
			r.s.data.Feedback = append(r.s.data.Feedback[:i], r.s.data.Feedback[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// ListByProject returns the feedback referencing projectID.
func (r *FeedbackRepository) ListByProject(_ context.Context, projectID int) ([]feedback.Feedback, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []feedback.Feedback
	for _, f := range r.s.data.Feedback {
		if f.ProjectID == projectID {
			out = append(out, f)
		}
	}
	return out, nil
}
