package memstore

import (
	"context"

	"github.com/accessarch/crm/internal/domain/project"
	"github.com/accessarch/crm/internal/repository"
)

// ProjectRepository is the project view over the store.
type ProjectRepository struct {
	s *Store
}

// Create assigns the next project id and appends the record.
func (r *ProjectRepository) Create(_ context.Context, p *project.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = r.s.next.Projects
	r.s.next.Projects++
	r.s.data.Projects = append(r.s.data.Projects, *p)
	return nil
}

// Get returns a copy of the project with the given id.
func (r *ProjectRepository) Get(_ context.Context, id int) (*project.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.data.Projects {
		if r.s.data.Projects[i].ID == id {
			p := r.s.data.Projects[i]
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

// List returns a copy of all projects in insertion order.
func (r *ProjectRepository) List(_ context.Context) ([]project.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]project.Project(nil), r.s.data.Projects...), nil
}

// Update replaces the stored project with the same id.
func (r *ProjectRepository) Update(_ context.Context, p *project.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.data.Projects {
		if r.s.data.Projects[i].ID == p.ID {
			r.s.data.Projects[i] = *p
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes the project with the given id.
func (r *ProjectRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.data.Projects {
		if r.s.data.Projects[i].ID == id {
			r.s.data.Projects = append(r.s.data.Projects[:i], r.s.data.Projects[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// ListByClient returns the projects referencing clientID.
func (r *ProjectRepository) ListByClient(_ context.Context, clientID int) ([]project.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []project.Project
	for _, p := range r.s.data.Projects {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

// DeleteByClient removes every project referencing clientID and
// reports how many were removed. Feedback referencing those projects
// is left untouched.
func (r *ProjectRepository) DeleteByClient(_ context.Context, clientID int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.data.Projects[:0]
	removed := 0
	for _, p := range r.s.data.Projects {
		if p.ClientID == clientID {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	r.s.data.Projects = kept
	return removed, nil
}
