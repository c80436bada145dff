package memstore

import (
	"context"

	"github.com/accessarch/crm/internal/domain/client"
	"github.com/accessarch/crm/internal/repository"
)

// ClientRepository is the client view over the store.
type ClientRepository struct {
	s *Store
}

// Create assigns the next client id and appends the record.
func (r *ClientRepository) Create(_ context.Context, c *client.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.ID = r.s.next.Clients
	r.s.next.Clients++
	r.s.data.Clients = append(r.s.data.Clients, *c)
	return nil
}

// Get returns a copy of the client with the given id.
func (r *ClientRepository) Get(_ context.Context, id int) (*client.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.data.Clients {
		if r.s.data.Clients[i].ID == id {
			c := r.s.data.Clients[i]
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

// List returns a copy of all clients in insertion order.
func (r *ClientRepository) List(_ context.Context) ([]client.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]client.Client(nil), r.s.data.Clients...), nil
}

// Update replaces the stored client with the same id.
func (r *ClientRepository) Update(_ context.Context, c *client.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.data.Clients {
		if r.s.data.Clients[i].ID == c.ID {
			r.s.data.Clients[i] = *c
			return nil
		}
	}
	return repository.ErrNotFound
}

// Delete removes the client with the given id.
func (r *ClientRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.data.Clients {
		if r.s.data.Clients[i].ID == id {
			r.s.data.Clients = append(r.s.data.Clients[:i], r.s.data.Clients[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// AdjustProjects shifts the denormalized project counter by delta,
// flooring at zero.
func (r *ClientRepository) AdjustProjects(_ context.Context, clientID, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.data.Clients {
		if r.s.data.Clients[i].ID == clientID {
			r.s.data.Clients[i].Projects += delta
			if r.s.data.Clients[i].Projects < 0 {
				r.s.data.Clients[i].Projects = 0
			}
			return nil
		}
	}
	return repository.ErrNotFound
}
