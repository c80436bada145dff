package activity

import "context"

// Repository provides persistence for activity entries. Log prepends
// and evicts the oldest entry beyond MaxEntries.
type Repository interface {
	Log(ctx context.Context, entry *Entry) error
	List(ctx context.Context) ([]Entry, error)
}

// Persister writes the full entity snapshot after a mutation.
type Persister interface {
	Persist(ctx context.Context)
}
