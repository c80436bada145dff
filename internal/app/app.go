// Package app assembles the store, services, persistence, and demo
// simulation into one explicitly constructed context with a defined
// lifecycle, replacing the ambient globals of the original dashboard.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/accessarch/crm/internal/alerts"
	"github.com/accessarch/crm/internal/clock"
	"github.com/accessarch/crm/internal/config"
	"github.com/accessarch/crm/internal/domain/activity"
	"github.com/accessarch/crm/internal/domain/client"
	"github.com/accessarch/crm/internal/domain/feedback"
	"github.com/accessarch/crm/internal/domain/notification"
	"github.com/accessarch/crm/internal/domain/project"
	"github.com/accessarch/crm/internal/domain/stats"
	"github.com/accessarch/crm/internal/fixtures"
	"github.com/accessarch/crm/internal/memstore"
	"github.com/accessarch/crm/internal/repository"
	"github.com/accessarch/crm/internal/sim"
	"github.com/accessarch/crm/internal/snapshot"
)

// App is the assembled application context.
type App struct {
	Store *memstore.Store
	Blobs *snapshot.Store

	Clients       *client.Service
	Projects      *project.Service
	Feedback      *feedback.Service
	Notifications *notification.Service
	Activities    *activity.Service
	Stats         *stats.Service
	Sim           *sim.Simulator

	fixturesDir string
	persister   *persister
	logger      *slog.Logger
}

// New opens the blob store and wires all services together.
func New(cfg config.Config, sink alerts.Sink, logger *slog.Logger) (*App, error) {
	blobs, err := snapshot.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot store: %w", err)
	}

	store := memstore.New()
	p := &persister{store: store, blobs: blobs, logger: logger}
	clk := clock.System()

	notificationSvc := notification.NewService(store.Notifications(), p, logger)
	activitySvc := activity.NewService(store.Activities(), p, logger)
	clientSvc := client.NewService(store.Clients(), store.Projects(), store.Notifications(), store.Activities(), p, sink, clk, logger)
	projectSvc := project.NewService(store.Projects(), store.Clients(), store.Notifications(), store.Activities(), p, sink, logger)
	feedbackSvc := feedback.NewService(store.Feedback(), store.Clients(), store.Projects(), store.Notifications(), store.Activities(), p, sink, clk, logger)
	statsSvc := stats.NewService(store.Clients(), store.Projects(), store.Feedback(), logger)

	seed := cfg.Demo.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	simulator := sim.New(projectSvc, notificationSvc, sink, rand.New(rand.NewSource(seed)), sim.Config{
		ProgressPeriod: cfg.Demo.ProgressPeriod,
		LeadPeriodMin:  cfg.Demo.LeadPeriodMin,
		LeadJitter:     cfg.Demo.LeadJitter,
		LeadChance:     cfg.Demo.LeadChance,
	}, logger)

	return &App{
		Store:         store,
		Blobs:         blobs,
		Clients:       clientSvc,
		Projects:      projectSvc,
		Feedback:      feedbackSvc,
		Notifications: notificationSvc,
		Activities:    activitySvc,
		Stats:         statsSvc,
		Sim:           simulator,
		fixturesDir:   cfg.Fixtures.Dir,
		persister:     p,
		logger:        logger,
	}, nil
}

// Close releases the blob store.
func (a *App) Close() error {
	return a.Blobs.Close()
}

// LoadInitial seeds the store: fixtures first, then the persisted
// snapshot if the fixture load fails, then empty defaults.
func (a *App) LoadInitial(ctx context.Context) error {
	fx, err := fixtures.Load(ctx, a.fixturesDir)
	if err == nil {
		a.Store.Restore(memstore.Snapshot{
			Clients:       fx.Clients,
			Projects:      fx.Projects,
			Feedback:      fx.Feedback,
			Notifications: fx.Notifications,
			Activities:    fixtures.SeedActivities(),
		}, memstore.Counters{})
		a.persister.Persist(ctx)
		a.logger.Info("seeded from fixtures", "dir", a.fixturesDir)
		return nil
	}
	a.logger.Warn("fixture load failed, falling back to snapshot", "error", err)

	if err := a.restoreSnapshot(ctx); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			a.logger.Info("no persisted snapshot, starting empty")
			return nil
		}
		return err
	}
	a.logger.Info("restored persisted snapshot")
	return nil
}

// Init prepares the store for a new process: an existing persisted
// snapshot wins so repeated runs keep their mutations, otherwise the
// initial load runs.
func (a *App) Init(ctx context.Context) error {
	err := a.restoreSnapshot(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return a.LoadInitial(ctx)
}

func (a *App) restoreSnapshot(ctx context.Context) error {
	raw, err := a.Blobs.Get(ctx, snapshot.DataKey)
	if err != nil {
		return err
	}

	var snap memstore.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}

	var next memstore.Counters
	rawNext, err := a.Blobs.Get(ctx, snapshot.CountersKey)
	if err == nil {
		if err := json.Unmarshal(rawNext, &next); err != nil {
			return fmt.Errorf("parsing counters: %w", err)
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	a.Store.Restore(snap, next)
	return nil
}

// Export writes the pretty-printed snapshot JSON to w.
func (a *App) Export(w io.Writer) error {
	data, err := json.MarshalIndent(a.Store.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Import replaces the store state from snapshot JSON and persists it.
func (a *App) Import(ctx context.Context, r io.Reader) error {
	var snap memstore.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}
	a.Store.Restore(snap, memstore.Counters{})
	a.persister.Persist(ctx)
	return nil
}

// Reset deletes the persisted blobs and empties the store, so the next
// Init reseeds from fixtures.
func (a *App) Reset(ctx context.Context) error {
	if err := a.Blobs.Delete(ctx, snapshot.DataKey); err != nil {
		return err
	}
	if err := a.Blobs.Delete(ctx, snapshot.CountersKey); err != nil {
		return err
	}
	a.Store.Reset()
	return nil
}

// persister serializes the whole store after every mutation. Writes
// are best-effort: failures are logged, never surfaced, so a crash
// between mutation and persistence loses that one mutation only.
type persister struct {
	store  *memstore.Store
	blobs  *snapshot.Store
	logger *slog.Logger
}

func (p *persister) Persist(ctx context.Context) {
	data, err := json.Marshal(p.store.Snapshot())
	if err != nil {
		p.logger.Error("snapshot encode failed", "error", err)
		return
	}
	next, err := json.Marshal(p.store.Counters())
	if err != nil {
		p.logger.Error("counters encode failed", "error", err)
		return
	}

	if err := p.blobs.Put(ctx, snapshot.DataKey, data); err != nil {
		p.logger.Error("snapshot write failed", "error", err)
	}
	if err := p.blobs.Put(ctx, snapshot.CountersKey, next); err != nil {
		p.logger.Error("counters write failed", "error", err)
	}
}
