// Package sim drives the demo activity: a periodic progress tick on
// in-progress projects and an occasional fabricated sales lead. The
// tick bodies are plain methods over an injected random source so tests
// run them deterministically; Run is the wall-clock driver.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/accessarch/crm/internal/alerts"
	"github.com/accessarch/crm/internal/domain/notification"
	"github.com/accessarch/crm/internal/domain/project"
)

var companies = []string{
	"GreenTech Solutions",
	"Urban Design Collective",
	"Modern Living Inc.",
	"Sustainable Builders",
	"Future Spaces LLC",
	"Eco Architecture Group",
}

var projectTypes = []string{
	"commercial building design",
	"residential complex planning",
	"office renovation",
	"hotel design",
	"hospital extension",
	"retail space planning",
}

// ProgressAdvancer advances in-progress projects by a bounded random
// increment.
type ProgressAdvancer interface {
	AdvanceProgress(ctx context.Context, rng project.Rand) (bool, error)
}

// LeadSink receives the fabricated lead notifications.
type LeadSink interface {
	Add(ctx context.Context, title, message string, typ notification.Type) (*notification.Notification, error)
}

// Config sets the timer periods. LeadChance is the per-tick probability
// of actually generating a lead.
type Config struct {
	ProgressPeriod time.Duration
	LeadPeriodMin  time.Duration
	LeadJitter     time.Duration
	LeadChance     float64
}

// DefaultConfig mirrors the original dashboard timings: a 30s progress
// tick and a lead tick every 45-90s firing 70% of the time.
func DefaultConfig() Config {
	return Config{
		ProgressPeriod: 30 * time.Second,
		LeadPeriodMin:  45 * time.Second,
		LeadJitter:     45 * time.Second,
		LeadChance:     0.7,
	}
}

// Simulator owns the two demo timers.
type Simulator struct {
	projects ProgressAdvancer
	leads    LeadSink
	alerts   alerts.Sink
	rng      *rand.Rand
	cfg      Config
	logger   *slog.Logger
}

// New creates a simulator. rng must not be shared with other goroutines.
func New(projects ProgressAdvancer, leads LeadSink, sink alerts.Sink, rng *rand.Rand, cfg Config, logger *slog.Logger) *Simulator {
	return &Simulator{
		projects: projects,
		leads:    leads,
		alerts:   sink,
		rng:      rng,
		cfg:      cfg,
		logger:   logger,
	}
}

// TickProgress runs one progress advance and reports whether any
// project changed.
func (s *Simulator) TickProgress(ctx context.Context) (bool, error) {
	return s.projects.AdvanceProgress(ctx, s.rng)
}

// GenerateLead fabricates a lead notification from the fixed demo
// vocabulary. No entity is created.
func (s *Simulator) GenerateLead(ctx context.Context) error {
	company := companies[s.rng.Intn(len(companies))]
	ptype := projectTypes[s.rng.Intn(len(projectTypes))]

	message := fmt.Sprintf("New inquiry from %s about %s", company, ptype)
	if _, err := s.leads.Add(ctx, "New Lead", message, notification.TypeLead); err != nil {
		return fmt.Errorf("adding lead notification: %w", err)
	}

	alerts.Success(s.alerts, fmt.Sprintf("New lead from %s!", company))
	return nil
}

// Run blocks driving both timers until ctx is canceled. The lead
// period is drawn once at startup, as in the original dashboard.
func (s *Simulator) Run(ctx context.Context) error {
	progress := time.NewTicker(s.cfg.ProgressPeriod)
	defer progress.Stop()

	leadPeriod := s.cfg.LeadPeriodMin
	if s.cfg.LeadJitter > 0 {
		leadPeriod += time.Duration(s.rng.Int63n(int64(s.cfg.LeadJitter)))
	}
	leads := time.NewTicker(leadPeriod)
	defer leads.Stop()

	s.logger.Info("demo simulation started", "progress_period", s.cfg.ProgressPeriod, "lead_period", leadPeriod)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("demo simulation stopped")
			return ctx.Err()
		case <-progress.C:
			changed, err := s.TickProgress(ctx)
			if err != nil {
				s.logger.Warn("progress tick failed", "error", err)
				continue
			}
			if changed {
				s.logger.Debug("progress advanced")
			}
		case <-leads.C:
			if s.rng.Float64() >= s.cfg.LeadChance {
				continue
			}
			if err := s.GenerateLead(ctx); err != nil {
				s.logger.Warn("lead generation failed", "error", err)
			}
		}
	}
}
