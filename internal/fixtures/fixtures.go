// Package fixtures bulk-loads the initial seed collections from static
// JSON files. The four reads fan out concurrently and fail as a unit:
// if any one file is missing or malformed the whole load fails and the
// caller falls back to a persisted snapshot.
package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/accessarch/crm/internal/domain/activity"
	"github.com/accessarch/crm/internal/domain/client"
	"github.com/accessarch/crm/internal/domain/feedback"
	"github.com/accessarch/crm/internal/domain/notification"
	"github.com/accessarch/crm/internal/domain/project"
)

// File names expected inside the fixtures directory.
const (
	ClientsFile       = "clients.json"
	ProjectsFile      = "projects.json"
	FeedbackFile      = "feedback.json"
	NotificationsFile = "notifications.json"
)

// Data holds the four seeded collections.
type Data struct {
	Clients       []client.Client
	Projects      []project.Project
	Feedback      []feedback.Feedback
	Notifications []notification.Notification
}

// Load reads the four fixture files from dir.
func Load(ctx context.Context, dir string) (*Data, error) {
	var data Data

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return readJSON(ctx, filepath.Join(dir, ClientsFile), &data.Clients) })
	g.Go(func() error { return readJSON(ctx, filepath.Join(dir, ProjectsFile), &data.Projects) })
	g.Go(func() error { return readJSON(ctx, filepath.Join(dir, FeedbackFile), &data.Feedback) })
	g.Go(func() error { return readJSON(ctx, filepath.Join(dir, NotificationsFile), &data.Notifications) })

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading fixtures: %w", err)
	}
	return &data, nil
}

func readJSON(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// SeedActivities returns the initial activity feed installed after a
// successful fixture load.
func SeedActivities() []activity.Entry {
	return []activity.Entry{
		{ID: 1, Action: "Project Completed", Details: "Retail Mall Renovation marked as completed", Time: "2 days ago", Icon: "check-circle"},
		{ID: 2, Action: "New Client Added", Details: "Global Design Co. added to client database", Time: "1 week ago", Icon: "user-plus"},
		{ID: 3, Action: "Feedback Submitted", Details: "Tech Innovate Inc. submitted project feedback", Time: "1 week ago", Icon: "message-square"},
		{ID: 4, Action: "Project Delayed", Details: "Tech Campus Phase 1 timeline extended by 2 weeks", Time: "2 weeks ago", Icon: "alert-circle"},
	}
}
