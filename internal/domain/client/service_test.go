package client_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/accessarch/crm/internal/alerts"
	"github.com/accessarch/crm/internal/clock"
	"github.com/accessarch/crm/internal/domain/client"
	"github.com/accessarch/crm/internal/domain/feedback"
	"github.com/accessarch/crm/internal/domain/notification"
	"github.com/accessarch/crm/internal/domain/project"
	"github.com/accessarch/crm/internal/memstore"
	"github.com/accessarch/crm/internal/repository/mocks"
)

type clientFixture struct {
	store     *memstore.Store
	svc       *client.Service
	recorder  *alerts.Recorder
	persister *mocks.Persister
}

func newClientFixture() *clientFixture {
	store := memstore.New()
	recorder := &alerts.Recorder{}
	persister := &mocks.Persister{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.Fixed(time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC))

	svc := client.NewService(
		store.Clients(), store.Projects(), store.Notifications(), store.Activities(),
		persister, recorder, clk, logger,
	)
	return &clientFixture{store: store, svc: svc, recorder: recorder, persister: persister}
}

func TestAddClient(t *testing.T) {
	ctx := context.Background()
	fx := newClientFixture()

	c, err := fx.svc.Add(ctx, client.AddRequest{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Company: "Analytical Engines",
		Status:  client.StatusActive,
	})
	require.NoError(t, err)
	require.Equal(t, 1, c.ID)
	require.Equal(t, "2026-08-28", c.JoinDate)
	require.Zero(t, c.Projects)

	notifications, err := fx.store.Notifications().List(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, "New Client", notifications[0].Title)
	require.Equal(t, notification.TypeLead, notifications[0].Type)
	require.False(t, notifications[0].Read)

	activities, err := fx.store.Activities().List(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.Equal(t, "Client Added", activities[0].Action)
	require.Equal(t, "user-plus", activities[0].Icon)

	require.Equal(t, 1, fx.persister.Calls)
	require.Len(t, fx.recorder.Signals, 1)
	require.Equal(t, alerts.LevelSuccess, fx.recorder.Signals[0].Level)
	require.Equal(t, "Client Ada Lovelace added successfully!", fx.recorder.Signals[0].Message)
}

func TestAddClientDefaultsStatusToActive(t *testing.T) {
	fx := newClientFixture()

	c, err := fx.svc.Add(context.Background(), client.AddRequest{Name: "No Status"})
	require.NoError(t, err)
	require.Equal(t, client.StatusActive, c.Status)
}

func TestAddClientRequiresName(t *testing.T) {
	ctx := context.Background()
	fx := newClientFixture()

	_, err := fx.svc.Add(ctx, client.AddRequest{Name: "   "})
	require.ErrorIs(t, err, client.ErrInvalidInput)

	list, listErr := fx.store.Clients().List(ctx)
	require.NoError(t, listErr)
	require.Empty(t, list)
	require.Zero(t, fx.persister.Calls)

	require.Len(t, fx.recorder.Signals, 1)
	require.Equal(t, alerts.LevelError, fx.recorder.Signals[0].Level)
}

func TestUpdateClientMergesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	fx := newClientFixture()

	created, err := fx.svc.Add(ctx, client.AddRequest{Name: "Before", Email: "before@example.com"})
	require.NoError(t, err)

	name := "After"
	updated, err := fx.svc.Update(ctx, created.ID, client.UpdateRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "After", updated.Name)
	require.Equal(t, "before@example.com", updated.Email)
}

func TestUpdateMissingClient(t *testing.T) {
	fx := newClientFixture()

	name := "nobody"
	_, err := fx.svc.Update(context.Background(), 99, client.UpdateRequest{Name: &name})
	require.ErrorIs(t, err, client.ErrClientNotFound)
}

func TestDeleteClientCascadesProjectsButKeepsFeedback(t *testing.T) {
	ctx := context.Background()
	fx := newClientFixture()

	created, err := fx.svc.Add(ctx, client.AddRequest{Name: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, fx.store.Projects().Create(ctx, &project.Project{Name: "p1", ClientID: created.ID}))
	require.NoError(t, fx.store.Projects().Create(ctx, &project.Project{Name: "p2", ClientID: created.ID}))
	require.NoError(t, fx.store.Feedback().Create(ctx, &feedback.Feedback{ClientID: created.ID, ProjectID: 1, Rating: 4}))

	require.NoError(t, fx.svc.Delete(ctx, created.ID))

	_, err = fx.store.Clients().Get(ctx, created.ID)
	require.Error(t, err)

	projects, err := fx.store.Projects().List(ctx)
	require.NoError(t, err)
	require.Empty(t, projects)

	// Feedback referencing the removed projects is deliberately kept.
	orphaned, err := fx.store.Feedback().List(ctx)
	require.NoError(t, err)
	require.Len(t, orphaned, 1)

	notifications, err := fx.store.Notifications().List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Client Removed", notifications[0].Title)

	activities, err := fx.store.Activities().List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Client Deleted", activities[0].Action)
	require.Equal(t, "user-minus", activities[0].Icon)
}

func TestDeleteMissingClient(t *testing.T) {
	fx := newClientFixture()

	err := fx.svc.Delete(context.Background(), 7)
	require.ErrorIs(t, err, client.ErrClientNotFound)
	require.Len(t, fx.recorder.Signals, 1)
	require.Equal(t, alerts.LevelError, fx.recorder.Signals[0].Level)
}
