package project_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/accessarch/crm/internal/alerts"
	"github.com/accessarch/crm/internal/domain/client"
	"github.com/accessarch/crm/internal/domain/project"
	"github.com/accessarch/crm/internal/memstore"
	"github.com/accessarch/crm/internal/repository/mocks"
)

// fixedRand always returns the same value from Intn.
type fixedRand struct{ n int }

func (r fixedRand) Intn(int) int { return r.n }

type projectFixture struct {
	store     *memstore.Store
	svc       *project.Service
	recorder  *alerts.Recorder
	persister *mocks.Persister
	owner     *client.Client
}

func newProjectFixture(t *testing.T) *projectFixture {
	t.Helper()

	store := memstore.New()
	recorder := &alerts.Recorder{}
	persister := &mocks.Persister{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	owner := &client.Client{Name: "Owner Corp"}
	require.NoError(t, store.Clients().Create(context.Background(), owner))

	svc := project.NewService(
		store.Projects(), store.Clients(), store.Notifications(), store.Activities(),
		persister, recorder, logger,
	)
	return &projectFixture{store: store, svc: svc, recorder: recorder, persister: persister, owner: owner}
}

func TestAddProject(t *testing.T) {
	ctx := context.Background()
	fx := newProjectFixture(t)

	p, err := fx.svc.Add(ctx, project.AddRequest{
		Name:     "New Build",
		ClientID: fx.owner.ID,
		Budget:   50000,
	})
	require.NoError(t, err)
	require.Equal(t, 1, p.ID)
	require.Equal(t, "Owner Corp", p.ClientName)
	require.Equal(t, project.StatusPlanning, p.Status)

	owner, err := fx.store.Clients().Get(ctx, fx.owner.ID)
	require.NoError(t, err)
	require.Equal(t, 1, owner.Projects)

	require.Equal(t, 1, fx.persister.Calls)
}

func TestAddProjectUnknownClientLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	fx := newProjectFixture(t)

	_, err := fx.svc.Add(ctx, project.AddRequest{Name: "Orphan", ClientID: 99})
	require.ErrorIs(t, err, project.ErrClientNotFound)

	list, listErr := fx.store.Projects().List(ctx)
	require.NoError(t, listErr)
	require.Empty(t, list)
	require.Zero(t, fx.persister.Calls)
}

func TestAddProjectValidatesProgressAndBudget(t *testing.T) {
	ctx := context.Background()
	fx := newProjectFixture(t)

	_, err := fx.svc.Add(ctx, project.AddRequest{Name: "Bad", ClientID: fx.owner.ID, Progress: 120})
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = fx.svc.Add(ctx, project.AddRequest{Name: "Bad", ClientID: fx.owner.ID, Budget: -1})
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestUpdateProjectCompletionEmitsNotification(t *testing.T) {
	ctx := context.Background()
	fx := newProjectFixture(t)

	p, err := fx.svc.Add(ctx, project.AddRequest{Name: "Almost Done", ClientID: fx.owner.ID, Status: project.StatusInProgress})
	require.NoError(t, err)

	done := project.StatusCompleted
	_, err = fx.svc.Update(ctx, p.ID, project.UpdateRequest{Status: &done})
	require.NoError(t, err)

	notifications, err := fx.store.Notifications().List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Project Completed", notifications[0].Title)
}

func TestUpdateProjectStayingCompletedDoesNotReNotify(t *testing.T) {
	ctx := context.Background()
	fx := newProjectFixture(t)

	p, err := fx.svc.Add(ctx, project.AddRequest{Name: "Done", ClientID: fx.owner.ID, Status: project.StatusCompleted})
	require.NoError(t, err)

	before, err := fx.store.Notifications().List(ctx)
	require.NoError(t, err)

	name := "Done v2"
	_, err = fx.svc.Update(ctx, p.ID, project.UpdateRequest{Name: &name})
	require.NoError(t, err)

	after, err := fx.store.Notifications().List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))
}

func TestDeleteProjectDecrementsClientCounter(t *testing.T) {
	ctx := context.Background()
	fx := newProjectFixture(t)

	p, err := fx.svc.Add(ctx, project.AddRequest{Name: "Short Lived", ClientID: fx.owner.ID})
	require.NoError(t, err)

	require.NoError(t, fx.svc.Delete(ctx, p.ID))

	owner, err := fx.store.Clients().Get(ctx, fx.owner.ID)
	require.NoError(t, err)
	require.Zero(t, owner.Projects)
}

func TestDeleteProjectToleratesMissingOwner(t *testing.T) {
	ctx := context.Background()
	fx := newProjectFixture(t)

	p, err := fx.svc.Add(ctx, project.AddRequest{Name: "Orphaned", ClientID: fx.owner.ID})
	require.NoError(t, err)
	require.NoError(t, fx.store.Clients().Delete(ctx, fx.owner.ID))

	require.NoError(t, fx.svc.Delete(ctx, p.ID))
}

func TestAdvanceProgressClampsAndCompletes(t *testing.T) {
	ctx := context.Background()
	fx := newProjectFixture(t)

	p, err := fx.svc.Add(ctx, project.AddRequest{
		Name:     "Nearly There",
		ClientID: fx.owner.ID,
		Status:   project.StatusInProgress,
		Progress: 98,
	})
	require.NoError(t, err)

	// Intn(5) returning 4 means the tick adds 5 points.
	changed, err := fx.svc.AdvanceProgress(ctx, fixedRand{n: 4})
	require.NoError(t, err)
	require.True(t, changed)

	got, err := fx.store.Projects().Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 100, got.Progress)
	require.Equal(t, project.StatusCompleted, got.Status)

	notifications, err := fx.store.Notifications().List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Project Completed", notifications[0].Title)

	activities, err := fx.store.Activities().List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Project Completed", activities[0].Action)
	require.Equal(t, "check-circle", activities[0].Icon)

	// A second tick finds nothing in progress and changes nothing.
	changed, err = fx.svc.AdvanceProgress(ctx, fixedRand{n: 4})
	require.NoError(t, err)
	require.False(t, changed)
}

func TestAdvanceProgressSkipsNonInProgress(t *testing.T) {
	ctx := context.Background()
	fx := newProjectFixture(t)

	p, err := fx.svc.Add(ctx, project.AddRequest{
		Name:     "Parked",
		ClientID: fx.owner.ID,
		Status:   project.StatusOnHold,
		Progress: 40,
	})
	require.NoError(t, err)

	changed, err := fx.svc.AdvanceProgress(ctx, fixedRand{n: 2})
	require.NoError(t, err)
	require.False(t, changed)

	got, err := fx.store.Projects().Get(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 40, got.Progress)
}
