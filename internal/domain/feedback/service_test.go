package feedback_test

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
	"github.com/accessarch/crm/internal/domain/project"
	"github.com/accessarch/crm/internal/memstore"
	"github.com/accessarch/crm/internal/repository/mocks"
)

type feedbackFixture struct {
	store     *memstore.Store
	svc       *feedback.Service
	recorder  *alerts.Recorder
	persister *mocks.Persister
	owner     *client.Client
	proj      *project.Project
}

func newFeedbackFixture(t *testing.T) *feedbackFixture {
	t.Helper()
	ctx := context.Background()

	store := memstore.New()
	recorder := &alerts.Recorder{}
	persister := &mocks.Persister{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.Fixed(time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC))

	owner := &client.Client{Name: "Rater Inc."}
	require.NoError(t, store.Clients().Create(ctx, owner))
	proj := &project.Project{Name: "Rated Build", ClientID: owner.ID}
	require.NoError(t, store.Projects().Create(ctx, proj))

	svc := feedback.NewService(
		store.Feedback(), store.Clients(), store.Projects(), store.Notifications(), store.Activities(),
		persister, recorder, clk, logger,
	)
	return &feedbackFixture{store: store, svc: svc, recorder: recorder, persister: persister, owner: owner, proj: proj}
}

func TestAddFeedback(t *testing.T) {
	ctx := context.Background()
	fx := newFeedbackFixture(t)

	f, err := fx.svc.Add(ctx, feedback.AddRequest{
		ClientID:  fx.owner.ID,
		ProjectID: fx.proj.ID,
		Rating:    4,
		Comments:  "Solid delivery",
	})
	require.NoError(t, err)
	require.Equal(t, 1, f.ID)
	require.Equal(t, "Rater Inc.", f.ClientName)
	require.Equal(t, "Rated Build", f.ProjectName)
	require.Equal(t, "2026-08-28", f.Date)

	notifications, err := fx.store.Notifications().List(ctx)
	require.NoError(t, err)
	require.Equal(t, "New Feedback", notifications[0].Title)

	activities, err := fx.store.Activities().List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Feedback Submitted", activities[0].Action)

	require.Equal(t, 1, fx.persister.Calls)
}

func TestAddFeedbackRejectsRatingOutOfRange(t *testing.T) {
	fx := newFeedbackFixture(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := fx.svc.Add(context.Background(), feedback.AddRequest{
			ClientID: fx.owner.ID, ProjectID: fx.proj.ID, Rating: rating,
		})
		require.ErrorIs(t, err, feedback.ErrInvalidInput)
	}
}

func TestAddFeedbackUnknownReferencesLeaveStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	fx := newFeedbackFixture(t)

	_, err := fx.svc.Add(ctx, feedback.AddRequest{ClientID: 99, ProjectID: fx.proj.ID, Rating: 3})
	require.ErrorIs(t, err, feedback.ErrClientNotFound)

	_, err = fx.svc.Add(ctx, feedback.AddRequest{ClientID: fx.owner.ID, ProjectID: 99, Rating: 3})
	require.ErrorIs(t, err, feedback.ErrProjectNotFound)

	list, listErr := fx.store.Feedback().List(ctx)
	require.NoError(t, listErr)
	require.Empty(t, list)
	require.Zero(t, fx.persister.Calls)

	// Both failure shapes surface the same toast.
	require.Len(t, fx.recorder.Signals, 2)
	for _, sig := range fx.recorder.Signals {
		require.Equal(t, alerts.LevelError, sig.Level)
		require.Equal(t, "Client or project not found", sig.Message)
	}
}

func TestDeleteFeedbackEmitsNoSideRecords(t *testing.T) {
	ctx := context.Background()
	fx := newFeedbackFixture(t)

	f, err := fx.svc.Add(ctx, feedback.AddRequest{ClientID: fx.owner.ID, ProjectID: fx.proj.ID, Rating: 5})
	require.NoError(t, err)

	notificationsBefore, err := fx.store.Notifications().List(ctx)
	require.NoError(t, err)
	activitiesBefore, err := fx.store.Activities().List(ctx)
	require.NoError(t, err)

	require.NoError(t, fx.svc.Delete(ctx, f.ID))

	notificationsAfter, err := fx.store.Notifications().List(ctx)
	require.NoError(t, err)
	require.Len(t, notificationsAfter, len(notificationsBefore))
	activitiesAfter, err := fx.store.Activities().List(ctx)
	require.NoError(t, err)
	require.Len(t, activitiesAfter, len(activitiesBefore))

	last := fx.recorder.Signals[len(fx.recorder.Signals)-1]
	require.Equal(t, alerts.LevelSuccess, last.Level)
	require.Equal(t, "Feedback deleted successfully!", last.Message)
}

func TestDeleteMissingFeedback(t *testing.T) {
	fx := newFeedbackFixture(t)
	err := fx.svc.Delete(context.Background(), 42)
	require.ErrorIs(t, err, feedback.ErrFeedbackNotFound)
}
