package memstore

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/accessarch/crm/internal/domain/activity"
	"github.com/accessarch/crm/internal/domain/client"
	"github.com/accessarch/crm/internal/domain/notification"
	"github.com/accessarch/crm/internal/domain/project"
	"github.com/accessarch/crm/internal/repository"
)

func TestClientIDsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	s := New()
	repo := s.Clients()

	first := &client.Client{Name: "First"}
	require.NoError(t, repo.Create(ctx, first))
	require.Equal(t, 1, first.ID)

	second := &client.Client{Name: "Second"}
	require.NoError(t, repo.Create(ctx, second))
	require.Equal(t, 2, second.ID)

	require.NoError(t, repo.Delete(ctx, second.ID))

	third := &client.Client{Name: "Third"}
	require.NoError(t, repo.Create(ctx, third))
	require.Equal(t, 3, third.ID)
}

func TestRestoreFloorsCountersAboveLiveIDs(t *testing.T) {
	ctx := context.Background()
	s := New()

	s.Restore(Snapshot{
		Clients:  []client.Client{{ID: 5, Name: "Existing"}},
		Projects: []project.Project{{ID: 9, Name: "Existing"}},
	}, Counters{})

	c := &client.Client{Name: "Next"}
	require.NoError(t, s.Clients().Create(ctx, c))
	require.Equal(t, 6, c.ID)

	p := &project.Project{Name: "Next"}
	require.NoError(t, s.Projects().Create(ctx, p))
	require.Equal(t, 10, p.ID)
}

func TestRestoreKeepsHigherPersistedCounters(t *testing.T) {
	ctx := context.Background()
	s := New()

	s.Restore(Snapshot{
		Clients: []client.Client{{ID: 2, Name: "Survivor"}},
	}, Counters{Clients: 7, Projects: 1, Feedback: 1, Notifications: 1, Activities: 1})

	c := &client.Client{Name: "Next"}
	require.NoError(t, s.Clients().Create(ctx, c))
	require.Equal(t, 7, c.ID)
}

func TestGetMissingClientReturnsNotFound(t *testing.T) {
	_, err := New().Clients().Get(context.Background(), 42)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNotificationsStayNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()
	repo := s.Notifications()

	require.NoError(t, repo.Create(ctx, &notification.Notification{Title: "older"}))
	require.NoError(t, repo.Create(ctx, &notification.Notification{Title: "newer"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "newer", list[0].Title)
	require.Equal(t, "older", list[1].Title)
}

func TestCountUnread(t *testing.T) {
	ctx := context.Background()
	s := New()
	repo := s.Notifications()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &notification.Notification{Title: "n"}))
	}
	require.NoError(t, repo.MarkRead(ctx, 2))

	count, err := repo.CountUnread(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	require.NoError(t, repo.MarkAllRead(ctx))
	count, err = repo.CountUnread(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestActivityFeedEvictsOldestPastCap(t *testing.T) {
	ctx := context.Background()
	s := New()
	repo := s.Activities()

	for i := 1; i <= activity.MaxEntries+3; i++ {
		entry := &activity.Entry{Action: fmt.Sprintf("action %d", i)}
		require.NoError(t, repo.Log(ctx, entry))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, activity.MaxEntries)
	require.Equal(t, fmt.Sprintf("action %d", activity.MaxEntries+3), list[0].Action)
	require.Equal(t, "action 4", list[len(list)-1].Action)
}

func TestAdjustProjectsFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	s := New()
	repo := s.Clients()

	c := &client.Client{Name: "Floor", Projects: 1}
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, repo.AdjustProjects(ctx, c.ID, -1))
	require.NoError(t, repo.AdjustProjects(ctx, c.ID, -1))

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Zero(t, got.Projects)
}

func TestDeleteByClientLeavesOtherProjects(t *testing.T) {
	ctx := context.Background()
	s := New()
	repo := s.Projects()

	require.NoError(t, repo.Create(ctx, &project.Project{Name: "a", ClientID: 1}))
	require.NoError(t, repo.Create(ctx, &project.Project{Name: "b", ClientID: 2}))
	require.NoError(t, repo.Create(ctx, &project.Project{Name: "c", ClientID: 1}))

	removed, err := repo.DeleteByClient(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "b", list[0].Name)
}

func TestSnapshotIsACopy(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Clients().Create(ctx, &client.Client{Name: "original"}))

	snap := s.Snapshot()
	snap.Clients[0].Name = "mutated"

	got, err := s.Clients().Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "original", got.Name)
}

func TestResetRestartsCounters(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Clients().Create(ctx, &client.Client{Name: "gone"}))

	s.Reset()

	list, err := s.Clients().List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	c := &client.Client{Name: "fresh"}
	require.NoError(t, s.Clients().Create(ctx, c))
	require.Equal(t, 1, c.ID)
}
