package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vision-inspector/internal/domain/entity"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "inspector.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func event(trackID int64, label string, takenAt time.Time) entity.SnapshotEvent {
	return entity.SnapshotEvent{
		TrackID:    trackID,
		Label:      label,
		Confidence: 0.81,
		Path:       "snapshots/test.jpg",
		TakenAt:    takenAt,
	}
}

func TestEventRepository_InsertAndGetRecent(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

	id, err := repo.Insert(ctx, event(7, entity.LabelPedra, base))
	require.NoError(t, err)
	require.Positive(t, id)

	_, err = repo.Insert(ctx, event(12, entity.LabelBatataComPedra, base.Add(time.Minute)))
	require.NoError(t, err)

	events, err := repo.GetRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Новые события идут первыми.
	require.Equal(t, int64(12), events[0].TrackID)
	require.Equal(t, int64(7), events[1].TrackID)
	require.Equal(t, entity.LabelPedra, events[1].Label)
	require.InDelta(t, 0.81, events[1].Confidence, 1e-9)
	require.Equal(t, "snapshots/test.jpg", events[1].Path)
	require.True(t, events[1].TakenAt.Equal(base))
}

func TestEventRepository_GetRecentRespectsLimit(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := repo.Insert(ctx, event(int64(i), entity.LabelPedra, base.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}

	events, err := repo.GetRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, int64(4), events[0].TrackID)
	require.Equal(t, int64(3), events[1].TrackID)
}

func TestEventRepository_Record(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))
	ctx := context.Background()

	err := repo.Record(ctx, event(3, entity.LabelPedraNaBatata, time.Now().UTC()))
	require.NoError(t, err)

	events, err := repo.GetRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, int64(3), events[0].TrackID)
}

func TestEventRepository_CountByLabel(t *testing.T) {
	repo := NewEventRepository(newTestDB(t))
	ctx := context.Background()

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		_, err := repo.Insert(ctx, event(int64(i), entity.LabelPedra, now))
		require.NoError(t, err)
	}
	_, err := repo.Insert(ctx, event(10, entity.LabelBatataComPedra, now))
	require.NoError(t, err)

	counts, err := repo.CountByLabel(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), counts[entity.LabelPedra])
	require.Equal(t, int64(1), counts[entity.LabelBatataComPedra])
	require.NotContains(t, counts, entity.LabelOK)
}
