package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vision-inspector/internal/domain/entity"
)

func det(x1, y1, x2, y2 int) entity.Detection {
	return entity.Detection{Box: entity.Box{X1: x1, Y1: y1, X2: x2, Y2: y2}, Label: entity.LabelPedra, Confidence: 0.9}
}

func TestIOUTracker_KeepsIDAcrossFrames(t *testing.T) {
	tracker := NewIOUTracker(0.3, 3)

	first := tracker.Update([]entity.Detection{det(100, 100, 200, 200)})
	require.Len(t, first, 1)
	require.True(t, first[0].HasTrack)

	// Немного сместившийся объект сохраняет идентификатор.
	second := tracker.Update([]entity.Detection{det(110, 105, 210, 205)})
	require.Equal(t, first[0].TrackID, second[0].TrackID)
}

func TestIOUTracker_NewObjectGetsNewID(t *testing.T) {
	tracker := NewIOUTracker(0.3, 3)

	first := tracker.Update([]entity.Detection{det(100, 100, 200, 200)})
	both := tracker.Update([]entity.Detection{
		det(100, 100, 200, 200),
		det(400, 400, 500, 500),
	})

	require.Equal(t, first[0].TrackID, both[0].TrackID)
	require.NotEqual(t, both[0].TrackID, both[1].TrackID)
}

func TestIOUTracker_LostTrackExpires(t *testing.T) {
	tracker := NewIOUTracker(0.3, 2)

	first := tracker.Update([]entity.Detection{det(100, 100, 200, 200)})

	// Объект пропадает дольше, чем живёт трек.
	for i := 0; i < 3; i++ {
		tracker.Update(nil)
	}

	reacquired := tracker.Update([]entity.Detection{det(100, 100, 200, 200)})
	require.NotEqual(t, first[0].TrackID, reacquired[0].TrackID)
}

func TestIOUTracker_DistantBoxesNotMatched(t *testing.T) {
	tracker := NewIOUTracker(0.3, 3)

	first := tracker.Update([]entity.Detection{det(0, 0, 50, 50)})
	second := tracker.Update([]entity.Detection{det(500, 500, 600, 600)})

	require.NotEqual(t, first[0].TrackID, second[0].TrackID)
}

func TestIOU(t *testing.T) {
	a := entity.Box{X1: 0, Y1: 0, X2: 100, Y2: 100}
	require.InDelta(t, 1.0, iou(a, a), 1e-9)
	require.Zero(t, iou(a, entity.Box{X1: 200, Y1: 200, X2: 300, Y2: 300}))

	b := entity.Box{X1: 50, Y1: 0, X2: 150, Y2: 100}
	// Пересечение 5000, объединение 15000.
	require.InDelta(t, 1.0/3.0, iou(a, b), 1e-9)
}
