package port

import (
	"context"

	"vision-inspector/internal/domain/entity"
)

// EventRecorder — интерфейс журнала сохранённых снимков.
type EventRecorder interface {
	// Record записывает событие снимка в журнал.
	Record(ctx context.Context, event entity.SnapshotEvent) error
}
