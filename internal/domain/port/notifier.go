package port

import (
	"context"

	"vision-inspector/internal/domain/entity"
)

// Notifier — интерфейс оповещения оператора о найденном дефекте.
type Notifier interface {
	// NotifySnapshot отправляет оператору сохранённый снимок.
	NotifySnapshot(ctx context.Context, event entity.SnapshotEvent, image []byte) error
}
