package port

import (
	"context"

	"vision-inspector/internal/domain/entity"
)

// Detector — интерфейс внешнего детектора с сопровождением объектов.
type Detector interface {
	// DetectAndTrack возвращает объекты кадра. Рамки выражены в рабочем
	// разрешении детектора; track ID стабилен, пока объект сопровождается.
	DetectAndTrack(ctx context.Context, frame Frame) ([]entity.Detection, error)

	// Close освобождает ресурсы модели.
	Close() error
}
