package port

import "vision-inspector/internal/domain/entity"

// Annotator — интерфейс отрисовки детекций на кадре.
type Annotator interface {
	// Draw рисует рамку и подпись над её левым верхним углом.
	Draw(frame Frame, box entity.Box, text string, color entity.Color) error
}
