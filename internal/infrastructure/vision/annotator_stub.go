//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"vision-inspector/internal/domain/entity"
	"vision-inspector/internal/domain/port"
)

// MatAnnotator — заглушка отрисовщика для сборки без OpenCV.
type MatAnnotator struct{}

// NewMatAnnotator создаёт заглушку отрисовщика.
func NewMatAnnotator() *MatAnnotator {
	return &MatAnnotator{}
}

// Draw возвращает ошибку, если сборка без тега gocv.
func (a *MatAnnotator) Draw(frame port.Frame, box entity.Box, text string, color entity.Color) error {
	_ = frame
	_ = box
	_ = text
	_ = color
	return errors.New("gocv build tag is not enabled")
}
