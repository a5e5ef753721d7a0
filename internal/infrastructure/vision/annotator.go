//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"vision-inspector/internal/domain/entity"
	"vision-inspector/internal/domain/port"
)

// MatAnnotator рисует рамки и подписи прямо на кадре.
type MatAnnotator struct{}

// NewMatAnnotator создаёт отрисовщик детекций.
func NewMatAnnotator() *MatAnnotator {
	return &MatAnnotator{}
}

// Draw рисует рамку и подпись над её левым верхним углом.
func (a *MatAnnotator) Draw(frame port.Frame, box entity.Box, text string, c entity.Color) error {
	mf, ok := frame.(*MatFrame)
	if !ok {
		return errors.New("unsupported frame type")
	}

	rgba := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	gocv.Rectangle(mf.Mat(), image.Rect(box.X1, box.Y1, box.X2, box.Y2), rgba, 2)
	gocv.PutText(mf.Mat(), text, image.Pt(box.X1, box.Y1-10), gocv.FontHersheySimplex, 0.5, rgba, 2)

	return nil
}

// Проверка реализации интерфейса
var _ port.Annotator = (*MatAnnotator)(nil)
