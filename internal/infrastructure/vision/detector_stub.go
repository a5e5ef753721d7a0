//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"vision-inspector/internal/domain/entity"
	"vision-inspector/internal/domain/port"
)

// YOLODetector — заглушка детектора для сборки без OpenCV.
type YOLODetector struct{}

// NewYOLODetector возвращает ошибку, если сборка без тега gocv.
func NewYOLODetector(modelPath string, names []string, threshold float64, workingW, workingH int) (*YOLODetector, error) {
	_ = modelPath
	_ = names
	_ = threshold
	_ = workingW
	_ = workingH
	return nil, errors.New("gocv build tag is not enabled")
}

// DetectAndTrack возвращает ошибку, если сборка без тега gocv.
func (d *YOLODetector) DetectAndTrack(ctx context.Context, frame port.Frame) ([]entity.Detection, error) {
	_ = ctx
	_ = frame
	return nil, errors.New("gocv build tag is not enabled")
}

// Close ничего не освобождает.
func (d *YOLODetector) Close() error {
	return nil
}
