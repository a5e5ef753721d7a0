//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"vision-inspector/internal/domain/port"
)

// Window — заглушка окна для сборки без OpenCV.
type Window struct{}

// NewWindow создаёт заглушку окна.
func NewWindow(name string) *Window {
	_ = name
	return &Window{}
}

// Show возвращает ошибку, если сборка без тега gocv.
func (w *Window) Show(frame port.Frame) error {
	_ = frame
	return errors.New("gocv build tag is not enabled")
}

// Poll никогда не запрашивает остановку.
func (w *Window) Poll() bool {
	return false
}

// Close ничего не освобождает.
func (w *Window) Close() error {
	return nil
}
