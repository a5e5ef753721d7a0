//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"vision-inspector/internal/domain/port"
)

// Camera — заглушка камеры для сборки без OpenCV.
type Camera struct{}

// OpenCamera возвращает ошибку, если сборка без тега gocv.
func OpenCamera(index, width, height int) (*Camera, error) {
	_ = index
	_ = width
	_ = height
	return nil, errors.New("gocv build tag is not enabled")
}

// Read возвращает ошибку, если сборка без тега gocv.
func (c *Camera) Read() (port.Frame, error) {
	return nil, errors.New("gocv build tag is not enabled")
}

// Resolution возвращает нулевое разрешение.
func (c *Camera) Resolution() (int, int) {
	return 0, 0
}

// Close ничего не освобождает.
func (c *Camera) Close() error {
	return nil
}
