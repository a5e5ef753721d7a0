//go:build gocv
// +build gocv

package vision

import (
	"fmt"

	"gocv.io/x/gocv"

	"vision-inspector/internal/domain/port"
)

// Camera захватывает кадры с веб-камеры через gocv.VideoCapture.
type Camera struct {
	capture *gocv.VideoCapture
	width   int
	height  int
}

// OpenCamera открывает камеру и запрашивает разрешение захвата.
// Камера может выдать другое разрешение, поэтому фактическое
// считывается обратно.
func OpenCamera(index, width, height int) (*Camera, error) {
	capture, err := gocv.OpenVideoCapture(index)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", index, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("camera %d is not opened", index)
	}

	capture.Set(gocv.VideoCaptureFrameWidth, float64(width))
	capture.Set(gocv.VideoCaptureFrameHeight, float64(height))

	return &Camera{
		capture: capture,
		width:   int(capture.Get(gocv.VideoCaptureFrameWidth)),
		height:  int(capture.Get(gocv.VideoCaptureFrameHeight)),
	}, nil
}

// Read возвращает очередной кадр; ErrNoFrame при временном сбое захвата.
func (c *Camera) Read() (port.Frame, error) {
	mat := gocv.NewMat()
	if ok := c.capture.Read(&mat); !ok || mat.Empty() {
		mat.Close()
		return nil, port.ErrNoFrame
	}
	return &MatFrame{mat: mat}, nil
}

// Resolution возвращает фактическое разрешение захвата.
func (c *Camera) Resolution() (int, int) {
	return c.width, c.height
}

// Close освобождает камеру; повторный вызов безопасен.
func (c *Camera) Close() error {
	if c.capture == nil {
		return nil
	}
	err := c.capture.Close()
	c.capture = nil
	return err
}

// Проверка реализации интерфейса
var _ port.FrameSource = (*Camera)(nil)
