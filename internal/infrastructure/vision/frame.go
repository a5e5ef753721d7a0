//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"vision-inspector/internal/domain/port"
)

// MatFrame оборачивает gocv.Mat в доменный интерфейс кадра.
type MatFrame struct {
	mat gocv.Mat
}

// NewMatFrame принимает владение матрицей кадра.
func NewMatFrame(mat gocv.Mat) *MatFrame {
	return &MatFrame{mat: mat}
}

// Mat даёт доступ к матрице для отрисовки и показа.
func (f *MatFrame) Mat() *gocv.Mat {
	return &f.mat
}

// Bounds возвращает ширину и высоту кадра в пикселях.
func (f *MatFrame) Bounds() (int, int) {
	return f.mat.Cols(), f.mat.Rows()
}

// Clone создаёт независимую копию кадра.
func (f *MatFrame) Clone() port.Frame {
	return &MatFrame{mat: f.mat.Clone()}
}

// EncodeJPEG кодирует кадр в JPEG.
func (f *MatFrame) EncodeJPEG() ([]byte, error) {
	if f.mat.Empty() {
		return nil, errors.New("frame is empty")
	}

	buf, err := gocv.IMEncode(".jpg", f.mat)
	if err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	defer buf.Close()

	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())
	return data, nil
}

// Close освобождает память кадра.
func (f *MatFrame) Close() {
	if !f.mat.Closed() {
		f.mat.Close()
	}
}

// Проверка реализации интерфейса
var _ port.Frame = (*MatFrame)(nil)
