//go:build gocv
// +build gocv

package vision

import (
	"errors"

	"gocv.io/x/gocv"

	"vision-inspector/internal/domain/port"
)

// stopKey — клавиша остановки сеанса.
const stopKey = 'q'

// Window выводит кадры в полноэкранное окно OpenCV.
type Window struct {
	win *gocv.Window
}

// NewWindow создаёт полноэкранное окно с заданным заголовком.
func NewWindow(name string) *Window {
	win := gocv.NewWindow(name)
	win.SetWindowProperty(gocv.WindowPropertyFullscreen, gocv.WindowFullscreen)
	return &Window{win: win}
}

// Show выводит кадр в окно.
func (w *Window) Show(frame port.Frame) error {
	mf, ok := frame.(*MatFrame)
	if !ok {
		return errors.New("unsupported frame type")
	}
	w.win.IMShow(*mf.Mat())
	return nil
}

// Poll обрабатывает события окна и возвращает true при нажатии
// клавиши остановки. Опрос ограничен одним тактом цикла.
func (w *Window) Poll() bool {
	return w.win.WaitKey(1) == stopKey
}

// Close закрывает окно; повторный вызов безопасен.
func (w *Window) Close() error {
	if w.win == nil {
		return nil
	}
	err := w.win.Close()
	w.win = nil
	return err
}

// Проверка реализации интерфейса
var _ port.Display = (*Window)(nil)
