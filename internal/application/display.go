package app

import (
	"log"

	"vision-inspector/internal/domain/port"
)

// MultiDisplay дублирует кадры на несколько поверхностей отображения.
// Остановку запрашивает только основная поверхность; сбои остальных
// логируются и не прерывают показ.
type MultiDisplay struct {
	primary port.Display
	extras  []port.Display
}

// NewMultiDisplay создаёт составной дисплей поверх основного.
func NewMultiDisplay(primary port.Display, extras ...port.Display) *MultiDisplay {
	return &MultiDisplay{primary: primary, extras: extras}
}

// Show выводит кадр на все поверхности.
func (d *MultiDisplay) Show(frame port.Frame) error {
	for _, extra := range d.extras {
		if err := extra.Show(frame); err != nil {
			log.Printf("Secondary display failed: %v", err)
		}
	}
	return d.primary.Show(frame)
}

// Poll опрашивает запрос остановки у основной поверхности.
func (d *MultiDisplay) Poll() bool {
	return d.primary.Poll()
}

// Close закрывает все поверхности; возвращает ошибку основной.
func (d *MultiDisplay) Close() error {
	for _, extra := range d.extras {
		if err := extra.Close(); err != nil {
			log.Printf("Failed to close secondary display: %v", err)
		}
	}
	return d.primary.Close()
}

// Проверка реализации интерфейса
var _ port.Display = (*MultiDisplay)(nil)
