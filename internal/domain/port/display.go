package port

// Display — интерфейс вывода кадров оператору.
type Display interface {
	// Show выводит кадр на поверхность отображения.
	Show(frame Frame) error

	// Poll возвращает true, если оператор запросил остановку.
	Poll() bool

	// Close освобождает поверхность отображения; безопасен при повторном вызове.
	Close() error
}
