package port

import "errors"

// ErrNoFrame сообщает о временном сбое чтения кадра.
// Цикл обработки пропускает такт и пробует снова на следующем.
var ErrNoFrame = errors.New("frame is not available")

// FrameSource — интерфейс источника кадров.
type FrameSource interface {
	// Read возвращает очередной кадр; ErrNoFrame при временном сбое.
	Read() (Frame, error)

	// Resolution возвращает фактическое разрешение захвата.
	Resolution() (width, height int)

	// Close освобождает ресурс захвата; безопасен при повторном вызове.
	Close() error
}
