package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vision-inspector/internal/domain/port"
)

// DirectorySink сохраняет снимки в каталог с уникальными именами,
// упорядоченными по времени с точностью до миллисекунды.
type DirectorySink struct {
	dir string
}

// NewDirectorySink создаёт хранилище снимков в указанном каталоге.
func NewDirectorySink(dir string) *DirectorySink {
	return &DirectorySink{dir: dir}
}

// Save кодирует кадр в JPEG и записывает его в каталог снимков.
// Каталог создаётся при первом обращении.
func (s *DirectorySink) Save(ctx context.Context, frame port.Frame) (string, error) {
	_ = ctx

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot directory: %w", err)
	}

	data, err := frame.EncodeJPEG()
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	now := time.Now()
	name := fmt.Sprintf("%s-%03d.jpg", now.Format("02-01-2006 15-04-05"), now.Nanosecond()/1e6)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// Проверка реализации интерфейса
var _ port.SnapshotSink = (*DirectorySink)(nil)
