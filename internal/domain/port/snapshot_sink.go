package port

import "context"

// SnapshotSink — интерфейс хранилища снимков.
type SnapshotSink interface {
	// Save сохраняет кадр под уникальным именем и возвращает путь к файлу.
	Save(ctx context.Context, frame Frame) (string, error)
}
