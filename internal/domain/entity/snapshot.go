package entity

import "time"

// SnapshotEvent описывает сохранённый снимок помеченного объекта.
type SnapshotEvent struct {
	TrackID    int64     // идентификатор трека объекта
	Label      string    // метка класса, вызвавшая сохранение
	Confidence float64   // уверенность модели на момент снимка
	Path       string    // путь к сохранённому файлу
	TakenAt    time.Time // момент сохранения
}
