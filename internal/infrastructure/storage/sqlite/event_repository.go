package sqlite

import (
	"context"
	"fmt"

	"vision-inspector/internal/domain/entity"
	"vision-inspector/internal/domain/port"
)

// EventRepository — журнал сохранённых снимков в SQLite.
type EventRepository struct {
	db *DB
}

// NewEventRepository создаёт репозиторий журнала снимков.
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// Insert добавляет событие снимка и возвращает его идентификатор.
func (r *EventRepository) Insert(ctx context.Context, event entity.SnapshotEvent) (int64, error) {
	r.db.Lock()
	defer r.db.Unlock()

	result, err := r.db.Conn().ExecContext(ctx, `
		INSERT INTO snapshots (track_id, label, confidence, filepath, taken_at)
		VALUES (?, ?, ?, ?, ?)
	`, event.TrackID, event.Label, event.Confidence, event.Path, event.TakenAt)
	if err != nil {
		return 0, fmt.Errorf("insert snapshot event: %w", err)
	}

	return result.LastInsertId()
}

// Record записывает событие снимка в журнал.
func (r *EventRepository) Record(ctx context.Context, event entity.SnapshotEvent) error {
	_, err := r.Insert(ctx, event)
	return err
}

// GetRecent возвращает последние события журнала, новые первыми.
func (r *EventRepository) GetRecent(ctx context.Context, limit int) ([]entity.SnapshotEvent, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	rows, err := r.db.Conn().QueryContext(ctx, `
		SELECT track_id, label, confidence, filepath, taken_at
		FROM snapshots ORDER BY taken_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query snapshot events: %w", err)
	}
	defer rows.Close()

	var events []entity.SnapshotEvent
	for rows.Next() {
		var event entity.SnapshotEvent
		if err := rows.Scan(&event.TrackID, &event.Label, &event.Confidence, &event.Path, &event.TakenAt); err != nil {
			return nil, fmt.Errorf("scan snapshot event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// CountByLabel возвращает количество снимков по каждой метке класса.
func (r *EventRepository) CountByLabel(ctx context.Context) (map[string]int64, error) {
	r.db.RLock()
	defer r.db.RUnlock()

	rows, err := r.db.Conn().QueryContext(ctx, `
		SELECT label, COUNT(*) FROM snapshots GROUP BY label
	`)
	if err != nil {
		return nil, fmt.Errorf("count snapshots: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var label string
		var count int64
		if err := rows.Scan(&label, &count); err != nil {
			return nil, fmt.Errorf("scan snapshot count: %w", err)
		}
		counts[label] = count
	}

	return counts, rows.Err()
}

// Проверка реализации интерфейса
var _ port.EventRecorder = (*EventRepository)(nil)
