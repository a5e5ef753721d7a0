package storage

import (
	"sync"

	"vision-inspector/internal/domain/port"
)

// MemoryRegistry — регистр сохранённых track ID в памяти процесса.
// Живёт один сеанс; очищается только перезапуском.
type MemoryRegistry struct {
	mu  sync.RWMutex
	ids map[int64]struct{}
}

// NewMemoryRegistry создаёт пустой регистр.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		ids: make(map[int64]struct{}),
	}
}

// Contains проверяет, сохранялся ли снимок для трека.
func (r *MemoryRegistry) Contains(trackID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.ids[trackID]
	return ok
}

// Add отмечает трек как сохранённый.
func (r *MemoryRegistry) Add(trackID int64) {
	r.mu.Lock()
	r.ids[trackID] = struct{}{}
	r.mu.Unlock()
}

// Size возвращает количество сохранённых треков.
func (r *MemoryRegistry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.ids)
}

// Проверка реализации интерфейса
var _ port.SavedRegistry = (*MemoryRegistry)(nil)
