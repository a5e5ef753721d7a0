package port

// SavedRegistry — набор track ID, для которых снимок уже сохранён.
// Живёт один сеанс и растёт монотонно.
type SavedRegistry interface {
	// Contains проверяет, сохранялся ли снимок для трека.
	Contains(trackID int64) bool

	// Add отмечает трек как сохранённый.
	Add(trackID int64)

	// Size возвращает количество сохранённых треков.
	Size() int
}
