package entity

// SessionState — состояние сеанса инспекции.
type SessionState string

const (
	SessionInitializing SessionState = "initializing" // Подготовка ресурсов
	SessionRunning      SessionState = "running"      // Основной цикл обработки
	SessionStopping     SessionState = "stopping"     // Освобождение ресурсов
	SessionStopped      SessionState = "stopped"      // Сеанс завершён
)
