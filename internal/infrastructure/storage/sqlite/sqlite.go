package sqlite

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// DB оборачивает соединение SQLite с блокировками для одного писателя.
type DB struct {
	conn *sql.DB
	mu   sync.RWMutex
}

// New открывает базу журнала снимков и создаёт схему при необходимости.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}

// migrate создаёт таблицы журнала, если их ещё нет.
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		track_id INTEGER NOT NULL,
		label TEXT NOT NULL,
		confidence REAL NOT NULL,
		filepath TEXT NOT NULL,
		taken_at DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_label ON snapshots(label);
	CREATE INDEX IF NOT EXISTS idx_snapshots_taken_at ON snapshots(taken_at);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// Close закрывает соединение с базой.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn возвращает соединение для репозиториев.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Lock берёт блокировку на запись.
func (db *DB) Lock() {
	db.mu.Lock()
}

// Unlock снимает блокировку на запись.
func (db *DB) Unlock() {
	db.mu.Unlock()
}

// RLock берёт блокировку на чтение.
func (db *DB) RLock() {
	db.mu.RLock()
}

// RUnlock снимает блокировку на чтение.
func (db *DB) RUnlock() {
	db.mu.RUnlock()
}
