package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open membuka database SQLite dan memastikan skema tersedia
func Open(dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, errors.New("db path tidak boleh kosong")
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("tidak bisa membuat folder db: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite tidak bisa dibuka: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func createSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE,
	stock INTEGER DEFAULT 0,
	price INTEGER DEFAULT 0
);
CREATE TABLE IF NOT EXISTS info (
	key TEXT PRIMARY KEY,
	value TEXT
);
CREATE TABLE IF NOT EXISTS messages (
	id TEXT PRIMARY KEY,
	chat_id INTEGER NOT NULL,
	username TEXT,
	text TEXT,
	response TEXT,
	ts TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_chat_ts ON messages (chat_id, ts);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("skema tidak bisa dibuat: %w", err)
	}
	return nil
}

// Seed mengisi baris default hanya ketika tabelnya masih kosong.
// Konflik keunikan saat seeding diabaikan.
func Seed(ctx context.Context, db *sql.DB) error {
	var infoCount int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM info`).Scan(&infoCount); err != nil {
		return fmt.Errorf("seed info gagal: %w", err)
	}
	if infoCount == 0 {
		seedInfo := [][2]string{
			{"working_hours", "09:00 - 21:00 WIB"},
			{"contact", "Email: support@digieco.id"},
		}
		for _, row := range seedInfo {
			if _, err := db.ExecContext(ctx,
				`INSERT OR IGNORE INTO info (key, value) VALUES (?, ?)`, row[0], row[1]); err != nil {
				return fmt.Errorf("seed info gagal: %w", err)
			}
		}
	}

	var productCount int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&productCount); err != nil {
		return fmt.Errorf("seed produk gagal: %w", err)
	}
	if productCount == 0 {
		seedProducts := []struct {
			name  string
			stock int
			price int64
		}{
			{"Ebook Python", 50, 50000},
			{"Template UI Kit", 20, 150000},
		}
		for _, row := range seedProducts {
			if _, err := db.ExecContext(ctx,
				`INSERT OR IGNORE INTO products (name, stock, price) VALUES (?, ?, ?)`,
				row.name, row.stock, row.price); err != nil {
				return fmt.Errorf("seed produk gagal: %w", err)
			}
		}
	}

	return nil
}
