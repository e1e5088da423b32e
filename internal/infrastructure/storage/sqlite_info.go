package storage

import (
	"context"
	"database/sql"

	"github.com/yourusername/digieco-bot/internal/domain/repository"
)

type sqliteInfoRepository struct {
	db *sql.DB
}

// NewSQLiteInfoRepository repository info toko berbasis SQLite
func NewSQLiteInfoRepository(db *sql.DB) repository.InfoRepository {
	return &sqliteInfoRepository{db: db}
}

// Get nilai info berdasarkan kunci
func (s *sqliteInfoRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM info WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", repository.ErrInfoNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
