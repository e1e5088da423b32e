package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/yourusername/digieco-bot/internal/domain/entity"
	"github.com/yourusername/digieco-bot/internal/domain/repository"
)

type sqliteChatRepository struct {
	db      *sql.DB
	maxSize int
}

// NewSQLiteChatRepository catatan percakapan AI berbasis SQLite;
// maxSize membatasi jumlah baris yang disimpan per chat
func NewSQLiteChatRepository(db *sql.DB, maxSize int) repository.ChatRepository {
	return &sqliteChatRepository{db: db, maxSize: maxSize}
}

// SaveMessage menyimpan satu pertukaran dan memangkas baris lama
func (s *sqliteChatRepository) SaveMessage(ctx context.Context, message entity.Message) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO messages (id, chat_id, username, text, response, ts) VALUES (?, ?, ?, ?, ?, ?)`,
		message.ID, message.ChatID, message.Username, message.Text, message.Response, message.Timestamp)
	if err != nil {
		tx.Rollback()
		return err
	}

	if s.maxSize > 0 {
		_, err = tx.ExecContext(ctx, `
DELETE FROM messages
WHERE id IN (
  SELECT id FROM messages
  WHERE chat_id = ?
  ORDER BY ts DESC
  LIMIT -1 OFFSET ?
)`, message.ChatID, s.maxSize)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// GetHistory riwayat percakapan satu chat, dari lama ke baru
func (s *sqliteChatRepository) GetHistory(ctx context.Context, chatID int64, limit int) ([]entity.Message, error) {
	query := `SELECT id, chat_id, username, text, response, ts FROM messages WHERE chat_id = ? ORDER BY ts DESC`
	args := []any{chatID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tmp []entity.Message
	for rows.Next() {
		var msg entity.Message
		var ts time.Time
		if err := rows.Scan(&msg.ID, &msg.ChatID, &msg.Username, &msg.Text, &msg.Response, &ts); err != nil {
			return nil, err
		}
		msg.Timestamp = ts
		tmp = append(tmp, msg)
	}

	// Balik ke urutan lama->baru
	for i, j := 0, len(tmp)-1; i < j; i, j = i+1, j-1 {
		tmp[i], tmp[j] = tmp[j], tmp[i]
	}

	return tmp, rows.Err()
}
