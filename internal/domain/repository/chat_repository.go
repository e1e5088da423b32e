package repository

import (
	"context"

	"github.com/yourusername/digieco-bot/internal/domain/entity"
)

// ChatRepository catatan percakapan AI (audit log)
type ChatRepository interface {
	// SaveMessage menyimpan satu pertukaran
	SaveMessage(ctx context.Context, message entity.Message) error

	// GetHistory riwayat percakapan satu chat, dari lama ke baru
	GetHistory(ctx context.Context, chatID int64, limit int) ([]entity.Message, error)
}
