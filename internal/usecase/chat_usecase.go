package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/digieco-bot/internal/domain/entity"
	"github.com/yourusername/digieco-bot/internal/domain/repository"
)

// ChatUseCase relay pesan bebas ke penyedia AI
type ChatUseCase interface {
	// ProcessMessage meneruskan teks pengguna ke AI dan mencatat pertukarannya
	ProcessMessage(ctx context.Context, chatID int64, username, text string) (string, error)

	// GetHistory riwayat percakapan satu chat
	GetHistory(ctx context.Context, chatID int64) ([]entity.Message, error)
}

type chatUseCase struct {
	aiRepo   repository.AIRepository
	chatRepo repository.ChatRepository
}

// NewChatUseCase membuat ChatUseCase baru
func NewChatUseCase(aiRepo repository.AIRepository, chatRepo repository.ChatRepository) ChatUseCase {
	return &chatUseCase{
		aiRepo:   aiRepo,
		chatRepo: chatRepo,
	}
}

// ProcessMessage meneruskan teks pengguna ke AI dan mencatat pertukarannya
func (u *chatUseCase) ProcessMessage(ctx context.Context, chatID int64, username, text string) (string, error) {
	// Timeout supaya permintaan AI tidak menggantung
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	response, err := u.aiRepo.GenerateReply(ctx, text)
	if err != nil {
		return "", fmt.Errorf("gagal menghasilkan jawaban: %w", err)
	}

	message := entity.Message{
		ID:        uuid.New().String(),
		ChatID:    chatID,
		Username:  username,
		Text:      text,
		Response:  response,
		Timestamp: time.Now(),
	}

	if err := u.chatRepo.SaveMessage(ctx, message); err != nil {
		return "", fmt.Errorf("gagal menyimpan pesan: %w", err)
	}

	return response, nil
}

// GetHistory riwayat percakapan satu chat
func (u *chatUseCase) GetHistory(ctx context.Context, chatID int64) ([]entity.Message, error) {
	return u.chatRepo.GetHistory(ctx, chatID, 0)
}
