package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/digieco-bot/config"
	"github.com/yourusername/digieco-bot/internal/delivery/telegram"
	"github.com/yourusername/digieco-bot/internal/domain/repository"
	"github.com/yourusername/digieco-bot/internal/infrastructure/excel"
	"github.com/yourusername/digieco-bot/internal/infrastructure/gemini"
	"github.com/yourusername/digieco-bot/internal/infrastructure/groq"
	"github.com/yourusername/digieco-bot/internal/infrastructure/storage"
	"github.com/yourusername/digieco-bot/internal/notifier"
	"github.com/yourusername/digieco-bot/internal/session"
	"github.com/yourusername/digieco-bot/internal/usecase"
	"github.com/yourusername/digieco-bot/pkg/logging"
)

// Riwayat pesan per chat yang disimpan di tabel messages
const chatHistorySize = 50

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Konfigurasi tidak valid: %v", err)
	}

	errLog, err := logging.New(cfg.LogFile)
	if err != nil {
		log.Fatalf("Log file tidak bisa dibuka: %v", err)
	}
	defer errLog.Close()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("Bot Telegram tidak bisa dibuat: %v", err)
	}

	adminNotifier := notifier.New(bot, cfg.AdminChatID)

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		errLog.Error("DB Init Error", "err", err)
		adminNotifier.Notify(fmt.Sprintf("🔴 Bot gagal start: database error (%v)", err))
		log.Fatalf("Database tidak bisa dibuka: %v", err)
	}
	defer db.Close()

	if err := storage.Seed(ctx, db); err != nil {
		errLog.Error("DB Init Error", "err", err)
		adminNotifier.Notify(fmt.Sprintf("🔴 Bot gagal start: database error (%v)", err))
		log.Fatalf("Seed database gagal: %v", err)
	}

	aiRepo, closeAI, err := buildAIRepository(cfg)
	if err != nil {
		log.Fatalf("Client AI tidak bisa dibuat: %v", err)
	}
	if closeAI != nil {
		defer closeAI.Close()
	}

	productRepo := storage.NewSQLiteProductRepository(db)
	infoRepo := storage.NewSQLiteInfoRepository(db)
	chatRepo := storage.NewSQLiteChatRepository(db, chatHistorySize)

	chatUseCase := usecase.NewChatUseCase(aiRepo, chatRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, excel.NewExporter())
	infoUseCase := usecase.NewInfoUseCase(infoRepo)

	handler := telegram.NewBotHandler(
		bot,
		errLog,
		session.NewRegistry(),
		chatUseCase,
		productUseCase,
		infoUseCase,
	)

	log.Println("Bot DigiEco sedang berjalan...")
	if err := handler.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Bot berhenti dengan error: %v", err)
	}
}

// buildAIRepository memilih penyedia AI sesuai konfigurasi
func buildAIRepository(cfg *config.Config) (repository.AIRepository, io.Closer, error) {
	switch cfg.AIProvider {
	case config.ProviderGemini:
		repo, err := gemini.NewClient(cfg.GeminiAPIKey)
		if err != nil {
			return nil, nil, err
		}
		closer, _ := repo.(io.Closer)
		return repo, closer, nil
	default:
		return groq.NewClient(cfg.GroqAPIKey), nil, nil
	}
}
