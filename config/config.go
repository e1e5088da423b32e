package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Penyedia AI completion yang didukung
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Config konfigurasi aplikasi
type Config struct {
	TelegramToken string
	AIProvider    string
	GroqAPIKey    string
	GeminiAPIKey  string
	AdminChatID   int64
	DBPath        string
	LogFile       string
}

// Load memuat konfigurasi dari environment
func Load() (*Config, error) {
	// Muat file .env (jika ada)
	_ = godotenv.Load()

	config := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		AIProvider:    ProviderGroq,
		GroqAPIKey:    os.Getenv("GROQ_API_KEY"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		DBPath:        "data/digieco.db",
		LogFile:       "error_log.txt",
	}

	if provider := os.Getenv("AI_PROVIDER"); provider != "" {
		config.AIProvider = provider
	}

	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		config.DBPath = dbPath
	}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		config.LogFile = logFile
	}

	if rawChatID := os.Getenv("ADMIN_CHAT_ID"); rawChatID != "" {
		parsed, err := strconv.ParseInt(rawChatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("format ADMIN_CHAT_ID tidak valid: %v", err)
		}
		config.AdminChatID = parsed
	}

	// Validasi
	if config.TelegramToken == "" {
		return nil, fmt.Errorf("environment variable TELEGRAM_TOKEN kosong")
	}

	switch config.AIProvider {
	case ProviderGroq:
		if config.GroqAPIKey == "" {
			return nil, fmt.Errorf("environment variable GROQ_API_KEY kosong")
		}
	case ProviderGemini:
		if config.GeminiAPIKey == "" {
			return nil, fmt.Errorf("environment variable GEMINI_API_KEY kosong")
		}
	default:
		return nil, fmt.Errorf("AI_PROVIDER tidak dikenal: %s", config.AIProvider)
	}

	return config, nil
}
