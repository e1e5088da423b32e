package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	keys := []string{
		"TELEGRAM_TOKEN", "AI_PROVIDER", "GROQ_API_KEY", "GEMINI_API_KEY",
		"ADMIN_CHAT_ID", "DB_PATH", "LOG_FILE",
	}
	for _, key := range keys {
		t.Setenv(key, env[key])
	}
}

func TestLoadDefaults(t *testing.T) {
	setEnv(t, map[string]string{
		"TELEGRAM_TOKEN": "token-123",
		"GROQ_API_KEY":   "gsk-123",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token-123", cfg.TelegramToken)
	assert.Equal(t, ProviderGroq, cfg.AIProvider)
	assert.Equal(t, "gsk-123", cfg.GroqAPIKey)
	assert.Equal(t, int64(0), cfg.AdminChatID)
	assert.Equal(t, "data/digieco.db", cfg.DBPath)
	assert.Equal(t, "error_log.txt", cfg.LogFile)
}

func TestLoadMissingToken(t *testing.T) {
	setEnv(t, map[string]string{
		"GROQ_API_KEY": "gsk-123",
	})

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadGroqKeyRequired(t *testing.T) {
	setEnv(t, map[string]string{
		"TELEGRAM_TOKEN": "token-123",
	})

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadGeminiProvider(t *testing.T) {
	setEnv(t, map[string]string{
		"TELEGRAM_TOKEN": "token-123",
		"AI_PROVIDER":    "gemini",
		"GEMINI_API_KEY": "AIza-123",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.AIProvider)
}

func TestLoadUnknownProvider(t *testing.T) {
	setEnv(t, map[string]string{
		"TELEGRAM_TOKEN": "token-123",
		"AI_PROVIDER":    "llama-cpp",
	})

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadAdminChatID(t *testing.T) {
	setEnv(t, map[string]string{
		"TELEGRAM_TOKEN": "token-123",
		"GROQ_API_KEY":   "gsk-123",
		"ADMIN_CHAT_ID":  "123456789",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(123456789), cfg.AdminChatID)
}

func TestLoadBadAdminChatID(t *testing.T) {
	setEnv(t, map[string]string{
		"TELEGRAM_TOKEN": "token-123",
		"GROQ_API_KEY":   "gsk-123",
		"ADMIN_CHAT_ID":  "bukan-angka",
	})

	_, err := Load()
	assert.Error(t, err)
}
