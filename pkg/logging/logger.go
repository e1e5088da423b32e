package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger membungkus slog.Logger yang menulis ke file log error
type Logger struct {
	*slog.Logger
	file *os.File
}

// New membuka file log (append) dan membuat logger baru
func New(path string) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("tidak bisa membuka file log: %w", err)
	}

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	handler := slog.NewTextHandler(file, opts)
	logger := slog.New(handler)

	return &Logger{Logger: logger, file: file}, nil
}

// Close menutup file log
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Discard logger yang membuang semua output (dipakai di test)
func Discard() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(99)})
	return &Logger{Logger: slog.New(handler)}
}
