package repository

import "context"

// AIRepository penyedia completion LLM
type AIRepository interface {
	// GenerateReply menjawab satu pesan pengguna; stateless per panggilan,
	// instruksi sistem tetap plus teks pengguna sebagai satu-satunya turn
	GenerateReply(ctx context.Context, text string) (string, error)
}
