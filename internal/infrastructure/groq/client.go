package groq

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/yourusername/digieco-bot/internal/domain/repository"
)

const (
	baseURL = "https://api.groq.com/openai/v1"
	model   = "llama-3.3-70b-versatile"
)

const systemPrompt = `Kamu adalah Asisten Customer Service dari 'DigiEco', toko produk digital.
Gaya bicaramu: Profesional, ramah, dan membantu.
Tugasmu: Menjawab pertanyaan umum seputar teknologi, coding, dan produk digital.
Jika ditanya stok spesifik, arahkan user menggunakan perintah /list_produk.
Jawablah dengan ringkas (maksimal 3 paragraf).`

type groqClient struct {
	client *openai.Client
	model  string
}

// NewClient membuat client completion Groq (endpoint kompatibel OpenAI)
func NewClient(apiKey string) repository.AIRepository {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &groqClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GenerateReply satu permintaan completion sinkron: instruksi sistem
// tetap plus teks pengguna sebagai satu-satunya turn
func (g *groqClient) GenerateReply(ctx context.Context, text string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq completion gagal: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model tidak mengembalikan jawaban")
	}

	return resp.Choices[0].Message.Content, nil
}
