package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/yourusername/digieco-bot/internal/domain/repository"
	"google.golang.org/api/option"
)

const systemPrompt = `Kamu adalah Asisten Customer Service dari 'DigiEco', toko produk digital.
Gaya bicaramu: Profesional, ramah, dan membantu.
Tugasmu: Menjawab pertanyaan umum seputar teknologi, coding, dan produk digital.
Jika ditanya stok spesifik, arahkan user menggunakan perintah /list_produk.
Jawablah dengan ringkas (maksimal 3 paragraf).`

type geminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	sem    chan struct{}
	mu     sync.Mutex
	last   time.Time
	delay  time.Duration
}

// NewClient membuat client completion Gemini
func NewClient(apiKey string) (repository.AIRepository, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gagal membuat client Gemini: %w", err)
	}

	model := client.GenerativeModel("gemini-2.0-flash-exp")
	model.SetTemperature(0.3)
	model.SetMaxOutputTokens(1024)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	return &geminiClient{
		client: client,
		model:  model,
		sem:    make(chan struct{}, 3), // maksimal 3 permintaan sekaligus
		delay:  350 * time.Millisecond, // interval minimal antar permintaan
	}, nil
}

// GenerateReply satu permintaan completion sinkron, tanpa riwayat
func (g *geminiClient) GenerateReply(ctx context.Context, text string) (string, error) {
	release := g.acquire()
	defer release()

	resp, err := g.model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return "", fmt.Errorf("gemini completion gagal: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("model tidak mengembalikan jawaban")
	}

	return extractText(resp), nil
}

// extractText menggabungkan teks jawaban dari kandidat
func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				result.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return result.String()
}

func (g *geminiClient) acquire() func() {
	g.sem <- struct{}{}
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	} else {
		if sleep := g.delay - now.Sub(g.last); sleep > 0 {
			time.Sleep(sleep)
			now = time.Now()
		}
		g.last = now
	}

	return func() {
		<-g.sem
	}
}

// Close menutup koneksi client
func (g *geminiClient) Close() error {
	return g.client.Close()
}
