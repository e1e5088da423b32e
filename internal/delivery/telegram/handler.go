package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/digieco-bot/internal/domain/repository"
	"github.com/yourusername/digieco-bot/internal/session"
	"github.com/yourusername/digieco-bot/internal/usecase"
	"github.com/yourusername/digieco-bot/pkg/logging"
)

// BotHandler handler bot Telegram
type BotHandler struct {
	bot            *tgbotapi.BotAPI
	errLog         *logging.Logger
	sessions       *session.Registry
	chatUseCase    usecase.ChatUseCase
	productUseCase usecase.ProductUseCase
	infoUseCase    usecase.InfoUseCase
}

// NewBotHandler membuat bot handler baru
func NewBotHandler(
	bot *tgbotapi.BotAPI,
	errLog *logging.Logger,
	sessions *session.Registry,
	chatUseCase usecase.ChatUseCase,
	productUseCase usecase.ProductUseCase,
	infoUseCase usecase.InfoUseCase,
) *BotHandler {
	return &BotHandler{
		bot:            bot,
		errLog:         errLog,
		sessions:       sessions,
		chatUseCase:    chatUseCase,
		productUseCase: productUseCase,
		infoUseCase:    infoUseCase,
	}
}

// Start menjalankan long-polling sampai context dibatalkan.
// Setiap update ditangani sampai selesai sebelum update berikutnya
// diambil; tidak ada antrian atau retry.
func (h *BotHandler) Start(ctx context.Context) error {
	log.Printf("Bot @%s berjalan!", h.bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			log.Println("Bot dihentikan...")
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			h.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage memproses satu pesan masuk
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	// Balasan untuk /tambah_stok didahulukan dari dispatch command,
	// one-shot: state kembali Idle apa pun hasil parsing
	if h.sessions.State(chatID) == session.StateAwaitingStockInput && message.Text != "" {
		h.sessions.SetState(chatID, session.StateIdle)
		h.handleStockInput(ctx, message)
		return
	}

	if message.IsCommand() {
		h.handleCommand(ctx, message)
		return
	}

	if message.Text != "" {
		h.handleTextMessage(ctx, message)
	}
}

// handleCommand dispatch command exact-match; command tak dikenal
// jatuh ke handler teks sama seperti pesan bebas
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start", "help":
		h.replyMarkdown(message, welcomeMessage(firstName(message)))
	case "ai":
		h.sessions.SetAIMode(message.Chat.ID, true)
		h.replyMarkdown(message, "🤖 *Mode AI Aktif!*\n(Ketik /stop untuk keluar)")
	case "stop":
		h.sessions.SetAIMode(message.Chat.ID, false)
		h.reply(message, "🛑 Mode AI dinonaktifkan.")
	case "jam_kerja":
		h.handleWorkingHoursCommand(ctx, message)
	case "kontak":
		h.handleContactCommand(ctx, message)
	case "list_produk":
		h.handleCatalogCommand(ctx, message)
	case "tambah_stok":
		h.reply(message, "📝 Format: Nama Produk, Jumlah (Contoh: Ebook Python, 10)")
		h.sessions.SetState(message.Chat.ID, session.StateAwaitingStockInput)
	case "getid":
		h.reply(message, fmt.Sprintf("Chat ID Anda: %d", message.Chat.ID))
	case "export_produk":
		h.handleExportCommand(ctx, message)
	default:
		h.handleTextMessage(ctx, message)
	}
}

// handleWorkingHoursCommand jawaban /jam_kerja
func (h *BotHandler) handleWorkingHoursCommand(ctx context.Context, message *tgbotapi.Message) {
	hours, err := h.infoUseCase.WorkingHours(ctx)
	if err != nil {
		h.errLog.Error("DB Error", "err", err)
		return
	}
	h.reply(message, fmt.Sprintf("🕒 Jam Operasional: %s", hours))
}

// handleContactCommand jawaban /kontak
func (h *BotHandler) handleContactCommand(ctx context.Context, message *tgbotapi.Message) {
	contact, err := h.infoUseCase.Contact(ctx)
	if err != nil {
		h.errLog.Error("DB Error", "err", err)
		return
	}
	h.reply(message, fmt.Sprintf("📞 Hubungi: %s", contact))
}

// handleCatalogCommand jawaban /list_produk
func (h *BotHandler) handleCatalogCommand(ctx context.Context, message *tgbotapi.Message) {
	products, err := h.productUseCase.GetAll(ctx)
	if err != nil {
		h.errLog.Error("DB Error", "err", err)
		return
	}

	if len(products) == 0 {
		h.reply(message, "Belum ada produk digital tersedia.")
		return
	}

	h.sendMessageMarkdown(message.Chat.ID, renderCatalog(products))
}

// handleStockInput langkah kedua percakapan /tambah_stok
func (h *BotHandler) handleStockInput(ctx context.Context, message *tgbotapi.Message) {
	name, quantity, err := parseStockInput(message.Text)
	switch {
	case errors.Is(err, errMissingComma):
		h.reply(message, "❌ Gunakan koma sebagai pemisah. Contoh: Ebook, 10")
		return
	case errors.Is(err, errInvalidQuantity):
		h.reply(message, "❌ Jumlah harus berupa angka.")
		return
	}

	err = h.productUseCase.AddStock(ctx, name, quantity)
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		h.replyMarkdown(message, fmt.Sprintf("⚠️ Produk *%s* tidak ditemukan.", name))
	case err != nil:
		h.reply(message, "❌ Terjadi error saat update.")
		h.errLog.Error("Stock Update Error", "err", err)
	default:
		h.replyMarkdown(message, fmt.Sprintf("✅ Stok *%s* ditambah %d.", name, quantity))
	}
}

// handleExportCommand jawaban /export_produk
func (h *BotHandler) handleExportCommand(ctx context.Context, message *tgbotapi.Message) {
	data, err := h.productUseCase.ExportWorkbook(ctx)
	if err != nil {
		h.errLog.Error("Export Error", "err", err)
		h.reply(message, "❌ Gagal mengekspor katalog.")
		return
	}

	doc := tgbotapi.NewDocument(message.Chat.ID, tgbotapi.FileBytes{
		Name:  "katalog_digieco.xlsx",
		Bytes: data,
	})
	if _, err := h.bot.Send(doc); err != nil {
		h.errLog.Error("Export Error", "err", err)
	}
}

// handleTextMessage pesan bebas: hanya direspons ketika chat sedang
// dalam mode AI, selain itu diabaikan tanpa balasan
func (h *BotHandler) handleTextMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if !h.sessions.AIMode(chatID) {
		return
	}

	typing := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	h.bot.Send(typing)

	response, err := h.chatUseCase.ProcessMessage(ctx, chatID, firstName(message), message.Text)
	if err != nil {
		h.reply(message, "⚠️ AI sedang gangguan. Coba lagi nanti.")
		h.errLog.Error("AI Error", "err", err)
		return
	}

	h.reply(message, response)
}

// firstName nama depan pengirim, kosong jika tidak ada
func firstName(message *tgbotapi.Message) string {
	if message.From == nil {
		return ""
	}
	return message.From.FirstName
}

// reply balasan biasa ke pesan masuk
func (h *BotHandler) reply(message *tgbotapi.Message, text string) {
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyToMessageID = message.MessageID
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Gagal mengirim pesan: %v", err)
	}
}

// replyMarkdown balasan dengan format Markdown
func (h *BotHandler) replyMarkdown(message *tgbotapi.Message, text string) {
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyToMessageID = message.MessageID
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Gagal mengirim pesan: %v", err)
	}
}

// sendMessageMarkdown pesan Markdown tanpa reply
func (h *BotHandler) sendMessageMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Gagal mengirim pesan: %v", err)
	}
}
