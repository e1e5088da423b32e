package notifier

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier pengiriman pesan best-effort ke satu chat admin
type Notifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
}

// New membuat notifier; adminChatID 0 berarti notifikasi dimatikan
func New(bot *tgbotapi.BotAPI, adminChatID int64) *Notifier {
	return &Notifier{bot: bot, adminChatID: adminChatID}
}

// Notify mencoba mengirim pesan ke chat admin; kegagalan pengiriman
// hanya dicetak, tidak pernah diteruskan
func (n *Notifier) Notify(message string) {
	if n.adminChatID == 0 {
		return
	}

	msg := tgbotapi.NewMessage(n.adminChatID, message)
	if _, err := n.bot.Send(msg); err != nil {
		fmt.Printf("Gagal mengirim notifikasi admin: %v\n", err)
	}
}
