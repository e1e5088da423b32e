package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/digieco-bot/internal/domain/entity"
)

var (
	errMissingComma    = errors.New("pemisah koma tidak ditemukan")
	errInvalidQuantity = errors.New("jumlah bukan angka")
)

// welcomeMessage sapaan /start dan /help
func welcomeMessage(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👋 Halo, %s!\n", name)
	b.WriteString("Selamat datang di DigiEco Assistant.\n\n")
	b.WriteString("🤖 *Fitur AI Chat:*\n")
	b.WriteString("Ketik /ai untuk mode ngobrol.\n")
	b.WriteString("Ketik /stop untuk berhenti.\n\n")
	b.WriteString("Gunakan perintah:\n")
	b.WriteString("🛍️ `/list_produk` - Katalog & stok\n")
	b.WriteString("🕒 `/jam_kerja` - Operasional\n")
	b.WriteString("📞 `/kontak` - Admin")
	return b.String()
}

// renderCatalog daftar produk dalam format Markdown
func renderCatalog(products []entity.Product) string {
	var b strings.Builder
	b.WriteString("📂 *KATALOG DIGIECO:*\n")

	for _, p := range products {
		status := "❌ Habis"
		if p.Ready() {
			status = "✅ Ready"
		}
		fmt.Fprintf(&b, "\n📦 *%s*\n 💰 Rp%s\n 📊 Stok: %d (%s)\n",
			p.Name, formatThousands(p.Price), p.Stock, status)
	}

	return b.String()
}

// parseStockInput memecah "Nama Produk, Jumlah" pada koma pertama;
// koma tambahan ikut menjadi bagian jumlah dan gagal parse
func parseStockInput(text string) (string, int, error) {
	parts := strings.SplitN(text, ",", 2)
	if len(parts) != 2 {
		return "", 0, errMissingComma
	}

	name := strings.TrimSpace(parts[0])
	quantity, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", 0, errInvalidQuantity
	}

	return name, quantity, nil
}

// formatThousands angka dengan pemisah ribuan, mis. 150000 -> "150,000"
func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
