package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/digieco-bot/internal/domain/entity"
)

func TestParseStockInput(t *testing.T) {
	name, qty, err := parseStockInput("Ebook Python, 10")
	require.NoError(t, err)
	assert.Equal(t, "Ebook Python", name)
	assert.Equal(t, 10, qty)
}

func TestParseStockInputNoComma(t *testing.T) {
	_, _, err := parseStockInput("Ebook Python 10")
	assert.ErrorIs(t, err, errMissingComma)
}

func TestParseStockInputBadQuantity(t *testing.T) {
	_, _, err := parseStockInput("Ebook Python, sepuluh")
	assert.ErrorIs(t, err, errInvalidQuantity)
}

func TestParseStockInputExtraComma(t *testing.T) {
	// Pecah di koma pertama: sisanya bukan angka
	_, _, err := parseStockInput("Ebook, Python, 10")
	assert.ErrorIs(t, err, errInvalidQuantity)
}

func TestParseStockInputNegative(t *testing.T) {
	name, qty, err := parseStockInput("Ebook Python, -5")
	require.NoError(t, err)
	assert.Equal(t, "Ebook Python", name)
	assert.Equal(t, -5, qty)
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", formatThousands(0))
	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "1,000", formatThousands(1000))
	assert.Equal(t, "50,000", formatThousands(50000))
	assert.Equal(t, "1,500,000", formatThousands(1500000))
	assert.Equal(t, "-150,000", formatThousands(-150000))
}

func TestRenderCatalog(t *testing.T) {
	out := renderCatalog([]entity.Product{
		{ID: 1, Name: "Ebook Python", Stock: 50, Price: 50000},
		{ID: 2, Name: "Template UI Kit", Stock: 0, Price: 150000},
	})

	assert.Contains(t, out, "📂 *KATALOG DIGIECO:*")
	assert.Contains(t, out, "📦 *Ebook Python*")
	assert.Contains(t, out, "Rp50,000")
	assert.Contains(t, out, "📊 Stok: 50 (✅ Ready)")
	assert.Contains(t, out, "📊 Stok: 0 (❌ Habis)")
}

func TestWelcomeMessage(t *testing.T) {
	out := welcomeMessage("Budi")

	assert.Contains(t, out, "👋 Halo, Budi!")
	assert.Contains(t, out, "DigiEco Assistant")
	assert.Contains(t, out, "/list_produk")
	assert.Contains(t, out, "/jam_kerja")
	assert.Contains(t, out, "/kontak")
}
