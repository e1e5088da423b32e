package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/digieco-bot/internal/domain/entity"
	"github.com/yourusername/digieco-bot/internal/domain/repository"
)

func setupDB(t *testing.T) *testDB {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Seed(context.Background(), db))

	return &testDB{
		products: NewSQLiteProductRepository(db),
		info:     NewSQLiteInfoRepository(db),
		chats:    NewSQLiteChatRepository(db, 3),
		seed:     func() error { return Seed(context.Background(), db) },
	}
}

type testDB struct {
	products repository.ProductRepository
	info     repository.InfoRepository
	chats    repository.ChatRepository
	seed     func() error
}

func TestSeedIdempotent(t *testing.T) {
	d := setupDB(t)
	ctx := context.Background()

	// Seed kedua tidak boleh menambah atau menimpa baris
	require.NoError(t, d.seed())

	products, err := d.products.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Ebook Python", products[0].Name)
	assert.Equal(t, 50, products[0].Stock)
	assert.Equal(t, int64(50000), products[0].Price)
	assert.Equal(t, "Template UI Kit", products[1].Name)

	hours, err := d.info.Get(ctx, entity.InfoWorkingHours)
	require.NoError(t, err)
	assert.Equal(t, "09:00 - 21:00 WIB", hours)

	contact, err := d.info.Get(ctx, entity.InfoContact)
	require.NoError(t, err)
	assert.Equal(t, "Email: support@digieco.id", contact)
}

func TestSeedKeepsModifiedStock(t *testing.T) {
	d := setupDB(t)
	ctx := context.Background()

	require.NoError(t, d.products.AddStock(ctx, "Ebook Python", 10))
	require.NoError(t, d.seed())

	p, err := d.products.GetByName(ctx, "Ebook Python")
	require.NoError(t, err)
	assert.Equal(t, 60, p.Stock)
}

func TestAddStock(t *testing.T) {
	d := setupDB(t)
	ctx := context.Background()

	require.NoError(t, d.products.AddStock(ctx, "Ebook Python", 10))

	p, err := d.products.GetByName(ctx, "Ebook Python")
	require.NoError(t, err)
	assert.Equal(t, 60, p.Stock)

	// Produk lain tidak berubah
	other, err := d.products.GetByName(ctx, "Template UI Kit")
	require.NoError(t, err)
	assert.Equal(t, 20, other.Stock)
}

func TestAddStockUnknownProduct(t *testing.T) {
	d := setupDB(t)
	ctx := context.Background()

	err := d.products.AddStock(ctx, "Produk Hantu", 5)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	products, err := d.products.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 50, products[0].Stock)
	assert.Equal(t, 20, products[1].Stock)
}

func TestGetByNameExactMatch(t *testing.T) {
	d := setupDB(t)
	ctx := context.Background()

	_, err := d.products.GetByName(ctx, "ebook python")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	_, err = d.products.GetByName(ctx, "Ebook")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestInfoUnknownKey(t *testing.T) {
	d := setupDB(t)

	_, err := d.info.Get(context.Background(), "promo")
	assert.ErrorIs(t, err, repository.ErrInfoNotFound)
}

func TestChatHistoryTrimmed(t *testing.T) {
	d := setupDB(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		msg := entity.Message{
			ID:        string(rune('a' + i)),
			ChatID:    42,
			Username:  "Budi",
			Text:      "halo",
			Response:  "hai",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, d.chats.SaveMessage(ctx, msg))
	}

	// maxSize 3: hanya tiga pesan terbaru yang tersisa, urut lama->baru
	history, err := d.chats.GetHistory(ctx, 42, 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "c", history[0].ID)
	assert.Equal(t, "e", history[2].ID)
}

func TestChatHistoryPerChat(t *testing.T) {
	d := setupDB(t)
	ctx := context.Background()

	msg := entity.Message{
		ID: "x", ChatID: 1, Text: "halo", Response: "hai",
		Timestamp: time.Now(),
	}
	require.NoError(t, d.chats.SaveMessage(ctx, msg))

	history, err := d.chats.GetHistory(ctx, 2, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}
