package repository

import (
	"context"
	"errors"

	"github.com/yourusername/digieco-bot/internal/domain/entity"
)

// ErrProductNotFound produk dengan nama tersebut tidak ada
var ErrProductNotFound = errors.New("produk tidak ditemukan")

// ProductRepository akses ke tabel produk
type ProductRepository interface {
	// GetAll semua produk, terurut berdasarkan id
	GetAll(ctx context.Context) ([]entity.Product, error)

	// GetByName mencari produk berdasarkan nama persis (case-sensitive)
	GetByName(ctx context.Context, name string) (*entity.Product, error)

	// AddStock menambah stok dalam satu statement atomik;
	// ErrProductNotFound jika nama tidak ada
	AddStock(ctx context.Context, name string, delta int) error
}
