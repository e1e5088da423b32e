package usecase

import (
	"context"

	"github.com/yourusername/digieco-bot/internal/domain/entity"
	"github.com/yourusername/digieco-bot/internal/domain/repository"
)

// ProductUseCase logika bisnis katalog dan stok
type ProductUseCase interface {
	// GetAll semua produk di katalog
	GetAll(ctx context.Context) ([]entity.Product, error)

	// AddStock menambah stok produk berdasarkan nama persis;
	// repository.ErrProductNotFound jika nama tidak ada
	AddStock(ctx context.Context, name string, quantity int) error

	// ExportWorkbook merender katalog menjadi file .xlsx
	ExportWorkbook(ctx context.Context) ([]byte, error)
}

type productUseCase struct {
	productRepo repository.ProductRepository
	exporter    repository.CatalogExporter
}

// NewProductUseCase membuat ProductUseCase baru
func NewProductUseCase(productRepo repository.ProductRepository, exporter repository.CatalogExporter) ProductUseCase {
	return &productUseCase{
		productRepo: productRepo,
		exporter:    exporter,
	}
}

// GetAll semua produk di katalog
func (u *productUseCase) GetAll(ctx context.Context) ([]entity.Product, error) {
	return u.productRepo.GetAll(ctx)
}

// AddStock menambah stok produk berdasarkan nama persis
func (u *productUseCase) AddStock(ctx context.Context, name string, quantity int) error {
	return u.productRepo.AddStock(ctx, name, quantity)
}

// ExportWorkbook merender katalog menjadi file .xlsx
func (u *productUseCase) ExportWorkbook(ctx context.Context) ([]byte, error) {
	products, err := u.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return u.exporter.WriteProducts(products)
}
