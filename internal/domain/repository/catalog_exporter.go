package repository

import (
	"github.com/yourusername/digieco-bot/internal/domain/entity"
)

// CatalogExporter merender katalog produk menjadi workbook
type CatalogExporter interface {
	// WriteProducts menulis produk menjadi file .xlsx
	WriteProducts(products []entity.Product) ([]byte, error)
}
