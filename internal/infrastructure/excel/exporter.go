package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/digieco-bot/internal/domain/entity"
	"github.com/yourusername/digieco-bot/internal/domain/repository"
)

const sheetName = "Produk"

type exporter struct{}

// NewExporter membuat penulis workbook katalog
func NewExporter() repository.CatalogExporter {
	return &exporter{}
}

// WriteProducts menulis katalog produk menjadi workbook .xlsx
func (e *exporter) WriteProducts(products []entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("gagal menghapus sheet default: %w", err)
	}

	header := []string{"ID", "Nama Produk", "Stok", "Harga"}
	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, err
		}
	}

	for row, p := range products {
		values := []any{p.ID, p.Name, p.Stock, p.Price}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("gagal menulis workbook: %w", err)
	}

	return buf.Bytes(), nil
}
