package storage

import (
	"context"
	"database/sql"

	"github.com/yourusername/digieco-bot/internal/domain/entity"
	"github.com/yourusername/digieco-bot/internal/domain/repository"
)

type sqliteProductRepository struct {
	db *sql.DB
}

// NewSQLiteProductRepository repository produk berbasis SQLite
func NewSQLiteProductRepository(db *sql.DB) repository.ProductRepository {
	return &sqliteProductRepository{db: db}
}

// GetAll semua produk, terurut berdasarkan id
func (s *sqliteProductRepository) GetAll(ctx context.Context) ([]entity.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, stock, price FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Stock, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetByName mencari produk berdasarkan nama persis
func (s *sqliteProductRepository) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	var p entity.Product
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, stock, price FROM products WHERE name = ?`, name).
		Scan(&p.ID, &p.Name, &p.Stock, &p.Price)
	if err == sql.ErrNoRows {
		return nil, repository.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AddStock menambah stok dalam satu statement atomik
func (s *sqliteProductRepository) AddStock(ctx context.Context, name string, delta int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE products SET stock = stock + ? WHERE name = ?`, delta, name)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrProductNotFound
	}
	return nil
}
