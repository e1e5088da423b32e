package entity

// Product produk digital di katalog
type Product struct {
	ID    int64
	Name  string
	Stock int
	Price int64 // rupiah, tanpa pecahan
}

// Ready true jika stok masih tersedia
func (p Product) Ready() bool {
	return p.Stock > 0
}
