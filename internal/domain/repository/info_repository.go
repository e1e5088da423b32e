package repository

import (
	"context"
	"errors"
)

// ErrInfoNotFound kunci info tidak ada di store
var ErrInfoNotFound = errors.New("info tidak ditemukan")

// InfoRepository akses ke tabel info toko
type InfoRepository interface {
	// Get nilai info berdasarkan kunci; ErrInfoNotFound jika tidak ada
	Get(ctx context.Context, key string) (string, error)
}
