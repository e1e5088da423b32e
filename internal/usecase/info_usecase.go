package usecase

import (
	"context"
	"errors"

	"github.com/yourusername/digieco-bot/internal/domain/entity"
	"github.com/yourusername/digieco-bot/internal/domain/repository"
)

// Fallback saat kunci info tidak ada di store. Nilainya sengaja
// berbeda dari baris seed.
const (
	FallbackWorkingHours = "09.00 - 17.00 WIB"
	FallbackContact      = "@admin_digieco"
)

// InfoUseCase pembacaan info toko (FAQ)
type InfoUseCase interface {
	// WorkingHours jam operasional toko
	WorkingHours(ctx context.Context) (string, error)

	// Contact kontak admin toko
	Contact(ctx context.Context) (string, error)
}

type infoUseCase struct {
	infoRepo repository.InfoRepository
}

// NewInfoUseCase membuat InfoUseCase baru
func NewInfoUseCase(infoRepo repository.InfoRepository) InfoUseCase {
	return &infoUseCase{infoRepo: infoRepo}
}

// WorkingHours jam operasional toko; fallback jika kunci tidak ada
func (u *infoUseCase) WorkingHours(ctx context.Context) (string, error) {
	return u.get(ctx, entity.InfoWorkingHours, FallbackWorkingHours)
}

// Contact kontak admin toko; fallback jika kunci tidak ada
func (u *infoUseCase) Contact(ctx context.Context) (string, error) {
	return u.get(ctx, entity.InfoContact, FallbackContact)
}

func (u *infoUseCase) get(ctx context.Context, key, fallback string) (string, error) {
	value, err := u.infoRepo.Get(ctx, key)
	if errors.Is(err, repository.ErrInfoNotFound) {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
