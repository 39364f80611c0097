package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/museums-api/internal/domain"
	"github.com/museums-api/internal/domain/repository"
)

// CatalogUseCase - use case каталога музеев: списки, фильтры, карточки
type CatalogUseCase struct {
	museumRepo repository.MuseumRepository
	logger     *zap.Logger
}

// NewCatalogUseCase - создание нового CatalogUseCase
func NewCatalogUseCase(museumRepo repository.MuseumRepository, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		museumRepo: museumRepo,
		logger:     logger,
	}
}

// List - список музеев с фильтрацией по поиску, категории и бесплатному входу.
// Фильтры комбинируются по AND; пустой фильтр возвращает весь каталог.
func (uc *CatalogUseCase) List(ctx context.Context, filter domain.MuseumFilter) ([]domain.Museum, error) {
	museums, err := uc.museumRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list museums", zap.Error(err))
		return nil, err
	}

	return museums, nil
}

// GetByID - карточка музея по идентификатору
func (uc *CatalogUseCase) GetByID(ctx context.Context, id string) (*domain.Museum, error) {
	return uc.museumRepo.GetByID(ctx, id)
}

// Featured - музеи, отмеченные для главного экрана
func (uc *CatalogUseCase) Featured(ctx context.Context) ([]domain.Museum, error) {
	museums, err := uc.museumRepo.Featured(ctx)
	if err != nil {
		uc.logger.Error("Failed to list featured museums", zap.Error(err))
		return nil, err
	}

	return museums, nil
}

// Categories - отсортированный список различных категорий каталога
func (uc *CatalogUseCase) Categories(ctx context.Context) ([]string, error) {
	categories, err := uc.museumRepo.Categories(ctx)
	if err != nil {
		uc.logger.Error("Failed to list categories", zap.Error(err))
		return nil, err
	}

	return categories, nil
}
