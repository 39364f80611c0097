package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/museums-api/internal/domain"
	"github.com/museums-api/internal/domain/repository"
)

// FavoritesUseCase - use case избранного единственного пользователя
type FavoritesUseCase struct {
	favoriteRepo repository.FavoriteRepository
	museumRepo   repository.MuseumRepository
	logger       *zap.Logger
}

// NewFavoritesUseCase - создание нового FavoritesUseCase
func NewFavoritesUseCase(
	favoriteRepo repository.FavoriteRepository,
	museumRepo repository.MuseumRepository,
	logger *zap.Logger,
) *FavoritesUseCase {
	return &FavoritesUseCase{
		favoriteRepo: favoriteRepo,
		museumRepo:   museumRepo,
		logger:       logger,
	}
}

// Add - добавление музея в избранное. Музей должен существовать в каталоге;
// повторное добавление не ошибка.
func (uc *FavoritesUseCase) Add(ctx context.Context, museumID string) error {
	if _, err := uc.museumRepo.GetByID(ctx, museumID); err != nil {
		return err
	}

	if err := uc.favoriteRepo.Add(ctx, museumID); err != nil {
		uc.logger.Error("Failed to add favorite", zap.String("museum_id", museumID), zap.Error(err))
		return err
	}

	return nil
}

// Remove - удаление из избранного; для неизбранного ID это no-op
func (uc *FavoritesUseCase) Remove(ctx context.Context, museumID string) error {
	if err := uc.favoriteRepo.Remove(ctx, museumID); err != nil {
		uc.logger.Error("Failed to remove favorite", zap.String("museum_id", museumID), zap.Error(err))
		return err
	}

	return nil
}

// Check - признак наличия музея в избранном; неизвестный ID даёт false
func (uc *FavoritesUseCase) Check(ctx context.Context, museumID string) (bool, error) {
	return uc.favoriteRepo.Exists(ctx, museumID)
}

// List - избранные музеи, разрешённые против каталога. Висячие ID
// (музей исчез из каталога) молча пропускаются.
func (uc *FavoritesUseCase) List(ctx context.Context) ([]domain.Museum, error) {
	ids, err := uc.favoriteRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list favorites", zap.Error(err))
		return nil, err
	}

	museums := make([]domain.Museum, 0, len(ids))
	for _, id := range ids {
		m, err := uc.museumRepo.GetByID(ctx, id)
		if err != nil {
			uc.logger.Warn("Skipping dangling favorite", zap.String("museum_id", id))
			continue
		}
		museums = append(museums, *m)
	}

	return museums, nil
}
