package redisrepo

import (
	"context"
	"sort"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/museums-api/internal/domain/repository"
	"github.com/museums-api/internal/pkg/errors"
)

// favoritesKey - единственный набор избранного: сервис однопользовательский.
const favoritesKey = "favorites"

type favoriteRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewFavoriteRepository(r *Redis) repository.FavoriteRepository {
	return &favoriteRepository{
		client: r.client,
		logger: r.logger,
	}
}

// Add идемпотентен: SADD уже существующего элемента ничего не меняет.
func (r *favoriteRepository) Add(ctx context.Context, museumID string) error {
	if err := r.client.SAdd(ctx, favoritesKey, museumID).Err(); err != nil {
		r.logger.Error("Failed to add favorite", zap.String("museum_id", museumID), zap.Error(err))
		return errors.ErrCacheError
	}

	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, museumID string) error {
	if err := r.client.SRem(ctx, favoritesKey, museumID).Err(); err != nil {
		r.logger.Error("Failed to remove favorite", zap.String("museum_id", museumID), zap.Error(err))
		return errors.ErrCacheError
	}

	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, museumID string) (bool, error) {
	exists, err := r.client.SIsMember(ctx, favoritesKey, museumID).Result()
	if err != nil {
		r.logger.Error("Failed to check favorite", zap.String("museum_id", museumID), zap.Error(err))
		return false, errors.ErrCacheError
	}

	return exists, nil
}

// List сортирует идентификаторы: SMEMBERS не даёт стабильного порядка.
func (r *favoriteRepository) List(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, favoritesKey).Result()
	if err != nil {
		r.logger.Error("Failed to list favorites", zap.Error(err))
		return nil, errors.ErrCacheError
	}

	sort.Strings(ids)

	return ids, nil
}
