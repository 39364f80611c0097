package memory

import (
	"context"
	"sync"

	"github.com/museums-api/internal/domain/repository"
)

type favoriteRepository struct {
	mu    sync.RWMutex
	ids   map[string]struct{}
	order []string
}

func NewFavoriteRepository() repository.FavoriteRepository {
	return &favoriteRepository{
		ids: make(map[string]struct{}),
	}
}

// Add идемпотентен: повторное добавление не ошибка и не дубликат.
func (r *favoriteRepository) Add(ctx context.Context, museumID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[museumID]; ok {
		return nil
	}

	r.ids[museumID] = struct{}{}
	r.order = append(r.order, museumID)

	return nil
}

// Remove идемпотентен: удаление отсутствующего ID - no-op.
func (r *favoriteRepository) Remove(ctx context.Context, museumID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[museumID]; !ok {
		return nil
	}

	delete(r.ids, museumID)
	for i, id := range r.order {
		if id == museumID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, museumID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.ids[museumID]
	return ok, nil
}

// List возвращает ID в порядке добавления.
func (r *favoriteRepository) List(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, len(r.order))
	copy(ids, r.order)

	return ids, nil
}
