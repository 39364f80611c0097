package memory

import (
	"context"
	"sync"

	"github.com/museums-api/internal/domain"
	"github.com/museums-api/internal/domain/repository"
	"github.com/museums-api/internal/pkg/errors"
)

type tourRepository struct {
	mu         sync.RWMutex
	predefined []domain.Tour
	custom     []domain.Tour
}

func NewTourRepository() repository.TourRepository {
	return &tourRepository{}
}

func (r *tourRepository) ListPredefined(ctx context.Context) ([]domain.Tour, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyTours(r.predefined), nil
}

func (r *tourRepository) ListCustom(ctx context.Context) ([]domain.Tour, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyTours(r.custom), nil
}

func (r *tourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.predefined {
		if t.ID == id {
			tour := cloneTour(t)
			return &tour, nil
		}
	}
	for _, t := range r.custom {
		if t.ID == id {
			tour := cloneTour(t)
			return &tour, nil
		}
	}

	return nil, errors.ErrTourNotFound
}

func (r *tourRepository) InsertCustom(ctx context.Context, t *domain.Tour) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.custom = append(r.custom, cloneTour(*t))

	return nil
}

// DeleteCustom повторно для того же ID возвращает ErrTourNotFound -
// семантика обычного REST DELETE.
func (r *tourRepository) DeleteCustom(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.custom {
		if t.ID == id {
			r.custom = append(r.custom[:i], r.custom[i+1:]...)
			return nil
		}
	}

	return errors.ErrTourNotFound
}

func (r *tourRepository) SetPredefined(ctx context.Context, tours []domain.Tour) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.predefined = copyTours(tours)

	return nil
}

func copyTours(tours []domain.Tour) []domain.Tour {
	result := make([]domain.Tour, len(tours))
	for i, t := range tours {
		result[i] = cloneTour(t)
	}
	return result
}

// cloneTour копирует и слайс MuseumIDs: вызывающие не должны видеть
// чужие мутации через общий backing array.
func cloneTour(t domain.Tour) domain.Tour {
	ids := make([]string, len(t.MuseumIDs))
	copy(ids, t.MuseumIDs)
	t.MuseumIDs = ids
	return t
}
