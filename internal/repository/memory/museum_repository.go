// Package memory реализует стора сервиса в памяти процесса. Каждая
// коллекция охраняется собственным RWMutex: записи сериализуются, чтения
// идут параллельно и видят либо до-, либо пост-состояние записи.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/museums-api/internal/domain"
	"github.com/museums-api/internal/domain/repository"
	"github.com/museums-api/internal/pkg/errors"
)

type museumRepository struct {
	mu      sync.RWMutex
	museums []domain.Museum
	byID    map[string]int
}

func NewMuseumRepository() repository.MuseumRepository {
	return &museumRepository{
		byID: make(map[string]int),
	}
}

// List возвращает копии записей в порядке вставки - порядок стабилен
// между вызовами при неизменном каталоге.
func (r *museumRepository) List(ctx context.Context, filter domain.MuseumFilter) ([]domain.Museum, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filter.Search)

	result := make([]domain.Museum, 0, len(r.museums))
	for _, m := range r.museums {
		if search != "" && !matchesSearch(&m, search) {
			continue
		}
		if filter.Category != "" && m.Category != filter.Category {
			continue
		}
		if filter.FreeOnly && !m.FreeEntry {
			continue
		}
		result = append(result, m)
	}

	return result, nil
}

func (r *museumRepository) GetByID(ctx context.Context, id string) (*domain.Museum, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, errors.ErrMuseumNotFound
	}

	m := r.museums[idx]
	return &m, nil
}

func (r *museumRepository) Featured(ctx context.Context) ([]domain.Museum, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Museum, 0)
	for _, m := range r.museums {
		if m.Featured {
			result = append(result, m)
		}
	}

	return result, nil
}

// Categories выводит множество категорий из текущего каталога - оно не
// хранится отдельно, поэтому не может устареть.
func (r *museumRepository) Categories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, m := range r.museums {
		seen[m.Category] = struct{}{}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return categories, nil
}

func (r *museumRepository) Insert(ctx context.Context, m *domain.Museum) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; exists {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"museum_id": m.ID,
			"reason":    "duplicate id",
		})
	}

	r.byID[m.ID] = len(r.museums)
	r.museums = append(r.museums, *m)

	return nil
}

func (r *museumRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.museums), nil
}

func matchesSearch(m *domain.Museum, search string) bool {
	return strings.Contains(strings.ToLower(m.Name), search) ||
		strings.Contains(strings.ToLower(m.ShortDescription), search) ||
		strings.Contains(strings.ToLower(m.Description), search)
}
