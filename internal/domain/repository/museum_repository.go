package repository

import (
	"context"

	"github.com/museums-api/internal/domain"
)

// MuseumRepository - хранилище каталога музеев. Insert - единственная
// мутация; порядок List стабилен между вызовами при неизменных данных.
type MuseumRepository interface {
	List(ctx context.Context, filter domain.MuseumFilter) ([]domain.Museum, error)
	GetByID(ctx context.Context, id string) (*domain.Museum, error)
	Featured(ctx context.Context) ([]domain.Museum, error)
	Categories(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, m *domain.Museum) error
	Count(ctx context.Context) (int, error)
}
