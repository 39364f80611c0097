package repository

import (
	"context"

	"github.com/museums-api/internal/domain"
)

// TourRepository - хранилище туров. Предустановленные туры задаются один
// раз через SetPredefined при старте; пользовательские живут отдельно.
type TourRepository interface {
	ListPredefined(ctx context.Context) ([]domain.Tour, error)
	ListCustom(ctx context.Context) ([]domain.Tour, error)
	// GetByID ищет тур среди предустановленных и пользовательских.
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	InsertCustom(ctx context.Context, t *domain.Tour) error
	// DeleteCustom возвращает ErrTourNotFound, если тура нет,
	// в том числе при повторном удалении.
	DeleteCustom(ctx context.Context, id string) error
	SetPredefined(ctx context.Context, tours []domain.Tour) error
}
