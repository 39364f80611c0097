package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/museums-api/internal/domain"
	"github.com/museums-api/internal/domain/repository"
	"github.com/museums-api/internal/pkg/errors"
	"github.com/museums-api/internal/pkg/maps"
	"github.com/museums-api/internal/pkg/utils"
	"github.com/museums-api/internal/usecase/dto"
)

const (
	defaultTourColor = "#E63946"

	// Оценки для пользовательских туров: пешая скорость и время на музей.
	walkingSpeedKmh  = 4.5
	minutesPerMuseum = 45.0
)

// TourUseCase - use case предустановленных и пользовательских туров
type TourUseCase struct {
	tourRepo   repository.TourRepository
	museumRepo repository.MuseumRepository
	logger     *zap.Logger
}

// NewTourUseCase - создание нового TourUseCase
func NewTourUseCase(
	tourRepo repository.TourRepository,
	museumRepo repository.MuseumRepository,
	logger *zap.Logger,
) *TourUseCase {
	return &TourUseCase{
		tourRepo:   tourRepo,
		museumRepo: museumRepo,
		logger:     logger,
	}
}

// ListPredefined - предустановленные туры с разрешёнными музеями
func (uc *TourUseCase) ListPredefined(ctx context.Context) ([]dto.TourResponse, error) {
	tours, err := uc.tourRepo.ListPredefined(ctx)
	if err != nil {
		uc.logger.Error("Failed to list predefined tours", zap.Error(err))
		return nil, err
	}

	return uc.resolveAll(ctx, tours), nil
}

// ListCustom - пользовательские туры с разрешёнными музеями
func (uc *TourUseCase) ListCustom(ctx context.Context) ([]dto.TourResponse, error) {
	tours, err := uc.tourRepo.ListCustom(ctx)
	if err != nil {
		uc.logger.Error("Failed to list custom tours", zap.Error(err))
		return nil, err
	}

	return uc.resolveAll(ctx, tours), nil
}

// GetByID - тур по идентификатору, среди предустановленных и пользовательских
func (uc *TourUseCase) GetByID(ctx context.Context, id string) (*dto.TourResponse, error) {
	t, err := uc.tourRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resolved := uc.resolve(ctx, *t)
	return &resolved, nil
}

// CreateCustom - создание пользовательского тура. Каждый ID из museum_ids
// должен разрешаться в музей каталога; порядок и дубликаты сохраняются.
func (uc *TourUseCase) CreateCustom(ctx context.Context, req dto.CreateTourRequest) (*dto.TourResponse, error) {
	if len(req.MuseumIDs) == 0 {
		return nil, errors.ErrEmptyTourMuseums
	}

	museums := make([]domain.Museum, 0, len(req.MuseumIDs))
	for _, id := range req.MuseumIDs {
		m, err := uc.museumRepo.GetByID(ctx, id)
		if err != nil {
			return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"museum_id": id,
			})
		}
		museums = append(museums, *m)
	}

	color := req.Color
	if color == "" {
		color = defaultTourColor
	}

	distance, duration := estimateTour(museums)

	t := domain.Tour{
		ID:          uuid.NewString(),
		Kind:        domain.TourKindCustom,
		Name:        req.Name,
		Description: req.Description,
		Duration:    duration,
		Distance:    distance,
		Color:       color,
		MuseumIDs:   append([]string(nil), req.MuseumIDs...),
		CreatedAt:   time.Now(),
	}

	if err := uc.tourRepo.InsertCustom(ctx, &t); err != nil {
		uc.logger.Error("Failed to create custom tour", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Custom tour created",
		zap.String("id", t.ID),
		zap.Int("stops", len(t.MuseumIDs)),
	)

	return &dto.TourResponse{Tour: t, Museums: museums}, nil
}

// DeleteCustom - удаление пользовательского тура; предустановленные не
// удаляются и дают TOUR_NOT_FOUND
func (uc *TourUseCase) DeleteCustom(ctx context.Context, id string) error {
	return uc.tourRepo.DeleteCustom(ctx, id)
}

// Route - ссылка на пеший маршрут тура в Google Maps
func (uc *TourUseCase) Route(ctx context.Context, id string) (*dto.RouteResponse, error) {
	t, err := uc.tourRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resolved := uc.resolve(ctx, *t)

	points := make([]maps.Waypoint, 0, len(resolved.Museums))
	for _, m := range resolved.Museums {
		points = append(points, maps.Waypoint{
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
			Name:      m.Name,
		})
	}

	url, err := maps.DirectionsURL(points)
	if err != nil {
		return nil, err
	}

	return &dto.RouteResponse{URL: url}, nil
}

func (uc *TourUseCase) resolveAll(ctx context.Context, tours []domain.Tour) []dto.TourResponse {
	resolved := make([]dto.TourResponse, 0, len(tours))
	for _, t := range tours {
		resolved = append(resolved, uc.resolve(ctx, t))
	}

	return resolved
}

// resolve подставляет музеи в порядке museum_ids; висячие ID пропускаются,
// чтобы чтение тура не ломалось из-за исчезнувшего музея.
func (uc *TourUseCase) resolve(ctx context.Context, t domain.Tour) dto.TourResponse {
	museums := make([]domain.Museum, 0, len(t.MuseumIDs))
	for _, id := range t.MuseumIDs {
		m, err := uc.museumRepo.GetByID(ctx, id)
		if err != nil {
			uc.logger.Warn("Skipping unresolvable tour stop",
				zap.String("tour_id", t.ID),
				zap.String("museum_id", id),
			)
			continue
		}
		museums = append(museums, *m)
	}

	return dto.TourResponse{Tour: t, Museums: museums}
}

// estimateTour оценивает протяжённость и длительность по прямым между
// остановками плюс время на осмотр каждого музея.
func estimateTour(museums []domain.Museum) (distance, duration string) {
	var km float64
	for i := 1; i < len(museums); i++ {
		prev, cur := museums[i-1], museums[i]
		km += utils.HaversineDistance(prev.Latitude, prev.Longitude, cur.Latitude, cur.Longitude)
	}

	minutes := km/walkingSpeedKmh*60 + minutesPerMuseum*float64(len(museums))
	total := int(math.Round(minutes))

	if total < 60 {
		duration = fmt.Sprintf("%d mins", total)
	} else {
		hours := float64(total) / 60
		duration = fmt.Sprintf("%.1f hours", math.Round(hours*2)/2)
	}

	return fmt.Sprintf("%.1f km", km), duration
}
