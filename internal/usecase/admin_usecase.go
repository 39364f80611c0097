package usecase

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/museums-api/internal/domain"
	"github.com/museums-api/internal/domain/repository"
	"github.com/museums-api/internal/pkg/errors"
	"github.com/museums-api/internal/usecase/dto"
)

const defaultRating = 4.5

// AdminUseCase - use case админских операций, защищённых общим PIN
type AdminUseCase struct {
	museumRepo repository.MuseumRepository
	pin        string
	logger     *zap.Logger
}

// NewAdminUseCase - создание нового AdminUseCase
func NewAdminUseCase(museumRepo repository.MuseumRepository, pin string, logger *zap.Logger) *AdminUseCase {
	return &AdminUseCase{
		museumRepo: museumRepo,
		pin:        pin,
		logger:     logger,
	}
}

// VerifyPIN - проверка PIN за константное время
func (uc *AdminUseCase) VerifyPIN(pin string) error {
	if subtle.ConstantTimeCompare([]byte(pin), []byte(uc.pin)) != 1 {
		return errors.ErrInvalidPIN
	}

	return nil
}

// CreateMuseum - добавление музея в каталог. PIN проверяется на каждый
// вызов; незаполненные поля получают значения по умолчанию.
func (uc *AdminUseCase) CreateMuseum(ctx context.Context, pin string, req dto.CreateMuseumRequest) (*domain.Museum, error) {
	if err := uc.VerifyPIN(pin); err != nil {
		return nil, err
	}

	m := domain.Museum{
		ID:               req.ID,
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Address:          req.Address,
		Latitude:         *req.Latitude,
		Longitude:        *req.Longitude,
		ImageURL:         req.ImageURL,
		Category:         req.Category,
		FreeEntry:        req.FreeEntry,
		OpeningHours:     req.OpeningHours,
		Website:          req.Website,
		Phone:            req.Phone,
		Transport:        req.Transport,
		NearbyEateries:   req.NearbyEateries,
		Rating:           defaultRating,
		CreatedAt:        time.Now(),
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if req.Featured != nil {
		m.Featured = *req.Featured
	}
	if req.Rating != nil {
		m.Rating = *req.Rating
	}
	if m.Transport == nil {
		m.Transport = make([]domain.TransportLink, 0)
	}
	if m.NearbyEateries == nil {
		m.NearbyEateries = make([]domain.NearbyEatery, 0)
	}

	if err := uc.museumRepo.Insert(ctx, &m); err != nil {
		uc.logger.Error("Failed to create museum", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Museum created",
		zap.String("id", m.ID),
		zap.String("name", m.Name),
	)

	return &m, nil
}
