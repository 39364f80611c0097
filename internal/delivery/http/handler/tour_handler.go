package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/museums-api/internal/pkg/errors"
	"github.com/museums-api/internal/pkg/utils"
	"github.com/museums-api/internal/pkg/validator"
	"github.com/museums-api/internal/usecase"
	"github.com/museums-api/internal/usecase/dto"
)

// TourHandler - обработчик запросов туров
type TourHandler struct {
	tourUC *usecase.TourUseCase
	logger *zap.Logger
}

// NewTourHandler - создание нового TourHandler
func NewTourHandler(tourUC *usecase.TourUseCase, logger *zap.Logger) *TourHandler {
	return &TourHandler{
		tourUC: tourUC,
		logger: logger,
	}
}

// ListPredefined godoc
// @Summary Предустановленные туры
// @Description Возвращает предустановленные туры с разрешёнными музеями в порядке museum_ids
// @Tags Tours
// @Produce json
// @Success 200 {array} dto.TourResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/tours [get]
func (h *TourHandler) ListPredefined(c *fiber.Ctx) error {
	tours, err := h.tourUC.ListPredefined(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, tours)
}

// ListCustom godoc
// @Summary Пользовательские туры
// @Description Возвращает пользовательские туры с разрешёнными музеями
// @Tags Tours
// @Produce json
// @Success 200 {array} dto.TourResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/tours/custom/list [get]
func (h *TourHandler) ListCustom(c *fiber.Ctx) error {
	tours, err := h.tourUC.ListCustom(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, tours)
}

// CreateCustom godoc
// @Summary Создание пользовательского тура
// @Description Создаёт тур из упорядоченного списка ID музеев. Каждый ID должен существовать в каталоге; дубликаты допустимы.
// @Tags Tours
// @Accept json
// @Produce json
// @Param request body dto.CreateTourRequest true "Название и остановки тура"
// @Success 200 {object} dto.TourResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/tours/custom [post]
func (h *TourHandler) CreateCustom(c *fiber.Ctx) error {
	var req dto.CreateTourRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	tour, err := h.tourUC.CreateCustom(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, tour)
}

// DeleteCustom godoc
// @Summary Удаление пользовательского тура
// @Description Удаляет пользовательский тур; повторное удаление даёт 404
// @Tags Tours
// @Produce json
// @Param id path string true "ID тура"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/tours/custom/{id} [delete]
func (h *TourHandler) DeleteCustom(c *fiber.Ctx) error {
	if err := h.tourUC.DeleteCustom(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, dto.StatusResponse{Status: "deleted"})
}

// Route godoc
// @Summary Маршрут тура
// @Description Возвращает ссылку на пеший маршрут тура в Google Maps
// @Tags Tours
// @Produce json
// @Param id path string true "ID тура"
// @Success 200 {object} dto.RouteResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/tours/{id}/route [get]
func (h *TourHandler) Route(c *fiber.Ctx) error {
	route, err := h.tourUC.Route(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, route)
}
