package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/museums-api/internal/pkg/utils"
	"github.com/museums-api/internal/usecase"
	"github.com/museums-api/internal/usecase/dto"
)

// FavoriteHandler - обработчик запросов избранного
type FavoriteHandler struct {
	favoritesUC *usecase.FavoritesUseCase
	logger      *zap.Logger
}

// NewFavoriteHandler - создание нового FavoriteHandler
func NewFavoriteHandler(favoritesUC *usecase.FavoritesUseCase, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoritesUC: favoritesUC,
		logger:      logger,
	}
}

// List godoc
// @Summary Избранные музеи
// @Description Возвращает избранные музеи, разрешённые против каталога
// @Tags Favorites
// @Produce json
// @Success 200 {array} domain.Museum
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/favorites [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	museums, err := h.favoritesUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, museums)
}

// Check godoc
// @Summary Проверка избранного
// @Description Возвращает признак наличия музея в избранном; неизвестный ID даёт false
// @Tags Favorites
// @Produce json
// @Param id path string true "ID музея"
// @Success 200 {object} dto.FavoriteStatusResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/favorites/check/{id} [get]
func (h *FavoriteHandler) Check(c *fiber.Ctx) error {
	isFavorite, err := h.favoritesUC.Check(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, dto.FavoriteStatusResponse{IsFavorite: isFavorite})
}

// Add godoc
// @Summary Добавление в избранное
// @Description Добавляет музей в избранное. Операция идемпотентна; музей должен существовать в каталоге.
// @Tags Favorites
// @Produce json
// @Param id path string true "ID музея"
// @Success 200 {object} map[string]string
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/favorites/{id} [post]
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.favoritesUC.Add(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, fiber.Map{"museum_id": id})
}

// Remove godoc
// @Summary Удаление из избранного
// @Description Убирает музей из избранного; для неизбранного ID это no-op
// @Tags Favorites
// @Produce json
// @Param id path string true "ID музея"
// @Success 200 {object} dto.StatusResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/favorites/{id} [delete]
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	if err := h.favoritesUC.Remove(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, dto.StatusResponse{Status: "removed"})
}
