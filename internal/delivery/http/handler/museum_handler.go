package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/museums-api/internal/domain"
	"github.com/museums-api/internal/pkg/utils"
	"github.com/museums-api/internal/usecase"
)

// MuseumHandler - обработчик запросов каталога музеев
type MuseumHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

// NewMuseumHandler - создание нового MuseumHandler
func NewMuseumHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *MuseumHandler {
	return &MuseumHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// List godoc
// @Summary Список музеев
// @Description Возвращает каталог музеев. Поиск - подстрока без учёта регистра по названию и описаниям; категория - точное совпадение; free_only оставляет только бесплатные музеи. Фильтры комбинируются по AND.
// @Tags Museums
// @Produce json
// @Param search query string false "Поисковая подстрока"
// @Param category query string false "Категория (точное совпадение)"
// @Param free_only query bool false "Только бесплатные музеи"
// @Success 200 {array} domain.Museum
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/museums [get]
func (h *MuseumHandler) List(c *fiber.Ctx) error {
	filter := domain.MuseumFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		FreeOnly: c.QueryBool("free_only"),
	}

	museums, err := h.catalogUC.List(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, museums)
}

// Featured godoc
// @Summary Музеи для главного экрана
// @Description Возвращает музеи, отмеченные флагом featured
// @Tags Museums
// @Produce json
// @Success 200 {array} domain.Museum
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/museums/featured [get]
func (h *MuseumHandler) Featured(c *fiber.Ctx) error {
	museums, err := h.catalogUC.Featured(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, museums)
}

// Categories godoc
// @Summary Категории каталога
// @Description Возвращает отсортированный список различных категорий музеев
// @Tags Museums
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/museums/categories [get]
func (h *MuseumHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalogUC.Categories(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, categories)
}

// GetByID godoc
// @Summary Карточка музея
// @Description Возвращает музей по идентификатору
// @Tags Museums
// @Produce json
// @Param id path string true "ID музея"
// @Success 200 {object} domain.Museum
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/museums/{id} [get]
func (h *MuseumHandler) GetByID(c *fiber.Ctx) error {
	museum, err := h.catalogUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, museum)
}
