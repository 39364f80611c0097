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

// AdminHandler - обработчик админских запросов
type AdminHandler struct {
	adminUC *usecase.AdminUseCase
	logger  *zap.Logger
}

// NewAdminHandler - создание нового AdminHandler
func NewAdminHandler(adminUC *usecase.AdminUseCase, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
		logger:  logger,
	}
}

// VerifyPIN godoc
// @Summary Проверка админского PIN
// @Description Проверяет PIN и возвращает признак валидности
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.VerifyPINRequest true "PIN"
// @Success 200 {object} dto.PINVerifiedResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/admin/verify [post]
func (h *AdminHandler) VerifyPIN(c *fiber.Ctx) error {
	var req dto.VerifyPINRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.adminUC.VerifyPIN(req.PIN); err != nil {
		h.logger.Warn("PIN verification failed", zap.String("ip", c.IP()))
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, dto.PINVerifiedResponse{Valid: true})
}

// CreateMuseum godoc
// @Summary Добавление музея
// @Description Добавляет музей в каталог. PIN передаётся query-параметром и проверяется на каждый вызов.
// @Tags Admin
// @Accept json
// @Produce json
// @Param pin query string true "Админский PIN"
// @Param request body dto.CreateMuseumRequest true "Поля музея"
// @Success 200 {object} domain.Museum
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/admin/museums [post]
func (h *AdminHandler) CreateMuseum(c *fiber.Ctx) error {
	var req dto.CreateMuseumRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	museum, err := h.adminUC.CreateMuseum(c.Context(), c.Query("pin"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendJSON(c, museum)
}
