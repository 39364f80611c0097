package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/museums-api/internal/pkg/errors"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// SendJSON отдаёт ресурс как есть: мобильный клиент потребляет массивы
// и объекты напрямую, без конверта {data, meta}.
func SendJSON(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(500).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
