package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/museums-api/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры. Ошибка валидации переводится в AppError
// с именем первого невалидного поля, чтобы граница ответила 400, а не 500.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		return errors.InvalidField(fieldPath(verrs[0]))
	}

	return errors.ErrInvalidRequest
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// fieldPath срезает имя корневой структуры из Namespace, оставляя путь
// вида "Transport[0].Distance".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
