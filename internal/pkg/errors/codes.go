package errors

import (
	"fmt"
	"net/http"
)

var (
	ErrMuseumNotFound = New(
		"MUSEUM_NOT_FOUND",
		"Museum not found",
		http.StatusNotFound,
	)

	ErrTourNotFound = New(
		"TOUR_NOT_FOUND",
		"Tour not found",
		http.StatusNotFound,
	)

	ErrInvalidPIN = New(
		"INVALID_PIN",
		"Invalid admin PIN",
		http.StatusUnauthorized,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrEmptyTourMuseums = New(
		"EMPTY_TOUR_MUSEUMS",
		"A tour must contain at least one museum",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRating = New(
		"INVALID_RATING",
		"Rating must be between 0 and 5",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Favorites storage operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// InvalidField - ошибка валидации с именем первого невалидного поля.
func InvalidField(field string) *AppError {
	return New(
		"VALIDATION_ERROR",
		fmt.Sprintf("Missing or invalid field: %s", field),
		http.StatusBadRequest,
	)
}
