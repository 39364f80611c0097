package dto

import "github.com/museums-api/internal/domain"

// TourResponse - тур вместе с разрешёнными музеями в порядке museum_ids
type TourResponse struct {
	domain.Tour
	Museums []domain.Museum `json:"museums"`
}

// FavoriteStatusResponse - признак наличия музея в избранном
type FavoriteStatusResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

// PINVerifiedResponse - результат проверки PIN
type PINVerifiedResponse struct {
	Valid bool `json:"valid"`
}

// RouteResponse - ссылка на маршрут тура в Google Maps
type RouteResponse struct {
	URL string `json:"url"`
}

// StatusResponse - подтверждение мутации без тела ресурса
type StatusResponse struct {
	Status string `json:"status"`
}

// HealthResponse - состояние сервиса и его хранилищ
type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}
