package dto

import "github.com/museums-api/internal/domain"

// CreateMuseumRequest - запрос на добавление музея в каталог.
// Latitude/Longitude - указатели: ноль это валидная координата.
type CreateMuseumRequest struct {
	ID               string                 `json:"id" validate:"omitempty,max=64"`
	Name             string                 `json:"name" validate:"required,min=1,max=200"`
	Description      string                 `json:"description" validate:"required"`
	ShortDescription string                 `json:"short_description" validate:"required,max=300"`
	Address          string                 `json:"address" validate:"required"`
	Latitude         *float64               `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude        *float64               `json:"longitude" validate:"required,min=-180,max=180"`
	ImageURL         string                 `json:"image_url" validate:"required,url"`
	Category         string                 `json:"category" validate:"required"`
	FreeEntry        bool                   `json:"free_entry"`
	OpeningHours     string                 `json:"opening_hours" validate:"required"`
	Website          *string                `json:"website,omitempty" validate:"omitempty,url"`
	Phone            *string                `json:"phone,omitempty"`
	Transport        []domain.TransportLink `json:"transport,omitempty" validate:"omitempty,dive"`
	NearbyEateries   []domain.NearbyEatery  `json:"nearby_eateries,omitempty" validate:"omitempty,dive"`
	Featured         *bool                  `json:"featured,omitempty"`
	Rating           *float64               `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
}

// CreateTourRequest - запрос на создание пользовательского тура
type CreateTourRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Description string   `json:"description"`
	MuseumIDs   []string `json:"museum_ids" validate:"required,min=1"`
	Color       string   `json:"color" validate:"omitempty,hexcolor"`
}

// VerifyPINRequest - запрос на проверку админского PIN
type VerifyPINRequest struct {
	PIN string `json:"pin" validate:"required"`
}
