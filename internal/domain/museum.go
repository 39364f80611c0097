package domain

import "time"

// TransportLink - транспортная остановка рядом с музеем.
// Не имеет собственного ID, живёт только внутри Museum.
type TransportLink struct {
	Type     string   `json:"type" validate:"required,oneof=tube bus train other"`
	Name     string   `json:"name" validate:"required"`
	Line     *string  `json:"line,omitempty"`
	Routes   []string `json:"routes,omitempty"`
	Distance string   `json:"distance" validate:"required"`
}

// NearbyEatery - кафе/ресторан рядом с музеем. Владеется Museum.
type NearbyEatery struct {
	Name       string   `json:"name" validate:"required"`
	Type       string   `json:"type" validate:"required"`
	Cuisine    *string  `json:"cuisine,omitempty"`
	Distance   string   `json:"distance" validate:"required"`
	PriceRange string   `json:"price_range" validate:"required,oneof=£ ££ £££"`
	Address    *string  `json:"address,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude  *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// Museum - запись каталога. После создания запись неизменяема.
type Museum struct {
	ID               string          `json:"id" db:"id"`
	Name             string          `json:"name" db:"name"`
	Description      string          `json:"description" db:"description"`
	ShortDescription string          `json:"short_description" db:"short_description"`
	Address          string          `json:"address" db:"address"`
	Latitude         float64         `json:"latitude" db:"latitude"`
	Longitude        float64         `json:"longitude" db:"longitude"`
	ImageURL         string          `json:"image_url" db:"image_url"`
	Category         string          `json:"category" db:"category"`
	FreeEntry        bool            `json:"free_entry" db:"free_entry"`
	OpeningHours     string          `json:"opening_hours" db:"opening_hours"`
	Website          *string         `json:"website,omitempty" db:"website"`
	Phone            *string         `json:"phone,omitempty" db:"phone"`
	Transport        []TransportLink `json:"transport" db:"-"`
	NearbyEateries   []NearbyEatery  `json:"nearby_eateries" db:"-"`
	Featured         bool            `json:"featured" db:"featured"`
	Rating           float64         `json:"rating" db:"rating"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}

// MuseumFilter - параметры фильтрации каталога. Пустой фильтр = весь каталог.
// Опции комбинируются через логическое AND.
type MuseumFilter struct {
	// Search - регистронезависимый поиск подстроки по name,
	// short_description и description.
	Search string
	// Category - точное совпадение категории (с учётом регистра).
	Category string
	// FreeOnly - только музеи с бесплатным входом.
	FreeOnly bool
}

// IsEmpty сообщает, задана ли хотя бы одна опция фильтра.
func (f MuseumFilter) IsEmpty() bool {
	return f.Search == "" && f.Category == "" && !f.FreeOnly
}
