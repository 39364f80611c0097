package domain

import "time"

// Виды туров: предустановленные загружаются из сидов при старте и
// неизменяемы; пользовательские создаются и удаляются через API.
const (
	TourKindPredefined = "predefined"
	TourKindCustom     = "custom"
)

// Tour - пешеходный маршрут по музеям. MuseumIDs хранит порядок посещения
// дословно; дубликаты допустимы (пользователь может вернуться в музей).
type Tour struct {
	ID          string    `json:"id" db:"id"`
	Kind        string    `json:"-" db:"kind"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	Duration    string    `json:"duration,omitempty" db:"duration"`
	Distance    string    `json:"distance,omitempty" db:"distance"`
	Color       string    `json:"color" db:"color"`
	MuseumIDs   []string  `json:"museum_ids" db:"-"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
