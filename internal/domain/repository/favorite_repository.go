package repository

import "context"

// FavoriteRepository - множество ID избранных музеев единственного
// пользователя. Add/Remove идемпотентны на уровне хранилища.
type FavoriteRepository interface {
	Add(ctx context.Context, museumID string) error
	Remove(ctx context.Context, museumID string) error
	Exists(ctx context.Context, museumID string) (bool, error)
	List(ctx context.Context) ([]string, error)
}
