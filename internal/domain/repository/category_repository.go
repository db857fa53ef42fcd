package repository

import (
	"context"

	"github.com/jhoicas/rrcaps-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type CategoryRepository interface {
	// List devuelve las categorías ordenadas por nombre ascendente,
	// opcionalmente filtradas por liga.
	List(ctx context.Context, league string) ([]entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) (string, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}
