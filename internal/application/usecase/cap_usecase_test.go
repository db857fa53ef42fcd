package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rrcaps-api/internal/application/dto"
	"github.com/jhoicas/rrcaps-api/internal/application/usecase"
	"github.com/jhoicas/rrcaps-api/internal/domain"
	"github.com/jhoicas/rrcaps-api/internal/domain/entity"
	"github.com/jhoicas/rrcaps-api/internal/domain/repository"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }

// El listado descarta cualquier término de búsqueda que llegue colado: el
// filtro por campos y la búsqueda libre nunca se combinan.
func TestCapList_DescartaQuery(t *testing.T) {
	var seen repository.CapFilter
	capRepo := &fakeCapRepo{
		ListFn: func(ctx context.Context, filter repository.CapFilter) ([]repository.CapWithCategory, error) {
			seen = filter
			return nil, nil
		},
	}
	uc := usecase.NewCapUseCase(capRepo, &fakeCategoryRepo{})

	out, err := uc.List(context.Background(), repository.CapFilter{Name: "Yankees", Query: "cotton"})
	require.NoError(t, err)

	assert.Empty(t, seen.Query, "List nunca aplica la búsqueda full-text")
	assert.Equal(t, "Yankees", seen.Name)
	assert.Equal(t, 0, out.Total)
	assert.NotNil(t, out.Items, "la lista vacía se serializa como [], no null")
}

// La búsqueda exige el término y descarta el filtro simple por nombre.
func TestCapSearch_QueryRequeridoYPrecedencia(t *testing.T) {
	var seen repository.CapFilter
	capRepo := &fakeCapRepo{
		ListFn: func(ctx context.Context, filter repository.CapFilter) ([]repository.CapWithCategory, error) {
			seen = filter
			return nil, nil
		},
	}
	uc := usecase.NewCapUseCase(capRepo, &fakeCategoryRepo{})

	_, err := uc.Search(context.Background(), repository.CapFilter{})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr, "sin término la búsqueda es inválida")
	assert.Contains(t, verr.Fields, "q")

	_, err = uc.Search(context.Background(), repository.CapFilter{Query: "wool", Name: "Yankees"})
	require.NoError(t, err)
	assert.Equal(t, "wool", seen.Query)
	assert.Empty(t, seen.Name, "el término tiene precedencia sobre el filtro por nombre")
}

func TestCapGetByID_NoEncontrada(t *testing.T) {
	capRepo := &fakeCapRepo{
		GetByIDFn: func(ctx context.Context, id string) (*repository.CapDetail, error) {
			return nil, nil
		},
	}
	uc := usecase.NewCapUseCase(capRepo, &fakeCategoryRepo{})

	_, err := uc.GetByID(context.Background(), "64f0c2a9e1b2c3d4e5f60718")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Crear con varios campos inválidos acumula todos los errores en una sola
// respuesta, no devuelve solo el primero.
func TestCapCreate_AcumulaErroresDeValidacion(t *testing.T) {
	uc := usecase.NewCapUseCase(&fakeCapRepo{}, &fakeCategoryRepo{})

	_, err := uc.Create(context.Background(), dto.CreateCapRequest{
		Name:  "",
		Price: fptr(-5),
		Stock: iptr(-1),
		Size:  "XXL",
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "price")
	assert.Contains(t, verr.Fields, "stock")
	assert.Contains(t, verr.Fields, "size")
	assert.Contains(t, verr.Fields, "category")
}

// Los defaults se aplican cuando talla y material vienen vacíos, y la
// respuesta se re-lee con el join de categoría.
func TestCapCreate_AplicaDefaultsYReLee(t *testing.T) {
	catID := newObjectID()
	category := &entity.Category{ID: catID, Name: "New York Yankees", League: entity.LeagueMLB}

	var created *entity.Cap
	capID := newObjectID()
	capRepo := &fakeCapRepo{
		CreateFn: func(ctx context.Context, cap *entity.Cap) (string, error) {
			created = cap
			return capID.Hex(), nil
		},
		GetByIDFn: func(ctx context.Context, id string) (*repository.CapDetail, error) {
			require.Equal(t, capID.Hex(), id)
			c := *created
			c.ID = capID
			return &repository.CapDetail{Cap: c, Category: category}, nil
		},
	}
	categoryRepo := &fakeCategoryRepo{
		GetByIDFn: func(ctx context.Context, id string) (*entity.Category, error) {
			require.Equal(t, catID.Hex(), id)
			return category, nil
		},
	}
	uc := usecase.NewCapUseCase(capRepo, categoryRepo)

	out, err := uc.Create(context.Background(), dto.CreateCapRequest{
		Name:       "Yankees Classic",
		Price:      fptr(34.99),
		CategoryID: catID.Hex(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultSize, created.Size)
	assert.Equal(t, entity.DefaultMaterial, created.Material)
	assert.Equal(t, 0, created.Stock, "stock ausente arranca en cero")
	assert.Equal(t, catID, created.CategoryID)

	assert.Equal(t, capID.Hex(), out.ID)
	require.NotNil(t, out.CategoryDetail)
	assert.Equal(t, "New York Yankees", out.CategoryDetail.Name)
}

// Precio cero es válido: el límite es negativo, no cero.
func TestCapCreate_PrecioCeroEsValido(t *testing.T) {
	catID := newObjectID()
	category := &entity.Category{ID: catID, Name: "Dodgers", League: entity.LeagueMLB}
	capRepo := &fakeCapRepo{
		CreateFn: func(ctx context.Context, cap *entity.Cap) (string, error) {
			return newObjectID().Hex(), nil
		},
		GetByIDFn: func(ctx context.Context, id string) (*repository.CapDetail, error) {
			return &repository.CapDetail{Cap: entity.Cap{Name: "Promo"}, Category: category}, nil
		},
	}
	categoryRepo := &fakeCategoryRepo{
		GetByIDFn: func(ctx context.Context, id string) (*entity.Category, error) { return category, nil },
	}
	uc := usecase.NewCapUseCase(capRepo, categoryRepo)

	_, err := uc.Create(context.Background(), dto.CreateCapRequest{
		Name:       "Promo",
		Price:      fptr(0),
		CategoryID: catID.Hex(),
	})
	assert.NoError(t, err)
}

// La categoría referenciada debe existir al crear.
func TestCapCreate_CategoriaInexistente(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{
		GetByIDFn: func(ctx context.Context, id string) (*entity.Category, error) { return nil, nil },
	}
	uc := usecase.NewCapUseCase(&fakeCapRepo{}, categoryRepo)

	_, err := uc.Create(context.Background(), dto.CreateCapRequest{
		Name:       "Huérfana",
		Price:      fptr(10),
		CategoryID: newObjectID().Hex(),
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "category")
}

// La actualización parcial solo toca los campos presentes.
func TestCapUpdate_Parcial(t *testing.T) {
	capID := newObjectID()
	catID := newObjectID()
	category := &entity.Category{ID: catID, Name: "Red Sox", League: entity.LeagueMLB}
	stored := entity.Cap{
		ID: capID, Name: "Original", Price: 20, Stock: 10,
		Size: entity.SizeM, Material: "Cotton", CategoryID: catID,
	}

	var updated *entity.Cap
	capRepo := &fakeCapRepo{
		GetByIDFn: func(ctx context.Context, id string) (*repository.CapDetail, error) {
			c := stored
			if updated != nil {
				c = *updated
			}
			return &repository.CapDetail{Cap: c, Category: category}, nil
		},
		UpdateFn: func(ctx context.Context, cap *entity.Cap) error {
			updated = cap
			return nil
		},
	}
	uc := usecase.NewCapUseCase(capRepo, &fakeCategoryRepo{})

	out, err := uc.Update(context.Background(), capID.Hex(), dto.UpdateCapRequest{
		Price: fptr(25.50),
	})
	require.NoError(t, err)

	assert.Equal(t, 25.50, updated.Price)
	assert.Equal(t, "Original", updated.Name, "los campos no enviados se conservan")
	assert.Equal(t, 10, updated.Stock)
	assert.Equal(t, 25.50, out.Price)
}

func TestCapUpdate_NoEncontrada(t *testing.T) {
	capRepo := &fakeCapRepo{
		GetByIDFn: func(ctx context.Context, id string) (*repository.CapDetail, error) { return nil, nil },
	}
	uc := usecase.NewCapUseCase(capRepo, &fakeCategoryRepo{})

	_, err := uc.Update(context.Background(), newObjectID().Hex(), dto.UpdateCapRequest{Name: sptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCapUpdate_StockNegativoRechazado(t *testing.T) {
	capID := newObjectID()
	capRepo := &fakeCapRepo{
		GetByIDFn: func(ctx context.Context, id string) (*repository.CapDetail, error) {
			return &repository.CapDetail{Cap: entity.Cap{ID: capID, Name: "x"}}, nil
		},
	}
	uc := usecase.NewCapUseCase(capRepo, &fakeCategoryRepo{})

	_, err := uc.Update(context.Background(), capID.Hex(), dto.UpdateCapRequest{Stock: iptr(-3)})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "stock")
}

func TestCapDelete_PropagaNoEncontrada(t *testing.T) {
	capRepo := &fakeCapRepo{
		DeleteFn: func(ctx context.Context, id string) error { return domain.ErrNotFound },
	}
	uc := usecase.NewCapUseCase(capRepo, &fakeCategoryRepo{})

	err := uc.Delete(context.Background(), newObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ListByCategory exige que la categoría exista antes de listar.
func TestCapListByCategory_CategoriaInexistente(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{
		GetByIDFn: func(ctx context.Context, id string) (*entity.Category, error) { return nil, nil },
	}
	uc := usecase.NewCapUseCase(&fakeCapRepo{}, categoryRepo)

	_, err := uc.ListByCategory(context.Background(), newObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCapListByCategory_DevuelveCategoriaYGorras(t *testing.T) {
	catID := newObjectID()
	category := &entity.Category{ID: catID, Name: "Cubs", League: entity.LeagueMLB}
	categoryRepo := &fakeCategoryRepo{
		GetByIDFn: func(ctx context.Context, id string) (*entity.Category, error) { return category, nil },
	}
	capRepo := &fakeCapRepo{
		ListByCategoryFn: func(ctx context.Context, categoryID string) ([]repository.CapWithCategory, error) {
			return []repository.CapWithCategory{
				{Cap: entity.Cap{ID: newObjectID(), Name: "Wrigley Classic", CategoryID: catID}},
				{Cap: entity.Cap{ID: newObjectID(), Name: "Cubs Snapback", CategoryID: catID}},
			}, nil
		},
	}
	uc := usecase.NewCapUseCase(capRepo, categoryRepo)

	out, err := uc.ListByCategory(context.Background(), catID.Hex())
	require.NoError(t, err)

	assert.Equal(t, "Cubs", out.Category.Name)
	assert.Equal(t, 2, out.TotalCaps)
	assert.Len(t, out.Caps, 2)
}

// Los errores de infraestructura se propagan sin envolver.
func TestCapList_PropagaErrorDelRepo(t *testing.T) {
	boom := errors.New("mongo caído")
	capRepo := &fakeCapRepo{
		ListFn: func(ctx context.Context, filter repository.CapFilter) ([]repository.CapWithCategory, error) {
			return nil, boom
		},
	}
	uc := usecase.NewCapUseCase(capRepo, &fakeCategoryRepo{})

	_, err := uc.List(context.Background(), repository.CapFilter{})
	assert.ErrorIs(t, err, boom)
}
