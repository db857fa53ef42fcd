package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/rrcaps-api/internal/application/dto"
	"github.com/jhoicas/rrcaps-api/internal/domain"
	"github.com/jhoicas/rrcaps-api/internal/domain/entity"
	"github.com/jhoicas/rrcaps-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías (equipos).
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	capRepo      repository.CapRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository, capRepo repository.CapRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, capRepo: capRepo}
}

// List devuelve las categorías ordenadas por nombre, con filtro opcional por liga.
func (uc *CategoryUseCase) List(ctx context.Context, league string) (*dto.CategoryListResponse, error) {
	categories, err := uc.categoryRepo.List(ctx, league)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, *toCategoryResponse(&categories[i]))
	}
	return &dto.CategoryListResponse{Items: items, Total: len(items)}, nil
}

// GetByID devuelve una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Create valida y persiste una categoría nueva.
// Devuelve ErrDuplicate si ya existe una con ese nombre.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	league := in.League
	if league == "" {
		league = entity.DefaultLeague
	}
	if err := validateCategory(in.Name, league, in.FoundedYear); err != nil {
		return nil, err
	}
	existing, err := uc.categoryRepo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		Name:        in.Name,
		Description: in.Description,
		Logo:        in.Logo,
		League:      league,
		FoundedYear: in.FoundedYear,
		City:        in.City,
		Colors:      in.Colors,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := uc.categoryRepo.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Update aplica una actualización parcial con las mismas validaciones que Create.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.League != nil {
		category.League = *in.League
	}
	if in.FoundedYear != nil {
		category.FoundedYear = in.FoundedYear
	}
	if err := validateCategory(category.Name, category.League, category.FoundedYear); err != nil {
		return nil, err
	}
	if in.Name != nil {
		other, err := uc.categoryRepo.GetByName(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != category.ID {
			return nil, domain.ErrDuplicate
		}
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Logo != nil {
		category.Logo = *in.Logo
	}
	if in.City != nil {
		category.City = *in.City
	}
	if in.Colors != nil {
		category.Colors = *in.Colors
	}
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría, con guardia de integridad referencial: si
// alguna gorra la referencia, la operación falla con ConflictError.
// La verificación y el borrado son dos llamadas sin transacción; una gorra
// creada entre ambas es una carrera estrecha aceptada.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	refs, err := uc.capRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return &domain.ConflictError{References: refs}
	}
	return uc.categoryRepo.Delete(ctx, id)
}

func validateCategory(name, league string, foundedYear *int) error {
	fields := map[string]string{}
	if name == "" {
		fields["name"] = "el nombre es requerido"
	}
	if !entity.ValidLeague(league) {
		fields["league"] = "liga inválida (MLB, NFL, NBA, NHL, Otros)"
	}
	if foundedYear != nil {
		current := time.Now().Year()
		if *foundedYear < entity.MinFoundedYear || *foundedYear > current {
			fields["foundedYear"] = "el año de fundación debe estar entre 1800 y el año actual"
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID.Hex(),
		Name:        c.Name,
		Description: c.Description,
		Logo:        c.Logo,
		League:      c.League,
		FoundedYear: c.FoundedYear,
		City:        c.City,
		Colors:      c.Colors,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
