package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/rrcaps-api/internal/application/dto"
	"github.com/jhoicas/rrcaps-api/internal/domain"
	"github.com/jhoicas/rrcaps-api/internal/domain/entity"
	"github.com/jhoicas/rrcaps-api/internal/domain/repository"
)

// CapUseCase casos de uso del catálogo de gorras: listado con filtros,
// búsqueda full-text, detalle y CRUD.
type CapUseCase struct {
	capRepo      repository.CapRepository
	categoryRepo repository.CategoryRepository
}

// NewCapUseCase construye el caso de uso.
func NewCapUseCase(capRepo repository.CapRepository, categoryRepo repository.CategoryRepository) *CapUseCase {
	return &CapUseCase{capRepo: capRepo, categoryRepo: categoryRepo}
}

// List devuelve las gorras que cumplen los filtros por campo (name, precio,
// categoría, talla, material). La operación de listado NUNCA aplica la
// búsqueda full-text; si llegara un Query se descarta.
func (uc *CapUseCase) List(ctx context.Context, filter repository.CapFilter) (*dto.CapListResponse, error) {
	filter.Query = ""
	caps, err := uc.capRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toCapListResponse(caps), nil
}

// Search busca por término libre sobre name, description y material
// (OR, substring case-insensitive). El término tiene precedencia sobre el
// filtro simple por nombre: ambos nunca se aplican a la vez.
func (uc *CapUseCase) Search(ctx context.Context, filter repository.CapFilter) (*dto.CapListResponse, error) {
	if filter.Query == "" {
		return nil, domain.NewValidationError("q", "el término de búsqueda es requerido")
	}
	filter.Name = ""
	caps, err := uc.capRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toCapListResponse(caps), nil
}

// GetByID devuelve una gorra con su categoría completa embebida.
func (uc *CapUseCase) GetByID(ctx context.Context, id string) (*dto.CapDetailResponse, error) {
	detail, err := uc.capRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return toCapDetailResponse(detail), nil
}

// ListByCategory devuelve la categoría con sus gorras asociadas.
// Devuelve ErrNotFound si la categoría no existe.
func (uc *CapUseCase) ListByCategory(ctx context.Context, categoryID string) (*dto.CategoryWithCapsResponse, error) {
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	caps, err := uc.capRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CapResponse, 0, len(caps))
	for i := range caps {
		items = append(items, *toCapResponse(&caps[i]))
	}
	return &dto.CategoryWithCapsResponse{
		Category:  *toCategoryResponse(category),
		Caps:      items,
		TotalCaps: len(items),
	}, nil
}

// Create valida y persiste una gorra nueva, y la re-lee con el join de
// categoría para la respuesta. La verificación de que la categoría existe y el
// insert son dos llamadas sin transacción (carrera aceptada frente a un borrado
// concurrente de la categoría).
func (uc *CapUseCase) Create(ctx context.Context, in dto.CreateCapRequest) (*dto.CapDetailResponse, error) {
	fields := map[string]string{}
	if in.Name == "" {
		fields["name"] = "el nombre es requerido"
	}
	if in.Price == nil {
		fields["price"] = "el precio es requerido"
	} else if *in.Price < 0 {
		fields["price"] = "el precio no puede ser negativo"
	}
	stock := 0
	if in.Stock != nil {
		if *in.Stock < 0 {
			fields["stock"] = "el stock no puede ser negativo"
		} else {
			stock = *in.Stock
		}
	}
	size := in.Size
	if size == "" {
		size = entity.DefaultSize
	} else if !entity.ValidSize(size) {
		fields["size"] = "talla inválida (S, M, L, XL, Adjustable)"
	}
	material := in.Material
	if material == "" {
		material = entity.DefaultMaterial
	}
	if in.CategoryID == "" {
		fields["category"] = "la categoría es requerida"
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewValidationError("category", "la categoría no existe")
	}

	now := time.Now()
	cap := &entity.Cap{
		Name:        in.Name,
		Price:       *in.Price,
		Image:       in.Image,
		Description: in.Description,
		CategoryID:  category.ID,
		Stock:       stock,
		Size:        size,
		Material:    material,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	id, err := uc.capRepo.Create(ctx, cap)
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Update aplica una actualización parcial con las mismas validaciones que
// Create y devuelve la gorra re-leída con su categoría.
func (uc *CapUseCase) Update(ctx context.Context, id string, in dto.UpdateCapRequest) (*dto.CapDetailResponse, error) {
	detail, err := uc.capRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	cap := detail.Cap

	fields := map[string]string{}
	if in.Name != nil {
		if *in.Name == "" {
			fields["name"] = "el nombre no puede quedar vacío"
		} else {
			cap.Name = *in.Name
		}
	}
	if in.Price != nil {
		if *in.Price < 0 {
			fields["price"] = "el precio no puede ser negativo"
		} else {
			cap.Price = *in.Price
		}
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			fields["stock"] = "el stock no puede ser negativo"
		} else {
			cap.Stock = *in.Stock
		}
	}
	if in.Size != nil {
		if !entity.ValidSize(*in.Size) {
			fields["size"] = "talla inválida (S, M, L, XL, Adjustable)"
		} else {
			cap.Size = *in.Size
		}
	}
	if in.Image != nil {
		cap.Image = *in.Image
	}
	if in.Description != nil {
		cap.Description = *in.Description
	}
	if in.Material != nil && *in.Material != "" {
		cap.Material = *in.Material
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			fields["category"] = "la categoría no existe"
		} else {
			cap.CategoryID = category.ID
		}
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	cap.UpdatedAt = time.Now()
	if err := uc.capRepo.Update(ctx, &cap); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina una gorra por ID. Devuelve ErrNotFound si no existe.
func (uc *CapUseCase) Delete(ctx context.Context, id string) error {
	return uc.capRepo.Delete(ctx, id)
}

func toCapResponse(c *repository.CapWithCategory) *dto.CapResponse {
	if c == nil {
		return nil
	}
	out := &dto.CapResponse{
		ID:          c.Cap.ID.Hex(),
		Name:        c.Cap.Name,
		Price:       c.Cap.Price,
		Image:       c.Cap.Image,
		Description: c.Cap.Description,
		CategoryID:  c.Cap.CategoryID.Hex(),
		Stock:       c.Cap.Stock,
		Size:        c.Cap.Size,
		Material:    c.Cap.Material,
		CreatedAt:   c.Cap.CreatedAt,
		UpdatedAt:   c.Cap.UpdatedAt,
	}
	if c.Category != nil {
		out.Category = &dto.CategoryRefDTO{
			Name:   c.Category.Name,
			League: c.Category.League,
			Logo:   c.Category.Logo,
		}
	}
	return out
}

func toCapDetailResponse(d *repository.CapDetail) *dto.CapDetailResponse {
	if d == nil {
		return nil
	}
	out := &dto.CapDetailResponse{
		CapResponse: dto.CapResponse{
			ID:          d.Cap.ID.Hex(),
			Name:        d.Cap.Name,
			Price:       d.Cap.Price,
			Image:       d.Cap.Image,
			Description: d.Cap.Description,
			CategoryID:  d.Cap.CategoryID.Hex(),
			Stock:       d.Cap.Stock,
			Size:        d.Cap.Size,
			Material:    d.Cap.Material,
			CreatedAt:   d.Cap.CreatedAt,
			UpdatedAt:   d.Cap.UpdatedAt,
		},
	}
	if d.Category != nil {
		out.Category = &dto.CategoryRefDTO{
			Name:   d.Category.Name,
			League: d.Category.League,
			Logo:   d.Category.Logo,
		}
		out.CategoryDetail = toCategoryResponse(d.Category)
	}
	return out
}

func toCapListResponse(caps []repository.CapWithCategory) *dto.CapListResponse {
	items := make([]dto.CapResponse, 0, len(caps))
	for i := range caps {
		items = append(items, *toCapResponse(&caps[i]))
	}
	return &dto.CapListResponse{Items: items, Total: len(items)}
}
