package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/rrcaps-api/internal/application/dto"
	"github.com/jhoicas/rrcaps-api/internal/domain"
	"github.com/jhoicas/rrcaps-api/internal/domain/repository"
)

// BulkStockUseCase actualización masiva de stock: N actualizaciones
// independientes, acumulando el resultado de cada una sin abortar el resto.
// No es una transacción: la aplicación parcial entre entradas es esperada.
type BulkStockUseCase struct {
	capRepo repository.CapRepository
}

// NewBulkStockUseCase construye el caso de uso.
func NewBulkStockUseCase(capRepo repository.CapRepository) *BulkStockUseCase {
	return &BulkStockUseCase{capRepo: capRepo}
}

// UpdateStock procesa las entradas en orden, una a una. Cada fallo (id
// faltante, stock faltante o negativo, gorra inexistente, error de DB) se
// registra como fallo de esa entrada y el bucle continúa.
func (uc *BulkStockUseCase) UpdateStock(ctx context.Context, in dto.BulkUpdateStockRequest) (*dto.BulkUpdateStockResponse, error) {
	if len(in.Updates) == 0 {
		return nil, domain.NewValidationError("updates", "se requiere un array de actualizaciones")
	}

	results := make([]dto.BulkStockResult, 0, len(in.Updates))
	for _, update := range in.Updates {
		results = append(results, uc.applyOne(ctx, update))
	}

	successful := 0
	for _, r := range results {
		if r.Success {
			successful++
		}
	}
	failed := len(results) - successful

	return &dto.BulkUpdateStockResponse{
		Message: fmt.Sprintf("Actualización masiva completada: %d exitosas, %d fallidas", successful, failed),
		Results: results,
		Summary: dto.BulkSummaryDTO{
			Total:      len(in.Updates),
			Successful: successful,
			Failed:     failed,
		},
	}, nil
}

func (uc *BulkStockUseCase) applyOne(ctx context.Context, update dto.BulkStockUpdate) dto.BulkStockResult {
	id := update.ID
	if id == "" {
		id = "unknown"
	}
	if update.ID == "" || update.Stock == nil {
		return dto.BulkStockResult{ID: id, Success: false, Error: "ID o stock faltante"}
	}
	if *update.Stock < 0 {
		return dto.BulkStockResult{ID: id, Success: false, Error: "el stock no puede ser negativo"}
	}

	updated, err := uc.capRepo.UpdateStock(ctx, update.ID, *update.Stock)
	if err != nil {
		return dto.BulkStockResult{ID: id, Success: false, Error: err.Error()}
	}
	if updated == nil {
		return dto.BulkStockResult{ID: id, Success: false, Error: "gorra no encontrada"}
	}

	item := dto.CapResponse{
		ID:          updated.Cap.ID.Hex(),
		Name:        updated.Cap.Name,
		Price:       updated.Cap.Price,
		Image:       updated.Cap.Image,
		Description: updated.Cap.Description,
		CategoryID:  updated.Cap.CategoryID.Hex(),
		Stock:       updated.Cap.Stock,
		Size:        updated.Cap.Size,
		Material:    updated.Cap.Material,
		CreatedAt:   updated.Cap.CreatedAt,
		UpdatedAt:   updated.Cap.UpdatedAt,
	}
	if updated.Category != nil {
		item.Category = &dto.CategoryRefDTO{
			Name:   updated.Category.Name,
			League: updated.Category.League,
			Logo:   updated.Category.Logo,
		}
	}
	return dto.BulkStockResult{ID: update.ID, Success: true, Cap: &item}
}
