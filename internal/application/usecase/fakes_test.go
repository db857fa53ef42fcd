package usecase_test

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/rrcaps-api/internal/domain/entity"
	"github.com/jhoicas/rrcaps-api/internal/domain/repository"
)

// Fakes de los puertos de persistencia basados en campos-función: cada test
// configura solo los métodos que su escenario toca.

type fakeCapRepo struct {
	ListFn            func(ctx context.Context, filter repository.CapFilter) ([]repository.CapWithCategory, error)
	GetByIDFn         func(ctx context.Context, id string) (*repository.CapDetail, error)
	ListByCategoryFn  func(ctx context.Context, categoryID string) ([]repository.CapWithCategory, error)
	CountByCategoryFn func(ctx context.Context, categoryID string) (int64, error)
	CreateFn          func(ctx context.Context, cap *entity.Cap) (string, error)
	UpdateFn          func(ctx context.Context, cap *entity.Cap) error
	UpdateStockFn     func(ctx context.Context, id string, stock int) (*repository.CapWithCategory, error)
	DeleteFn          func(ctx context.Context, id string) error
}

func (f *fakeCapRepo) List(ctx context.Context, filter repository.CapFilter) ([]repository.CapWithCategory, error) {
	return f.ListFn(ctx, filter)
}

func (f *fakeCapRepo) GetByID(ctx context.Context, id string) (*repository.CapDetail, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeCapRepo) ListByCategory(ctx context.Context, categoryID string) ([]repository.CapWithCategory, error) {
	return f.ListByCategoryFn(ctx, categoryID)
}

func (f *fakeCapRepo) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	return f.CountByCategoryFn(ctx, categoryID)
}

func (f *fakeCapRepo) Create(ctx context.Context, cap *entity.Cap) (string, error) {
	return f.CreateFn(ctx, cap)
}

func (f *fakeCapRepo) Update(ctx context.Context, cap *entity.Cap) error {
	return f.UpdateFn(ctx, cap)
}

func (f *fakeCapRepo) UpdateStock(ctx context.Context, id string, stock int) (*repository.CapWithCategory, error) {
	return f.UpdateStockFn(ctx, id, stock)
}

func (f *fakeCapRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type fakeCategoryRepo struct {
	ListFn      func(ctx context.Context, league string) ([]entity.Category, error)
	GetByIDFn   func(ctx context.Context, id string) (*entity.Category, error)
	GetByNameFn func(ctx context.Context, name string) (*entity.Category, error)
	CreateFn    func(ctx context.Context, category *entity.Category) (string, error)
	UpdateFn    func(ctx context.Context, category *entity.Category) error
	DeleteFn    func(ctx context.Context, id string) error
}

func (f *fakeCategoryRepo) List(ctx context.Context, league string) ([]entity.Category, error) {
	return f.ListFn(ctx, league)
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeCategoryRepo) GetByName(ctx context.Context, name string) (*entity.Category, error) {
	return f.GetByNameFn(ctx, name)
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) (string, error) {
	return f.CreateFn(ctx, category)
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	return f.UpdateFn(ctx, category)
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func newObjectID() primitive.ObjectID { return primitive.NewObjectID() }
