package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/rrcaps-api/internal/domain"
	"github.com/jhoicas/rrcaps-api/internal/domain/entity"
	"github.com/jhoicas/rrcaps-api/internal/domain/repository"
)

var _ repository.CapRepository = (*CapRepo)(nil)

// CapRepo implementación del puerto CapRepository sobre MongoDB.
type CapRepo struct {
	caps       *mongo.Collection
	categories *mongo.Collection
}

// NewCapRepository construye el adaptador de persistencia para gorras.
func NewCapRepository(db *mongo.Database) *CapRepo {
	return &CapRepo{
		caps:       db.Collection(CapsCollection),
		categories: db.Collection(CategoriesCollection),
	}
}

// capWithCategoryDoc documento que sale del pipeline con lookup.
type capWithCategoryDoc struct {
	entity.Cap   `bson:",inline"`
	CategoryInfo *categoryRefDoc `bson:"categoryInfo,omitempty"`
}

type categoryRefDoc struct {
	ID     primitive.ObjectID `bson:"_id"`
	Name   string             `bson:"name"`
	League string             `bson:"league"`
	Logo   string             `bson:"logo,omitempty"`
}

// List devuelve gorras filtradas/ordenadas, enriquecidas con el resumen de
// su categoría vía $lookup.
func (r *CapRepo) List(ctx context.Context, filter repository.CapFilter) ([]repository.CapWithCategory, error) {
	pipeline := capLookupPipeline(buildCapFilter(filter), buildCapSort(filter.SortBy, filter.SortDir), 0)
	return r.aggregateCaps(ctx, pipeline)
}

// GetByID devuelve la gorra con su categoría completa, o (nil, nil) si no
// existe. Un hex inválido se trata como "no existe" (los IDs son opacos).
func (r *CapRepo) GetByID(ctx context.Context, id string) (*repository.CapDetail, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var c entity.Cap
	if err := r.caps.FindOne(ctx, bson.M{"_id": oid}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cap by id: %w", err)
	}
	detail := &repository.CapDetail{Cap: c}

	var category entity.Category
	err = r.categories.FindOne(ctx, bson.M{"_id": c.CategoryID}).Decode(&category)
	switch {
	case err == nil:
		detail.Category = &category
	case errors.Is(err, mongo.ErrNoDocuments):
		// categoría borrada después de crear la gorra; se devuelve sin join
	default:
		return nil, fmt.Errorf("get cap category: %w", err)
	}
	return detail, nil
}

// ListByCategory devuelve las gorras de una categoría.
func (r *CapRepo) ListByCategory(ctx context.Context, categoryID string) ([]repository.CapWithCategory, error) {
	oid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return []repository.CapWithCategory{}, nil
	}
	pipeline := capLookupPipeline(bson.M{"category": oid}, bson.D{{Key: "name", Value: 1}}, 0)
	return r.aggregateCaps(ctx, pipeline)
}

// CountByCategory cuenta las gorras que referencian una categoría (guardia de
// integridad referencial del borrado de categorías).
func (r *CapRepo) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return 0, nil
	}
	n, err := r.caps.CountDocuments(ctx, bson.M{"category": oid})
	if err != nil {
		return 0, fmt.Errorf("count caps by category: %w", err)
	}
	return n, nil
}

// Create inserta una gorra y devuelve el ID generado por el store.
func (r *CapRepo) Create(ctx context.Context, c *entity.Cap) (string, error) {
	res, err := r.caps.InsertOne(ctx, c)
	if err != nil {
		return "", fmt.Errorf("insert cap: %w", err)
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// Update reemplaza el documento completo de la gorra.
func (r *CapRepo) Update(ctx context.Context, c *entity.Cap) error {
	res, err := r.caps.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return fmt.Errorf("update cap: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock fija el stock de una gorra y devuelve el documento actualizado
// con el resumen de su categoría, o (nil, nil) si la gorra no existe.
func (r *CapRepo) UpdateStock(ctx context.Context, id string, stock int) (*repository.CapWithCategory, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	after := options.After
	var c entity.Cap
	err = r.caps.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"stock": stock, "updatedAt": time.Now()}},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after},
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update cap stock: %w", err)
	}

	out := &repository.CapWithCategory{Cap: c}
	var ref categoryRefDoc
	err = r.categories.FindOne(ctx, bson.M{"_id": c.CategoryID},
		options.FindOne().SetProjection(bson.M{"name": 1, "league": 1, "logo": 1}),
	).Decode(&ref)
	if err == nil {
		out.Category = &repository.CategoryRef{
			ID:     ref.ID.Hex(),
			Name:   ref.Name,
			League: ref.League,
			Logo:   ref.Logo,
		}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update cap stock: categoría: %w", err)
	}
	return out, nil
}

// Delete elimina una gorra. Devuelve ErrNotFound si no existe.
func (r *CapRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.caps.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete cap: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// aggregateCaps corre un pipeline sobre caps y decodifica a CapWithCategory.
func (r *CapRepo) aggregateCaps(ctx context.Context, pipeline mongo.Pipeline) ([]repository.CapWithCategory, error) {
	cur, err := r.caps.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate caps: %w", err)
	}
	defer cur.Close(ctx)

	var docs []capWithCategoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode caps: %w", err)
	}

	out := make([]repository.CapWithCategory, 0, len(docs))
	for _, doc := range docs {
		item := repository.CapWithCategory{Cap: doc.Cap}
		if doc.CategoryInfo != nil {
			item.Category = &repository.CategoryRef{
				ID:     doc.CategoryInfo.ID.Hex(),
				Name:   doc.CategoryInfo.Name,
				League: doc.CategoryInfo.League,
				Logo:   doc.CategoryInfo.Logo,
			}
		}
		out = append(out, item)
	}
	return out, nil
}
