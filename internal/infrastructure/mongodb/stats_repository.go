package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/rrcaps-api/internal/domain/entity"
	"github.com/jhoicas/rrcaps-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura: agregaciones del catálogo para
// estadísticas y dashboard.
type StatsRepo struct {
	caps       *mongo.Collection
	categories *mongo.Collection
	capRepo    *CapRepo
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(db *mongo.Database) *StatsRepo {
	return &StatsRepo{
		caps:       db.Collection(CapsCollection),
		categories: db.Collection(CategoriesCollection),
		capRepo:    NewCapRepository(db),
	}
}

// CountCaps cuenta todas las gorras.
func (r *StatsRepo) CountCaps(ctx context.Context) (int64, error) {
	n, err := r.caps.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count caps: %w", err)
	}
	return n, nil
}

// CountCategories cuenta todas las categorías.
func (r *StatsRepo) CountCategories(ctx context.Context) (int64, error) {
	n, err := r.categories.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

type categoryRollupDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	CategoryName string             `bson:"categoryName"`
	TotalCaps    int64              `bson:"totalCaps"`
	AvgPrice     float64            `bson:"avgPrice"`
	MinPrice     float64            `bson:"minPrice"`
	MaxPrice     float64            `bson:"maxPrice"`
	TotalStock   int64              `bson:"totalStock"`
}

// CapsByCategory agrupa el catálogo por categoría:
// lookup de la categoría, group con count/avg/min/max de precio y suma de
// stock, ordenado por cantidad de gorras descendente.
func (r *StatsRepo) CapsByCategory(ctx context.Context) ([]repository.CategoryRollup, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         CategoriesCollection,
			"localField":   "category",
			"foreignField": "_id",
			"as":           "categoryInfo",
		}}},
		bson.D{{Key: "$unwind", Value: "$categoryInfo"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":          "$category",
			"categoryName": bson.M{"$first": "$categoryInfo.name"},
			"totalCaps":    bson.M{"$sum": 1},
			"avgPrice":     bson.M{"$avg": "$price"},
			"minPrice":     bson.M{"$min": "$price"},
			"maxPrice":     bson.M{"$max": "$price"},
			"totalStock":   bson.M{"$sum": "$stock"},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "totalCaps", Value: -1}}}},
	}

	cur, err := r.caps.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("stats.CapsByCategory: %w", err)
	}
	defer cur.Close(ctx)

	var docs []categoryRollupDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("stats.CapsByCategory: decode: %w", err)
	}

	out := make([]repository.CategoryRollup, 0, len(docs))
	for _, d := range docs {
		out = append(out, repository.CategoryRollup{
			CategoryID:   d.ID.Hex(),
			CategoryName: d.CategoryName,
			TotalCaps:    d.TotalCaps,
			AvgPrice:     d.AvgPrice,
			MinPrice:     d.MinPrice,
			MaxPrice:     d.MaxPrice,
			TotalStock:   d.TotalStock,
		})
	}
	return out, nil
}

// GlobalPriceStats agrega avg/min/max de precio sobre todo el catálogo.
// Con catálogo vacío devuelve ceros, no error.
func (r *StatsRepo) GlobalPriceStats(ctx context.Context) (*repository.PriceStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":      nil,
			"avgPrice": bson.M{"$avg": "$price"},
			"minPrice": bson.M{"$min": "$price"},
			"maxPrice": bson.M{"$max": "$price"},
		}}},
	}
	cur, err := r.caps.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("stats.GlobalPriceStats: %w", err)
	}
	defer cur.Close(ctx)

	var docs []repository.PriceStats
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("stats.GlobalPriceStats: decode: %w", err)
	}
	if len(docs) == 0 {
		return &repository.PriceStats{}, nil
	}
	return &docs[0], nil
}

// LowStock gorras con 0 <= stock < threshold, orden stock ascendente.
// El umbral es estricto: stock == threshold queda fuera.
func (r *StatsRepo) LowStock(ctx context.Context, threshold int) ([]repository.CapWithCategory, error) {
	pipeline := capLookupPipeline(lowStockMatch(threshold), bson.D{{Key: "stock", Value: 1}}, 0)
	return r.capRepo.aggregateCaps(ctx, pipeline)
}

// OutOfStock gorras con stock exactamente 0, orden nombre ascendente.
func (r *StatsRepo) OutOfStock(ctx context.Context) ([]repository.CapWithCategory, error) {
	pipeline := capLookupPipeline(bson.M{"stock": 0}, bson.D{{Key: "name", Value: 1}}, 0)
	return r.capRepo.aggregateCaps(ctx, pipeline)
}

// RecentCaps últimas gorras actualizadas (dashboard).
func (r *StatsRepo) RecentCaps(ctx context.Context, limit int) ([]repository.CapWithCategory, error) {
	pipeline := capLookupPipeline(bson.M{}, bson.D{{Key: "updatedAt", Value: -1}}, int64(limit))
	return r.capRepo.aggregateCaps(ctx, pipeline)
}

// RecentCategories últimas categorías actualizadas (dashboard).
func (r *StatsRepo) RecentCategories(ctx context.Context, limit int) ([]entity.Category, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.categories.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("stats.RecentCategories: %w", err)
	}
	defer cur.Close(ctx)

	var categories []entity.Category
	if err := cur.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("stats.RecentCategories: decode: %w", err)
	}
	return categories, nil
}
