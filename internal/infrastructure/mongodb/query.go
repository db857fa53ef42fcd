package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/rrcaps-api/internal/domain/repository"
)

// containsRegex construye un regex de substring case-insensitive con el
// término escapado (la entrada viene del cliente, nunca se interpreta como
// patrón).
func containsRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// buildCapFilter traduce CapFilter a un filtro BSON.
//
// Reglas:
//   - name/material: substring case-insensitive.
//   - min/max price: un único rango inclusivo; el límite ausente queda abierto.
//   - Query: OR sobre name, description y material; cuando está presente el
//     filtro simple por name no se aplica (precedencia de la búsqueda).
//   - category: igualdad estricta por ObjectID; un hex inválido produce un
//     filtro imposible para que el resultado sea vacío, no un error.
func buildCapFilter(f repository.CapFilter) bson.M {
	filter := bson.M{}

	if f.Query != "" {
		re := containsRegex(f.Query)
		filter["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"description": re},
			bson.M{"material": re},
		}
	} else if f.Name != "" {
		filter["name"] = containsRegex(f.Name)
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		filter["price"] = price
	}

	if f.CategoryID != "" {
		oid, err := primitive.ObjectIDFromHex(f.CategoryID)
		if err != nil {
			filter["category"] = primitive.NilObjectID
		} else {
			filter["category"] = oid
		}
	}

	if f.Size != "" {
		filter["size"] = f.Size
	}
	if f.Material != "" {
		filter["material"] = containsRegex(f.Material)
	}

	return filter
}

// buildCapSort traduce sortBy/sortDir a una especificación de orden.
// "desc" mapea a descendente; cualquier otro valor (incluido vacío) a
// ascendente. Sin sortBy no hay orden garantizado (orden nativo del store).
func buildCapSort(sortBy, sortDir string) bson.D {
	if sortBy == "" {
		return nil
	}
	dir := 1
	if sortDir == "desc" {
		dir = -1
	}
	return bson.D{{Key: sortBy, Value: dir}}
}

// lowStockMatch filtra gorras con 0 <= stock < threshold. El límite superior
// es estricto: stock == threshold no cuenta como stock bajo.
func lowStockMatch(threshold int) bson.M {
	return bson.M{"stock": bson.M{"$lt": threshold, "$gte": 0}}
}

// capLookupPipeline arma el pipeline estándar de listado de gorras:
// match → sort opcional → limit opcional → lookup de la categoría proyectada.
func capLookupPipeline(match bson.M, sort bson.D, limit int64) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
	}
	if len(sort) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sort}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         CategoriesCollection,
			"localField":   "category",
			"foreignField": "_id",
			"as":           "categoryInfo",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$categoryInfo",
			"preserveNullAndEmptyArrays": true,
		}}},
	)
	return pipeline
}
