// Package mongodb implementa los puertos de persistencia sobre MongoDB.
// Colecciones: users, categories, caps. Los IDs son ObjectID generados por el
// store y viajan como strings hex opacos hacia afuera.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/rrcaps-api/pkg/config"
)

// Nombres de colecciones.
const (
	UsersCollection      = "users"
	CategoriesCollection = "categories"
	CapsCollection       = "caps"
)

// Connect abre la conexión, verifica con ping y devuelve client + database.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes crea los índices únicos que respaldan las reglas de unicidad
// del dominio: users.email y categories.name.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("índice users.email: %w", err)
	}

	_, err = db.Collection(CategoriesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("índice categories.name: %w", err)
	}

	// category no es único pero sí el filtro más frecuente del catálogo.
	_, err = db.Collection(CapsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("índice caps.category: %w", err)
	}
	return nil
}
