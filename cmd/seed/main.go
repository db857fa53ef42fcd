// seed puebla la base de datos con datos iniciales de la tienda: un usuario
// administrador, las categorías de equipos MLB y un catálogo pequeño de
// gorras de muestra.
//
// Uso: go run ./cmd/seed
// El admin y las categorías que ya existen se omiten; las gorras de muestra
// se insertan siempre.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/rrcaps-api/internal/domain/entity"
	"github.com/jhoicas/rrcaps-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/rrcaps-api/pkg/config"
)

const (
	adminEmail    = "admin@rrcaps.com"
	adminPassword = "admin123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		fail("conexión a MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		fail("creación de índices: %v", err)
	}

	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	capRepo := mongodb.NewCapRepository(db)

	// Admin inicial
	existing, err := userRepo.GetByEmail(ctx, adminEmail)
	if err != nil {
		fail("buscar admin: %v", err)
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			fail("hash de contraseña: %v", err)
		}
		now := time.Now().UTC()
		if err := userRepo.Create(ctx, &entity.User{
			Name:         "Administrador",
			Email:        adminEmail,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			fail("crear admin: %v", err)
		}
		fmt.Printf("admin creado: %s / %s\n", adminEmail, adminPassword)
	} else {
		fmt.Println("admin ya existe, omitido")
	}

	year := func(y int) *int { return &y }
	categories := []entity.Category{
		{Name: "New York Yankees", Description: "La franquicia más laureada de la MLB", League: entity.LeagueMLB, City: "New York", FoundedYear: year(1901), Colors: []string{"navy", "white"}},
		{Name: "Los Angeles Dodgers", Description: "Clásico de la Liga Nacional", League: entity.LeagueMLB, City: "Los Angeles", FoundedYear: year(1883), Colors: []string{"blue", "white"}},
		{Name: "Boston Red Sox", Description: "Rivales históricos del Bronx", League: entity.LeagueMLB, City: "Boston", FoundedYear: year(1901), Colors: []string{"red", "navy"}},
		{Name: "Chicago Cubs", Description: "Los osos del Wrigley Field", League: entity.LeagueMLB, City: "Chicago", FoundedYear: year(1876), Colors: []string{"royal", "red"}},
		{Name: "San Francisco Giants", Description: "Gigantes de la bahía", League: entity.LeagueMLB, City: "San Francisco", FoundedYear: year(1883), Colors: []string{"orange", "black"}},
	}

	categoryIDs := make(map[string]string, len(categories))
	for i := range categories {
		cat := &categories[i]
		found, err := categoryRepo.GetByName(ctx, cat.Name)
		if err != nil {
			fail("buscar categoría %q: %v", cat.Name, err)
		}
		if found != nil {
			categoryIDs[cat.Name] = found.ID.Hex()
			fmt.Printf("categoría %q ya existe, omitida\n", cat.Name)
			continue
		}
		now := time.Now().UTC()
		cat.CreatedAt = now
		cat.UpdatedAt = now
		id, err := categoryRepo.Create(ctx, cat)
		if err != nil {
			fail("crear categoría %q: %v", cat.Name, err)
		}
		categoryIDs[cat.Name] = id
		fmt.Printf("categoría creada: %s\n", cat.Name)
	}

	type seedCap struct {
		category string
		cap      entity.Cap
	}
	caps := []seedCap{
		{"New York Yankees", entity.Cap{Name: "Yankees Classic Navy", Description: "Gorra clásica azul marino con logo bordado", Price: 34.99, Size: entity.SizeAdjustable, Material: "Cotton", Stock: 25, Image: "https://cdn.rrcaps.com/caps/yankees-classic-navy.jpg"}},
		{"New York Yankees", entity.Cap{Name: "Yankees Snapback Gris", Description: "Snapback gris con visera plana", Price: 29.99, Size: entity.SizeM, Material: "Polyester", Stock: 12, Image: "https://cdn.rrcaps.com/caps/yankees-snapback-gris.jpg"}},
		{"Los Angeles Dodgers", entity.Cap{Name: "Dodgers Blue Crown", Description: "Azul Dodger con logo LA en blanco", Price: 32.99, Size: entity.SizeAdjustable, Material: "Cotton", Stock: 18, Image: "https://cdn.rrcaps.com/caps/dodgers-blue-crown.jpg"}},
		{"Boston Red Sox", entity.Cap{Name: "Red Sox Fenway Edition", Description: "Edición conmemorativa del Fenway Park", Price: 39.99, Size: entity.SizeL, Material: "Wool", Stock: 4, Image: "https://cdn.rrcaps.com/caps/redsox-fenway.jpg"}},
		{"Chicago Cubs", entity.Cap{Name: "Cubs Wrigley Classic", Description: "Azul real con la C roja tradicional", Price: 31.99, Size: entity.SizeAdjustable, Material: "Cotton", Stock: 0, Image: "https://cdn.rrcaps.com/caps/cubs-wrigley.jpg"}},
	}

	for _, sc := range caps {
		catID, ok := categoryIDs[sc.category]
		if !ok {
			fail("categoría %q sin id", sc.category)
		}
		oid, err := primitive.ObjectIDFromHex(catID)
		if err != nil {
			fail("id de categoría inválido %q: %v", catID, err)
		}
		c := sc.cap
		c.CategoryID = oid
		now := time.Now().UTC()
		c.CreatedAt = now
		c.UpdatedAt = now
		if _, err := capRepo.Create(ctx, &c); err != nil {
			fail("crear gorra %q: %v", c.Name, err)
		}
		fmt.Printf("gorra creada: %s\n", c.Name)
	}

	fmt.Println("seed completado")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
