package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ligas válidas para Category.
const (
	LeagueMLB   = "MLB"
	LeagueNFL   = "NFL"
	LeagueNBA   = "NBA"
	LeagueNHL   = "NHL"
	LeagueOtros = "Otros"

	DefaultLeague = LeagueMLB

	// MinFoundedYear cota inferior de FoundedYear; la superior es el año actual.
	MinFoundedYear = 1800
)

// ValidLeague indica si la liga pertenece al conjunto permitido.
func ValidLeague(league string) bool {
	switch league {
	case LeagueMLB, LeagueNFL, LeagueNBA, LeagueNHL, LeagueOtros:
		return true
	}
	return false
}

// Category agrupa gorras por equipo/marca. Name es único (índice en la colección).
// La relación con Cap no es bidireccional: las gorras referencian a la categoría
// por ID y la relación se consulta, no se almacena.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Logo        string             `bson:"logo,omitempty"`
	League      string             `bson:"league"`
	FoundedYear *int               `bson:"foundedYear,omitempty"`
	City        string             `bson:"city,omitempty"`
	Colors      []string           `bson:"colors,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}
