package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tallas válidas para Cap.
const (
	SizeS          = "S"
	SizeM          = "M"
	SizeL          = "L"
	SizeXL         = "XL"
	SizeAdjustable = "Adjustable"

	DefaultSize     = SizeAdjustable
	DefaultMaterial = "Cotton"
)

// ValidSize indica si la talla pertenece al conjunto permitido.
func ValidSize(size string) bool {
	switch size {
	case SizeS, SizeM, SizeL, SizeXL, SizeAdjustable:
		return true
	}
	return false
}

// Cap representa una gorra del catálogo.
// Invariantes: Price >= 0, Stock >= 0; CategoryID debe resolver a una Category
// existente al momento de escribir (no se protege contra un borrado concurrente
// de la categoría).
type Cap struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image,omitempty"`
	Description string             `bson:"description,omitempty"`
	CategoryID  primitive.ObjectID `bson:"category"`
	Stock       int                `bson:"stock"`
	Size        string             `bson:"size"`
	Material    string             `bson:"material"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}
