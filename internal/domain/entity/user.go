package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role nivel de autorización de un usuario. Hoy solo existe "admin", pero se
// modela como tipo propio para evitar comparaciones de strings sueltas cuando
// se agreguen más roles.
type Role string

const (
	RoleAdmin Role = "admin"
)

// Valid indica si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	return r == RoleAdmin
}

// User representa un administrador de la tienda.
// PasswordHash es bcrypt; nunca se persiste ni se responde en plano.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"` // único (índice en la colección)
	PasswordHash string             `bson:"password"`
	Role         Role               `bson:"role"`
	IsActive     bool               `bson:"isActive"`
	LastLogin    *time.Time         `bson:"lastLogin,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}
