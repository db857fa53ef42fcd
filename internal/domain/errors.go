package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrWrongPassword     = errors.New("la contraseña actual es incorrecta")
)

// ValidationError agrupa fallos de validación por campo para que el handler
// pueda devolver detalle campo a campo. Error() se mantiene genérico.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error()
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError construye un ValidationError con un solo campo.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// ConflictError indica un borrado bloqueado por registros que referencian al
// recurso (guardia de integridad referencial en capa de aplicación).
type ConflictError struct {
	References int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("no se puede eliminar: tiene %d registro(s) asociado(s)", e.References)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
