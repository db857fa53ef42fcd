package dto

// ErrorResponse cuerpo de error HTTP.
// Fields trae detalle campo a campo en errores de validación.
// Detail solo se llena fuera de producción (texto interno del error).
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Detail  string            `json:"detail,omitempty"`
}
