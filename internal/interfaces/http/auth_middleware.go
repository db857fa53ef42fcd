package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rrcaps-api/internal/application/dto"
	"github.com/jhoicas/rrcaps-api/internal/domain/entity"
	"github.com/jhoicas/rrcaps-api/pkg/jwt"
	"github.com/jhoicas/rrcaps-api/pkg/logger"
)

// Locals keys para el principal autenticado en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
	LocalName   = "name"
)

// principalResolver es el contrato mínimo que necesita el middleware para
// re-verificar al usuario del token contra la DB. Lo implementa
// *mongodb.UserRepo; el uso de interfaz evita acoplar el middleware al adaptador.
type principalResolver interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// RequireAdmin exige un Bearer Token JWT válido con rol admin.
//
// Cadena completa:
//  1. Extracción del header Authorization (ausente → 401).
//  2. Verificación de firma/expiración y del claim role == admin (rol
//     distinto → 403). Expirado e inválido se responden igual (401) pero se
//     registran distinto para operabilidad.
//  3. Re-resolución del usuario en DB: debe existir y estar activo (tokens
//     vigentes de cuentas desactivadas → 401).
//  4. Éxito: id/email/role/name quedan en c.Locals para los handlers.
func RequireAdmin(log *logger.Logger, jwtSecret string, users principalResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, errResp := extractClaims(c, jwtSecret)
		if errResp != nil {
			if errResp.Code == "TOKEN_EXPIRED" {
				log.Warn().Str("path", c.Path()).Msg("token expirado")
			} else {
				log.Warn().Str("path", c.Path()).Str("code", errResp.Code).Msg("token rechazado")
			}
			return c.Status(fiber.StatusUnauthorized).JSON(errResp)
		}

		if entity.Role(claims.Role) != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "se requieren permisos de administrador",
			})
		}

		user, err := users.GetByID(c.Context(), claims.UserID)
		if err != nil {
			log.Error().Err(err).Msg("verificación de usuario en middleware de auth")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code:    "INTERNAL",
				Message: "error interno del servidor",
			})
		}
		if user == nil || !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "usuario no encontrado o inactivo",
			})
		}

		attachPrincipal(c, claims)
		return c.Next()
	}
}

// OptionalAdmin variante no bloqueante para rutas que se comportan distinto
// para admins sin rechazar a los anónimos: cualquier fallo de extracción o
// verificación deja la request sin principal y continúa.
func OptionalAdmin(jwtSecret string, users principalResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, errResp := extractClaims(c, jwtSecret)
		if errResp != nil || entity.Role(claims.Role) != entity.RoleAdmin {
			return c.Next()
		}
		user, err := users.GetByID(c.Context(), claims.UserID)
		if err != nil || user == nil || !user.IsActive {
			return c.Next()
		}
		attachPrincipal(c, claims)
		return c.Next()
	}
}

// extractClaims saca el token del header Authorization y lo verifica.
// Devuelve (claims, nil) en éxito o (nil, respuesta de error) en fallo.
func extractClaims(c *fiber.Ctx, jwtSecret string) (*jwt.Claims, *dto.ErrorResponse) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return nil, &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"}
	}
	claims, err := jwt.Parse(jwtSecret, tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return nil, &dto.ErrorResponse{Code: "TOKEN_EXPIRED", Message: "token expirado, inicie sesión de nuevo"}
		}
		return nil, &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"}
	}
	return claims, nil
}

func attachPrincipal(c *fiber.Ctx, claims *jwt.Claims) {
	c.Locals(LocalUserID, claims.UserID)
	c.Locals(LocalEmail, claims.Email)
	c.Locals(LocalRole, claims.Role)
	c.Locals(LocalName, claims.Name)
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetEmail devuelve el email del principal autenticado.
func GetEmail(c *fiber.Ctx) string { return localString(c, LocalEmail) }

// GetRole devuelve el rol del principal autenticado.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetName devuelve el nombre del principal autenticado.
func GetName(c *fiber.Ctx) string { return localString(c, LocalName) }

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
