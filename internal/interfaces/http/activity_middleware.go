package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/rrcaps-api/pkg/logger"
)

// LogActivity decora operaciones mutantes de admin: deja correr el handler y,
// solo si la respuesta final quedó en el rango de éxito (200-299), emite una
// línea de log estructurada con el principal, la acción y un event id.
// No altera ni el cuerpo ni el estatus de la respuesta, y nunca loguea en
// respuestas fallidas. Debe usarse DESPUÉS de RequireAdmin (lee los locals).
func LogActivity(log *logger.Logger, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			// El error aún no pasó por el ErrorHandler; la operación no fue exitosa.
			return err
		}
		status := c.Response().StatusCode()
		if status < 200 || status >= 300 {
			return nil
		}
		log.Info().
			Str("event_id", uuid.NewString()).
			Str("admin", GetName(c)).
			Str("email", GetEmail(c)).
			Str("action", action).
			Int("status", status).
			Time("timestamp", time.Now()).
			Msg("actividad de admin")
		return nil
	}
}
