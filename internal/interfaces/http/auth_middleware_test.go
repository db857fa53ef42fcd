package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rrcaps-api/internal/domain/entity"
	apphttp "github.com/jhoicas/rrcaps-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/rrcaps-api/pkg/jwt"
	"github.com/jhoicas/rrcaps-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "64f0c2a9e1b2c3d4e5f60718"
	testEmail     = "admin@rrcaps.com"
	testName      = "Admin de Prueba"
	testIssuer    = "rrcaps-test"
	testExpHours  = 1
)

// fakeUserResolver simula la re-verificación del usuario contra la DB.
type fakeUserResolver struct {
	user *entity.User
	err  error
}

func (f *fakeUserResolver) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return f.user, f.err
}

func activeAdmin() *entity.User {
	return &entity.User{
		Name:     testName,
		Email:    testEmail,
		Role:     entity.RoleAdmin,
		IsActive: true,
	}
}

// buildTestApp construye una aplicación Fiber mínima con RequireAdmin y un
// handler dummy que expone los locals cargados por el middleware.
func buildTestApp(resolver *fakeUserResolver) *fiber.App {
	app := fiber.New()
	log := logger.NewWithWriter(io.Discard, "info")
	app.Get("/protected",
		apphttp.RequireAdmin(log, testJWTSecret, resolver),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":      true,
				"user_id": apphttp.GetUserID(c),
				"email":   apphttp.GetEmail(c),
				"role":    apphttp.GetRole(c),
				"name":    apphttp.GetName(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT firmado con el secret de test.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, role, testName, testIssuer, testExpHours)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

// Admin activo con token válido → 200 y los locals cargados.
func TestRequireAdmin_AdminActivoAccede(t *testing.T) {
	app := buildTestApp(&fakeUserResolver{user: activeAdmin()})
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testEmail, body["email"])
	assert.Equal(t, "admin", body["role"])
	assert.Equal(t, testName, body["name"])
}

// Sin header Authorization → 401 MISSING_TOKEN.
func TestRequireAdmin_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeUserResolver{user: activeAdmin()})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Header sin esquema Bearer → 401.
func TestRequireAdmin_EsquemaIncorrecto_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeUserResolver{user: activeAdmin()})
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token malformado → 401 INVALID_TOKEN.
func TestRequireAdmin_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeUserResolver{user: activeAdmin()})
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Token expirado → 401 con código TOKEN_EXPIRED (distinto de inválido).
func TestRequireAdmin_TokenExpirado_Retorna401ConCodigo(t *testing.T) {
	app := buildTestApp(&fakeUserResolver{user: activeAdmin()})
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, "admin", testName, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "TOKEN_EXPIRED",
		"la expiración debe distinguirse del token inválido")
}

// Token válido pero con otro rol → 403 FORBIDDEN.
func TestRequireAdmin_RolNoAdmin_Retorna403(t *testing.T) {
	app := buildTestApp(&fakeUserResolver{user: activeAdmin()})
	resp := doRequest(t, app, tokenForRole(t, "cliente"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Token admin válido pero el usuario ya no existe en DB → 401.
func TestRequireAdmin_UsuarioInexistente_Retorna401(t *testing.T) {
	app := buildTestApp(&fakeUserResolver{user: nil})
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token admin válido pero la cuenta fue desactivada → 401.
func TestRequireAdmin_UsuarioInactivo_Retorna401(t *testing.T) {
	inactive := activeAdmin()
	inactive.IsActive = false
	app := buildTestApp(&fakeUserResolver{user: inactive})
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests OptionalAdmin
// ──────────────────────────────────────────────────────────────────────────────

func buildOptionalApp(resolver *fakeUserResolver) *fiber.App {
	app := fiber.New()
	app.Get("/catalog",
		apphttp.OptionalAdmin(testJWTSecret, resolver),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
		},
	)
	return app
}

// Anónimo → pasa sin principal.
func TestOptionalAdmin_AnonimoPasa(t *testing.T) {
	app := buildOptionalApp(&fakeUserResolver{})
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body["user_id"])
}

// Token inválido → nunca rechaza, pasa sin principal.
func TestOptionalAdmin_TokenInvalidoPasaSinPrincipal(t *testing.T) {
	app := buildOptionalApp(&fakeUserResolver{user: activeAdmin()})
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	req.Header.Set("Authorization", "Bearer basura")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body["user_id"])
}

// Admin activo → pasa con principal adjunto.
func TestOptionalAdmin_AdminActivoConPrincipal(t *testing.T) {
	app := buildOptionalApp(&fakeUserResolver{user: activeAdmin()})
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests LogActivity
// ──────────────────────────────────────────────────────────────────────────────

// Respuesta 2xx → se emite exactamente una línea con la acción y un event_id.
func TestLogActivity_LogueaSoloEnExito(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info")

	app := fiber.New()
	app.Post("/caps",
		apphttp.LogActivity(log, "cap_create"),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
		},
	)

	req := httptest.NewRequest(http.MethodPost, "/caps", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry),
		"debe haberse emitido exactamente una línea JSON")
	assert.Equal(t, "cap_create", entry["action"])
	assert.NotEmpty(t, entry["event_id"])
	assert.EqualValues(t, http.StatusCreated, entry["status"])
}

// Respuesta no exitosa → no se loguea nada.
func TestLogActivity_NoLogueaEnFallo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info")

	app := fiber.New()
	app.Post("/caps",
		apphttp.LogActivity(log, "cap_create"),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"code": "VALIDATION"})
		},
	)

	req := httptest.NewRequest(http.MethodPost, "/caps", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, buf.String(), "una respuesta fallida no debe generar actividad")
}

// Error devuelto por el handler → se propaga y no se loguea.
func TestLogActivity_ErrorDelHandlerNoLoguea(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info")

	app := fiber.New()
	app.Post("/caps",
		apphttp.LogActivity(log, "cap_create"),
		func(c *fiber.Ctx) error {
			return fiber.ErrNotFound
		},
	)

	req := httptest.NewRequest(http.MethodPost, "/caps", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, buf.String())
}
