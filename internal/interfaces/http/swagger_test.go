package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Almacen-api/internal/interfaces/http"
)

// Sin swagger.json generado la app debe arrancar igual, solo que sin /docs.
func TestMountSwagger_SinArchivoNoMonta(t *testing.T) {
	app := fiber.New()
	apphttp.MountSwagger(app, filepath.Join(t.TempDir(), "swagger.json"), "Test API")
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "las rutas normales siguen funcionando")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMountSwagger_ConArchivoSirveDocs(t *testing.T) {
	file := filepath.Join(t.TempDir(), "swagger.json")
	spec := `{"swagger":"2.0","info":{"title":"Test API","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(file, []byte(spec), 0o644))

	app := fiber.New()
	apphttp.MountSwagger(app, file, "Test API")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
