package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// MountSwagger registra la UI de swagger en /docs solo si el swagger.json
// generado existe: el middleware de contrib hace panic al montarse si el
// archivo falta, y el json no siempre se genera (swag init) antes de correr.
func MountSwagger(app *fiber.App, filePath, title string) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("swagger.json no encontrado, documentación deshabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
}
