package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"founderhub/docs"
)

// SwaggerDocs serves the Swagger UI and document. host is written into the
// document once, before any request; an empty host makes the UI call the
// origin it was loaded from.
func SwaggerDocs(host string, schemes ...string) fiber.Handler {
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.Schemes = append([]string{}, schemes...)
	return swagger.HandlerDefault
}
