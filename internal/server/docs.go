package server

import (
	"html/template"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofiber/fiber/v2"
)

var scalarPage = template.Must(template.New("scalar").Parse(`<!doctype html>
<html>
  <head>
    <title>{{.Title}} Reference</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
  </head>
  <body>
    <script id="api-reference" data-url="{{.DocumentURL}}"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
  </body>
</html>
`))

// registerDocs serves the generated OpenAPI document and the Scalar UI that renders it.
func registerDocs(app *fiber.App, api huma.API) {
	app.Get(OpenAPIPath, func(c *fiber.Ctx) error {
		return c.JSON(api.OpenAPI())
	})

	var page strings.Builder
	if err := scalarPage.Execute(&page, struct{ Title, DocumentURL string }{Title, OpenAPIPath}); err != nil {
		panic(err)
	}
	html := page.String()

	app.Get(DocsPath, func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.SendString(html)
	})
}
