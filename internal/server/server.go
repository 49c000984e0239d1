// Package server wires handlers, middleware, static files, and API documentation
// into a single fiber application.
package server

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humafiber"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/trentd187/fiber-starter/internal/config"
	"github.com/trentd187/fiber-starter/internal/handlers"
	"github.com/trentd187/fiber-starter/internal/middleware"
)

// API metadata published in the OpenAPI document.
const (
	Title       = "Fiber Starter API"
	Version     = "0.1.0"
	description = "A starter template API built with the Fiber web framework in Go"
	contactName = "API Support"
	contactURL  = "https://github.com/trentd187/fiber-starter"
)

// Documentation routes, served only when cfg.DocsEnabled is set.
const (
	OpenAPIPath = "/api-docs/openapi.json"
	DocsPath    = "/scalar"
)

// New builds the application. db is the shared pool; it is handed to the handlers
// once here and never looked up globally.
func New(cfg *config.Config, db *gorm.DB, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      Title,
		ErrorHandler: handlers.ErrorHandler,
		// StrictRouting off treats "/api/v1/health/" like "/api/v1/health".
		StrictRouting:         false,
		DisableStartupMessage: true,
	})

	middleware.Use(app, log)

	// Static assets with directory listings enabled.
	app.Static("/static", cfg.StaticDir, fiber.Static{Browse: true})
	app.Get("/favicon.ico", handlers.Favicon(cfg.FaviconFile))

	api := NewAPI(app)
	handlers.New(db).Register(api)

	if cfg.DocsEnabled {
		registerDocs(app, api)
	}

	return app
}

// NewAPI attaches a huma API to app. huma generates the OpenAPI document from the
// operations registered on it; the document and UI routes are mounted by registerDocs.
func NewAPI(app *fiber.App) huma.API {
	// Errors created by huma itself use the same {error, message} body as the handlers.
	// This must happen before any operation is registered, since huma derives the
	// documented error schema from it.
	huma.NewError = handlers.NewError

	hc := huma.DefaultConfig(Title, Version)
	hc.Info.Description = description
	hc.Info.Contact = &huma.Contact{Name: contactName, URL: contactURL}
	hc.Tags = []*huma.Tag{
		{Name: "health", Description: "Health check endpoints"},
		{Name: "database", Description: "Database demo endpoints"},
	}

	// Routes for the document and UI are registered by registerDocs instead.
	hc.OpenAPIPath = ""
	hc.DocsPath = ""
	hc.SchemasPath = ""
	// Drop the default hook that adds "$schema" links to every response body, so
	// bodies match the documented shapes exactly.
	hc.CreateHooks = nil
	hc.Transformers = nil

	return humafiber.New(app, hc)
}
