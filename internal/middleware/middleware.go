// Package middleware contains the HTTP middleware applied to every request.
// Middleware sits between the HTTP server and route handlers, making it the right
// place for cross-cutting concerns like logging, compression, and panic recovery.
package middleware

import (
	"bytes"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request id in both directions.
const RequestIDHeader = fiber.HeaderXRequestID

// accessLogFormat is the fiber logger template; one line per request.
const accessLogFormat = "${locals:requestid} ${status} ${latency} ${method} ${path}"

// Use installs the global middleware on app, outermost first:
//
//  1. recover   : turns handler panics into errors for the app's ErrorHandler
//  2. requestid : reuses an incoming X-Request-ID or assigns a new UUID
//  3. logger    : one access-log line per request, written through log
//  4. compress  : gzip/deflate/brotli according to Accept-Encoding
//  5. cors      : allow browser clients on other origins
func Use(app *fiber.App, log *slog.Logger) {
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Header:    RequestIDHeader,
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: accessLogFormat,
		Output: &accessLog{log: log},
	}))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(cors.New())
}

// accessLog adapts the fiber logger's io.Writer output to slog, so access lines
// follow the process log format (JSON in production).
type accessLog struct {
	log *slog.Logger
}

func (a *accessLog) Write(p []byte) (int, error) {
	a.log.Info("request", "access", string(bytes.TrimSpace(p)))
	return len(p), nil
}
