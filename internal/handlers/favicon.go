package handlers

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/fiber-starter/internal/apperr"
)

// Favicon returns a handler for GET /favicon.ico that streams the file at path.
// A missing or unreadable file is reported through the error adapter as a 500,
// not a 404: the icon is part of the deployment, so its absence is a server fault.
func Favicon(path string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			err = errors.New(path + " is a directory")
		}
		if err != nil {
			return Respond(apperr.Wrap(apperr.KindInfrastructure, err, "failed to open favicon file"))
		}
		return c.SendFile(path)
	}
}
