package docx

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterWithFiber serves the catalog as JSON from the given path
// so the reference is reachable from the running app.
func RegisterWithFiber(app *fiber.App, path string) {
	app.Get(path, func(c *fiber.Ctx) error {
		return c.JSON(Catalog())
	})
}
