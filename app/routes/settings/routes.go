package settings

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Masood-zone/CMS--full/app/routes/auth"
)

// SetupSettingsRoutes registers the canteen settings endpoints.
func SetupSettingsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)

	api.Get("/amount", func(c *fiber.Ctx) error { return GetAmountAPI(c, db) })
	api.Put("/amount", func(c *fiber.Ctx) error { return UpdateAmountAPI(c, db) })
}
