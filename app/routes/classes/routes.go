package classes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Masood-zone/CMS--full/app/routes/auth"
)

func SetupClassesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetAllClassesAPI(c, db) })
	api.Get("/supervisor/:id", func(c *fiber.Ctx) error { return GetClassBySupervisorAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetClassByIDAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateClassAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateClassAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteClassAPI(c, db) })
}
