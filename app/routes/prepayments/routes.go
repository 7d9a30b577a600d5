package prepayments

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Masood-zone/CMS--full/app/canteen"
	"github.com/Masood-zone/CMS--full/app/database"
	"github.com/Masood-zone/CMS--full/app/routes/auth"
)

func SetupPrepaymentsRoutes(app *fiber.App, db *sql.DB) {
	ledger := canteen.NewLedger(database.NewStore(db))

	api := app.Group("/api/prepayments")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetAllPrepaymentsAPI(c, db) })
	api.Get("/range", func(c *fiber.Ctx) error { return GetPrepaymentsWithinRangeAPI(c, db) })
	api.Get("/class/:classId", func(c *fiber.Ctx) error { return GetPrepaymentsByClassAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreatePrepaymentAPI(c, ledger) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdatePrepaymentAPI(c, ledger) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeletePrepaymentAPI(c, ledger) })
}
