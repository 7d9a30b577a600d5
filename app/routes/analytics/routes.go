package analytics

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Masood-zone/CMS--full/app/canteen"
	"github.com/Masood-zone/CMS--full/app/database"
	"github.com/Masood-zone/CMS--full/app/routes/auth"
)

func SetupAnalyticsRoutes(app *fiber.App, db *sql.DB) {
	aggregator := canteen.NewAggregator(database.NewStore(db))

	api := app.Group("/api/analytics")
	api.Use(auth.AuthMiddleware)

	api.Get("/admin", func(c *fiber.Ctx) error { return GetAdminAnalyticsAPI(c, aggregator) })
	api.Get("/class/:classId", func(c *fiber.Ctx) error { return GetClassAnalyticsAPI(c, aggregator) })
	api.Get("/daily", func(c *fiber.Ctx) error { return GetDailyAnalyticsAPI(c, aggregator) })
}
