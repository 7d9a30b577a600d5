package records

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Masood-zone/CMS--full/app/canteen"
	"github.com/Masood-zone/CMS--full/app/database"
	"github.com/Masood-zone/CMS--full/app/routes/auth"
)

func SetupRecordsRoutes(app *fiber.App, db *sql.DB) {
	reconciler := canteen.NewReconciler(database.NewStore(db))

	api := app.Group("/api/records")
	api.Use(auth.AuthMiddleware)

	api.Post("/generate/:date", func(c *fiber.Ctx) error { return GenerateRecordsAPI(c, reconciler) })
	api.Post("/submit", func(c *fiber.Ctx) error { return SubmitAdminRecordAPI(c, reconciler) })
	api.Get("/", func(c *fiber.Ctx) error { return GetAllRecordsAPI(c, db) })
	api.Get("/class/:classId", func(c *fiber.Ctx) error { return GetRecordsByClassAndDateAPI(c, db) })
	api.Get("/student/:studentId", func(c *fiber.Ctx) error { return GetStudentRecordsAPI(c, db) })
	api.Put("/:id/status", func(c *fiber.Ctx) error { return UpdateRecordStatusAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateRecordAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteRecordAPI(c, db) })
}
