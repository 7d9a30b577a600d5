package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/Masood-zone/CMS--full/app/config"
	"github.com/Masood-zone/CMS--full/app/database"
	"github.com/Masood-zone/CMS--full/app/routes/analytics"
	"github.com/Masood-zone/CMS--full/app/routes/auth"
	"github.com/Masood-zone/CMS--full/app/routes/classes"
	"github.com/Masood-zone/CMS--full/app/routes/prepayments"
	"github.com/Masood-zone/CMS--full/app/routes/records"
	"github.com/Masood-zone/CMS--full/app/routes/settings"
	"github.com/Masood-zone/CMS--full/app/routes/students"
)

// customErrorHandler renders every unhandled error as JSON.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	db := config.GetDB()

	// Setup auth routes
	auth.SetupAuthRoutes(app, db)

	// Setup classes routes
	classes.SetupClassesRoutes(app, db)

	// Setup students routes
	students.SetupStudentsRoutes(app, db)

	// Setup settings routes
	settings.SetupSettingsRoutes(app, db)

	// Setup records routes
	records.SetupRecordsRoutes(app, db)

	// Setup prepayments routes
	prepayments.SetupPrepaymentsRoutes(app, db)

	// Setup analytics routes
	analytics.SetupAnalyticsRoutes(app, db)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Resource not found")
	})

	// Start server
	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
