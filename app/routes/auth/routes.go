package auth

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Masood-zone/CMS--full/app/models"
)

func SetupAuthRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/auth")
	api.Post("/login", func(c *fiber.Ctx) error { return LoginAPI(c, db) })
	api.Post("/signup", func(c *fiber.Ctx) error { return SignupAPI(c, db) })
	api.Post("/logout", AuthMiddleware, func(c *fiber.Ctx) error { return LogoutAPI(c, db) })
	api.Get("/me", AuthMiddleware, func(c *fiber.Ctx) error { return MeAPI(c, db) })
	api.Put("/password", AuthMiddleware, func(c *fiber.Ctx) error { return ChangePasswordAPI(c, db) })
}

// AuthMiddleware validates the bearer token and places the acting user's
// identity in the request locals. Handlers downstream trust these values.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}
	if tokenString == "" {
		tokenString = c.Cookies("jwt_token")
	}
	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_role", string(claims.Role))
	c.Locals("user", &models.User{
		ID:       claims.UserID,
		Email:    claims.Email,
		Name:     claims.Name,
		Role:     claims.Role,
		IsActive: true,
	})
	return c.Next()
}

// AdminID extracts the acting administrator's id set by AuthMiddleware.
func AdminID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}
