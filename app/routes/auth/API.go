package auth

import (
	"database/sql"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Masood-zone/CMS--full/app/database"
	"github.com/Masood-zone/CMS--full/app/models"
)

var validate = validator.New()

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"required,oneof=SUPER_ADMIN ADMIN TEACHER"`
	Gender   string `json:"gender" validate:"omitempty,oneof=male female other"`
}

func LoginAPI(c *fiber.Ctx, db *sql.DB) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := database.GetUserByEmail(db, req.Email)
	if err == sql.ErrNoRows {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid email or password"})
	}
	if err != nil {
		log.Printf("Login lookup failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	token, err := GenerateJWT(user)
	if err != nil {
		log.Printf("Failed to sign token: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}

	sessionID := GenerateSessionID()
	expiresAt := GetSessionExpiry()
	if err := database.CreateSession(db, sessionID, user.ID, expiresAt); err != nil {
		log.Printf("Failed to create session: %v", err)
	} else {
		c.Cookie(&fiber.Cookie{
			Name:     "session_id",
			Value:    sessionID,
			Expires:  expiresAt,
			HTTPOnly: true,
			SameSite: "Lax",
		})
	}
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	user.Password = ""
	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func SignupAPI(c *fiber.Ctx, db *sql.DB) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	user := &models.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     models.UserRole(req.Role),
		Gender:   models.Gender(req.Gender),
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Printf("Signup failed: %v", err)
		return c.Status(400).JSON(fiber.Map{"error": "Failed to create user"})
	}
	return c.Status(201).JSON(user)
}

func MeAPI(c *fiber.Ctx, db *sql.DB) error {
	userID := AdminID(c)
	user, err := database.GetUserByID(db, userID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.JSON(user)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func ChangePasswordAPI(c *fiber.Ctx, db *sql.DB) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	email, _ := c.Locals("user_email").(string)
	user, err := database.GetUserByEmail(db, email)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	if err != nil {
		log.Printf("Password change lookup failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
	if !CheckPasswordHash(req.OldPassword, user.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
	if err := database.UpdateUserPassword(db, user.ID, hashed); err != nil {
		log.Printf("Failed to update password: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}

func LogoutAPI(c *fiber.Ctx, db *sql.DB) error {
	if sessionID := c.Cookies("session_id"); sessionID != "" {
		if err := database.DeleteSession(db, sessionID); err != nil {
			log.Printf("Failed to delete session: %v", err)
		}
	}
	c.ClearCookie("jwt_token", "session_id")
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}
