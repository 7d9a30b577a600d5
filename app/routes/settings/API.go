package settings

import (
	"database/sql"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Masood-zone/CMS--full/app/database"
	"github.com/Masood-zone/CMS--full/app/models"
)

var validate = validator.New()

// GetAmountAPI returns the standing daily canteen fee. A fee that was
// never configured reads as zero rather than an error.
func GetAmountAPI(c *fiber.Ctx, db *sql.DB) error {
	value, err := database.GetSettingValue(db, models.SettingAmount)
	if err != nil {
		log.Printf("Failed to fetch settings amount: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching settings"})
	}

	amount := 0
	if value != "" {
		amount, err = strconv.Atoi(value)
		if err != nil {
			log.Printf("Malformed settings amount %q, treating as 0", value)
			amount = 0
		}
	}
	return c.JSON(fiber.Map{"name": models.SettingAmount, "value": amount})
}

type UpdateAmountRequest struct {
	Value int `json:"value" validate:"gte=0"`
}

func UpdateAmountAPI(c *fiber.Ctx, db *sql.DB) error {
	var req UpdateAmountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	setting, err := database.UpsertSetting(db, models.SettingAmount, strconv.Itoa(req.Value))
	if err != nil {
		log.Printf("Failed to update settings amount: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error updating settings"})
	}
	return c.JSON(fiber.Map{"name": setting.Name, "value": req.Value})
}
