package classes

import (
	"database/sql"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Masood-zone/CMS--full/app/database"
	"github.com/Masood-zone/CMS--full/app/models"
)

var validate = validator.New()

func GetAllClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classes, err := database.GetAllClasses(db)
	if err != nil {
		log.Printf("Failed to fetch classes: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching classes"})
	}
	if classes == nil {
		classes = []*models.Class{}
	}
	return c.JSON(classes)
}

func GetClassByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	class, err := database.GetClassByID(db, c.Params("id"))
	if err != nil {
		log.Printf("Failed to fetch class: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching class"})
	}
	if class == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}
	return c.JSON(class)
}

type ClassRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	SupervisorID *string `json:"supervisor_id" validate:"omitempty,uuid"`
}

func CreateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	class := &models.Class{
		Name:         req.Name,
		Description:  req.Description,
		SupervisorID: req.SupervisorID,
	}
	if err := database.CreateClass(db, class); err != nil {
		log.Printf("Failed to create class: %v", err)
		return c.Status(400).JSON(fiber.Map{"error": "Error creating class"})
	}
	return c.Status(201).JSON(class)
}

func UpdateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	class := &models.Class{
		ID:           c.Params("id"),
		Name:         req.Name,
		Description:  req.Description,
		SupervisorID: req.SupervisorID,
	}
	err := database.UpdateClass(db, class)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}
	if err != nil {
		log.Printf("Failed to update class: %v", err)
		return c.Status(400).JSON(fiber.Map{"error": "Error updating class"})
	}
	return c.JSON(class)
}

func DeleteClassAPI(c *fiber.Ctx, db *sql.DB) error {
	err := database.DeleteClass(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}
	if err != nil {
		log.Printf("Failed to delete class: %v", err)
		return c.Status(400).JSON(fiber.Map{"error": "Error deleting class"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func GetClassBySupervisorAPI(c *fiber.Ctx, db *sql.DB) error {
	class, err := database.GetClassBySupervisor(db, c.Params("id"))
	if err != nil {
		log.Printf("Failed to fetch class by supervisor: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching class by supervisor"})
	}
	return c.JSON(fiber.Map{"supervisor": class})
}
