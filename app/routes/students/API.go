package students

import (
	"database/sql"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Masood-zone/CMS--full/app/database"
	"github.com/Masood-zone/CMS--full/app/models"
)

var validate = validator.New()

func GetAllStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetAllStudents(db)
	if err != nil {
		log.Printf("Failed to fetch students: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching students"})
	}
	if students == nil {
		students = []*models.Student{}
	}
	return c.JSON(students)
}

func GetStudentsByClassAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetStudentsByClass(db, c.Params("classId"))
	if err != nil {
		log.Printf("Failed to fetch class students: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching students"})
	}
	if students == nil {
		students = []*models.Student{}
	}
	return c.JSON(students)
}

func GetStudentByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		log.Printf("Failed to fetch student: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Error fetching student"})
	}
	if student == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.JSON(student)
}

type StudentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Age         int     `json:"age" validate:"omitempty,gte=0"`
	Gender      string  `json:"gender" validate:"omitempty,oneof=male female other"`
	ParentPhone string  `json:"parent_phone"`
	ClassID     *string `json:"class_id" validate:"omitempty,uuid"`
}

func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := &models.Student{
		Name:        req.Name,
		Age:         req.Age,
		Gender:      models.Gender(req.Gender),
		ParentPhone: req.ParentPhone,
		ClassID:     req.ClassID,
	}
	if err := database.CreateStudent(db, student); err != nil {
		log.Printf("Failed to create student: %v", err)
		return c.Status(400).JSON(fiber.Map{"error": "Error creating student"})
	}
	return c.Status(201).JSON(student)
}

func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := &models.Student{
		ID:          c.Params("id"),
		Name:        req.Name,
		Age:         req.Age,
		Gender:      models.Gender(req.Gender),
		ParentPhone: req.ParentPhone,
		ClassID:     req.ClassID,
	}
	err := database.UpdateStudent(db, student)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		log.Printf("Failed to update student: %v", err)
		return c.Status(400).JSON(fiber.Map{"error": "Error updating student"})
	}
	return c.JSON(student)
}

func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	err := database.DeleteStudent(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		log.Printf("Failed to delete student: %v", err)
		return c.Status(400).JSON(fiber.Map{"error": "Error deleting student"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
