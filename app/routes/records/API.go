package records

import (
	"database/sql"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Masood-zone/CMS--full/app/canteen"
	"github.com/Masood-zone/CMS--full/app/database"
	"github.com/Masood-zone/CMS--full/app/models"
	"github.com/Masood-zone/CMS--full/app/routes/auth"
)

var validate = validator.New()

func respondError(c *fiber.Ctx, err error) error {
	var vErr *canteen.ValidationError
	var nfErr *canteen.NotFoundError
	switch {
	case errors.As(err, &vErr):
		return c.Status(400).JSON(fiber.Map{"error": vErr.Message})
	case errors.As(err, &nfErr):
		return c.Status(404).JSON(fiber.Map{"error": nfErr.Error()})
	default:
		log.Printf("Records request failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
}

// GenerateRecordsAPI materializes the default records for one day,
// optionally scoped to a single class via ?class_id=.
func GenerateRecordsAPI(c *fiber.Ctx, reconciler *canteen.Reconciler) error {
	date, err := canteen.ParseDate(c.Params("date"))
	if err != nil {
		return respondError(c, err)
	}

	result, err := reconciler.GenerateDailyRecords(date, c.Query("class_id"), auth.AdminID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":         "Daily records generated successfully",
		"created_records": result.CreatedRecords,
		"skipped_records": result.SkippedRecords,
	})
}

type SubmitRecordsRequest struct {
	ClassID        string                  `json:"class_id" validate:"required,uuid"`
	Date           string                  `json:"date" validate:"required"`
	PaidStudents   []canteen.DictationItem `json:"paid_students" validate:"dive"`
	UnpaidStudents []canteen.DictationItem `json:"unpaid_students" validate:"dive"`
	AbsentStudents []canteen.DictationItem `json:"absent_students" validate:"dive"`
}

// SubmitAdminRecordAPI applies an administrator's paid/unpaid/absent
// dictation for one class and date.
func SubmitAdminRecordAPI(c *fiber.Ctx, reconciler *canteen.Reconciler) error {
	var req SubmitRecordsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := canteen.ParseDate(req.Date)
	if err != nil {
		return respondError(c, err)
	}

	entries := canteen.MergeDictation(req.PaidStudents, req.UnpaidStudents, req.AbsentStudents)
	written, err := reconciler.SubmitAdminRecord(req.ClassID, date, entries, auth.AdminID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(written)
}

func GetAllRecordsAPI(c *fiber.Ctx, db *sql.DB) error {
	records, err := database.GetAllRecords(db)
	if err != nil {
		return respondError(c, err)
	}
	if records == nil {
		records = []*models.Record{}
	}
	return c.JSON(records)
}

func GetRecordsByClassAndDateAPI(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Params("classId")
	date, err := canteen.ParseDate(c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}

	records, err := database.GetRecordsByClassAndDate(db, classID, date)
	if err != nil {
		return respondError(c, err)
	}
	if records == nil {
		records = []*models.Record{}
	}
	return c.JSON(records)
}

func GetStudentRecordsAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := database.GetStudentByID(db, c.Params("studentId"))
	if err != nil {
		return respondError(c, err)
	}
	if student == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	records, err := database.GetRecordsByStudent(db, student.ID)
	if err != nil {
		return respondError(c, err)
	}
	if records == nil {
		records = []*models.Record{}
	}
	return c.JSON(fiber.Map{
		"student": student,
		"records": records,
	})
}

type UpdateStatusRequest struct {
	HasPaid  *bool `json:"has_paid" validate:"required"`
	IsAbsent *bool `json:"is_absent" validate:"required"`
}

func UpdateRecordStatusAPI(c *fiber.Ctx, db *sql.DB) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Both has_paid and is_absent are required"})
	}

	rec, err := database.UpdateRecordStatus(db, c.Params("id"), *req.HasPaid, *req.IsAbsent)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Record not found"})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rec)
}

type UpdateRecordRequest struct {
	ClassID   string  `json:"class_id" validate:"required,uuid"`
	PayedBy   string  `json:"payed_by" validate:"required,uuid"`
	Amount    float64 `json:"amount"`
	HasPaid   bool    `json:"has_paid"`
	IsPrepaid bool    `json:"is_prepaid"`
	IsAbsent  bool    `json:"is_absent"`
}

func UpdateRecordAPI(c *fiber.Ctx, db *sql.DB) error {
	var req UpdateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	rec := &models.Record{
		ID:         c.Params("id"),
		ClassID:    req.ClassID,
		PayedBy:    req.PayedBy,
		Amount:     req.Amount,
		HasPaid:    req.HasPaid,
		IsPrepaid:  req.IsPrepaid,
		IsAbsent:   req.IsAbsent,
		SubmitedBy: auth.AdminID(c),
	}
	err := database.UpdateRecord(db, rec)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Record not found"})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rec)
}

func DeleteRecordAPI(c *fiber.Ctx, db *sql.DB) error {
	err := database.DeleteRecord(db, c.Params("id"))
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Record not found"})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
