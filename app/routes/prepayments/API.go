package prepayments

import (
	"database/sql"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Masood-zone/CMS--full/app/canteen"
	"github.com/Masood-zone/CMS--full/app/database"
	"github.com/Masood-zone/CMS--full/app/models"
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
		log.Printf("Prepayments request failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
}

func GetAllPrepaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	prepayments, err := database.GetAllPrepayments(db)
	if err != nil {
		return respondError(c, err)
	}
	if prepayments == nil {
		prepayments = []*models.Prepayment{}
	}
	return c.JSON(prepayments)
}

// GetPrepaymentsWithinRangeAPI lists prepayments entirely inside the
// reporting window given by ?start_date= and ?end_date=.
func GetPrepaymentsWithinRangeAPI(c *fiber.Ctx, db *sql.DB) error {
	start, err := canteen.ParseDate(c.Query("start_date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Start and end dates are required as YYYY-MM-DD"})
	}
	end, err := canteen.ParseDate(c.Query("end_date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Start and end dates are required as YYYY-MM-DD"})
	}

	prepayments, err := database.GetPrepaymentsWithinRange(db, start, end)
	if err != nil {
		return respondError(c, err)
	}
	if prepayments == nil {
		prepayments = []*models.Prepayment{}
	}
	return c.JSON(prepayments)
}

func GetPrepaymentsByClassAPI(c *fiber.Ctx, db *sql.DB) error {
	prepayments, err := database.GetPrepaymentsByClass(db, c.Params("classId"))
	if err != nil {
		return respondError(c, err)
	}
	if prepayments == nil {
		prepayments = []*models.Prepayment{}
	}
	return c.JSON(prepayments)
}

type CreatePrepaymentRequest struct {
	StudentID    string  `json:"student_id" validate:"required,uuid"`
	ClassID      string  `json:"class_id" validate:"required,uuid"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	StartDate    string  `json:"start_date" validate:"required"`
	EndDate      string  `json:"end_date" validate:"required"`
	NumberOfDays int     `json:"number_of_days"`
}

func CreatePrepaymentAPI(c *fiber.Ctx, ledger *canteen.Ledger) error {
	var req CreatePrepaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	start, err := canteen.ParseDate(req.StartDate)
	if err != nil {
		return respondError(c, err)
	}
	end, err := canteen.ParseDate(req.EndDate)
	if err != nil {
		return respondError(c, err)
	}

	prepayment, err := ledger.Create(canteen.CreatePrepaymentInput{
		StudentID:    req.StudentID,
		ClassID:      req.ClassID,
		Amount:       req.Amount,
		StartDate:    start,
		EndDate:      end,
		NumberOfDays: req.NumberOfDays,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(prepayment)
}

type UpdatePrepaymentRequest struct {
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	StartDate string  `json:"start_date" validate:"required"`
	EndDate   string  `json:"end_date" validate:"required"`
}

func UpdatePrepaymentAPI(c *fiber.Ctx, ledger *canteen.Ledger) error {
	var req UpdatePrepaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	start, err := canteen.ParseDate(req.StartDate)
	if err != nil {
		return respondError(c, err)
	}
	end, err := canteen.ParseDate(req.EndDate)
	if err != nil {
		return respondError(c, err)
	}

	prepayment, err := ledger.Update(c.Params("id"), req.Amount, start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(prepayment)
}

func DeletePrepaymentAPI(c *fiber.Ctx, ledger *canteen.Ledger) error {
	if err := ledger.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
