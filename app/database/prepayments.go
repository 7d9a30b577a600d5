package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Masood-zone/CMS--full/app/models"
)

func scanPrepayment(row interface {
	Scan(dest ...interface{}) error
}, withNames bool) (*models.Prepayment, error) {
	p := &models.Prepayment{}
	dest := []interface{}{
		&p.ID, &p.StudentID, &p.ClassID, &p.Amount, &p.StartDate, &p.EndDate,
		&p.NumberOfDays, &p.PerDayAmount, &p.CreatedAt, &p.UpdatedAt,
	}
	var studentName, className string
	if withNames {
		dest = append(dest, &studentName, &className)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if withNames {
		p.Student = &models.Student{ID: p.StudentID, Name: studentName}
		p.Class = &models.Class{ID: p.ClassID, Name: className}
	}
	return p, nil
}

const prepaymentColumns = `p.id, p.student_id, p.class_id, p.amount, p.start_date, p.end_date,
			  p.number_of_days, p.per_day_amount, p.created_at, p.updated_at`

func queryPrepayments(db *sql.DB, query string, args ...interface{}) ([]*models.Prepayment, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prepayments []*models.Prepayment
	for rows.Next() {
		p, err := scanPrepayment(rows, true)
		if err != nil {
			return nil, err
		}
		prepayments = append(prepayments, p)
	}
	return prepayments, rows.Err()
}

// GetAllPrepayments retrieves every prepayment with student and class names
func GetAllPrepayments(db *sql.DB) ([]*models.Prepayment, error) {
	query := `SELECT ` + prepaymentColumns + `, s.name, c.name
			  FROM prepayments p
			  JOIN students s ON s.id = p.student_id
			  JOIN classes c ON c.id = p.class_id
			  ORDER BY p.start_date DESC`
	return queryPrepayments(db, query)
}

// GetPrepaymentsByClass retrieves the prepayments of one class's students
func GetPrepaymentsByClass(db *sql.DB, classID string) ([]*models.Prepayment, error) {
	query := `SELECT ` + prepaymentColumns + `, s.name, c.name
			  FROM prepayments p
			  JOIN students s ON s.id = p.student_id
			  JOIN classes c ON c.id = p.class_id
			  WHERE p.class_id = $1
			  ORDER BY p.start_date DESC`
	return queryPrepayments(db, query, classID)
}

// GetPrepaymentsWithinRange lists prepayments whose start AND end dates
// both fall inside [start, end]. This is a strict containment test, not
// interval overlap: reporting asks for windows entirely inside the range.
func GetPrepaymentsWithinRange(db *sql.DB, start, end time.Time) ([]*models.Prepayment, error) {
	query := `SELECT ` + prepaymentColumns + `, s.name, c.name
			  FROM prepayments p
			  JOIN students s ON s.id = p.student_id
			  JOIN classes c ON c.id = p.class_id
			  WHERE p.start_date BETWEEN $1 AND $2
			  AND p.end_date BETWEEN $1 AND $2
			  ORDER BY p.start_date ASC`
	return queryPrepayments(db, query, start, end)
}

// GetActivePrepayments finds prepayments whose window contains date,
// restricted to the given students.
func GetActivePrepayments(db *sql.DB, date time.Time, studentIDs []string) ([]*models.Prepayment, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + prepaymentColumns + `
			  FROM prepayments p
			  WHERE p.start_date <= $1 AND p.end_date >= $1
			  AND p.student_id = ANY($2)
			  ORDER BY p.created_at ASC`
	rows, err := db.Query(query, date, pq.Array(studentIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prepayments []*models.Prepayment
	for rows.Next() {
		p, err := scanPrepayment(rows, false)
		if err != nil {
			return nil, err
		}
		prepayments = append(prepayments, p)
	}
	return prepayments, rows.Err()
}

// GetPrepaymentByID returns (nil, nil) when the prepayment does not exist.
func GetPrepaymentByID(db *sql.DB, id string) (*models.Prepayment, error) {
	query := `SELECT p.id, p.student_id, p.class_id, p.amount, p.start_date, p.end_date,
			  p.number_of_days, p.per_day_amount, p.created_at, p.updated_at
			  FROM prepayments p WHERE p.id = $1`
	p, err := scanPrepayment(db.QueryRow(query, id), false)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

func CreatePrepayment(db *sql.DB, p *models.Prepayment) error {
	query := `INSERT INTO prepayments (student_id, class_id, amount, start_date, end_date, number_of_days, per_day_amount)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, p.StudentID, p.ClassID, p.Amount, p.StartDate, p.EndDate,
		p.NumberOfDays, p.PerDayAmount).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create prepayment: %v", err)
	}
	return nil
}

func UpdatePrepayment(db *sql.DB, p *models.Prepayment) error {
	query := `UPDATE prepayments SET amount = $1, start_date = $2, end_date = $3,
			  number_of_days = $4, per_day_amount = $5, updated_at = NOW()
			  WHERE id = $6
			  RETURNING updated_at`
	return db.QueryRow(query, p.Amount, p.StartDate, p.EndDate,
		p.NumberOfDays, p.PerDayAmount, p.ID).Scan(&p.UpdatedAt)
}

func DeletePrepayment(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM prepayments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
