package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Masood-zone/CMS--full/app/models"
)

// ErrDuplicateRecord signals that a record for the same (student, date)
// pair already exists. Daily generation treats it as a skip, not a failure.
var ErrDuplicateRecord = errors.New("record already exists for student and date")

const uniqueViolation = "23505"

// InsertRecord attempts a plain insert keyed by (payed_by, submited_at).
// A unique violation comes back as ErrDuplicateRecord; the row is never
// overwritten.
func InsertRecord(db *sql.DB, rec *models.Record) error {
	query := `INSERT INTO records
			  (class_id, payed_by, submited_at, amount, has_paid, is_prepaid, is_absent, settings_amount, submited_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		rec.ClassID, rec.PayedBy, rec.SubmitedAt, rec.Amount,
		rec.HasPaid, rec.IsPrepaid, rec.IsAbsent, rec.SettingsAmount, rec.SubmitedBy,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("failed to insert record: %v", err)
	}
	return nil
}

// UpsertRecordsTx writes a batch of dictated records inside one
// transaction: each row is created or, when the (payed_by, submited_at)
// key already exists, overwritten with the dictated values. Either the
// whole batch commits or none of it does.
func UpsertRecordsTx(db *sql.DB, recs []*models.Record) ([]*models.Record, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `INSERT INTO records
			  (class_id, payed_by, submited_at, amount, has_paid, is_prepaid, is_absent, settings_amount, submited_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  ON CONFLICT (payed_by, submited_at)
			  DO UPDATE SET amount = EXCLUDED.amount,
							has_paid = EXCLUDED.has_paid,
							is_prepaid = EXCLUDED.is_prepaid,
							is_absent = EXCLUDED.is_absent,
							submited_by = EXCLUDED.submited_by,
							updated_at = NOW()
			  RETURNING id, created_at, updated_at, settings_amount`

	written := make([]*models.Record, 0, len(recs))
	for _, rec := range recs {
		row := tx.QueryRow(query,
			rec.ClassID, rec.PayedBy, rec.SubmitedAt, rec.Amount,
			rec.HasPaid, rec.IsPrepaid, rec.IsAbsent, rec.SettingsAmount, rec.SubmitedBy,
		)
		if err := row.Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt, &rec.SettingsAmount); err != nil {
			return nil, fmt.Errorf("failed to upsert record for student %s: %v", rec.PayedBy, err)
		}
		written = append(written, rec)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return written, nil
}

func scanRecordRow(rows *sql.Rows, withStudent bool) (*models.Record, error) {
	rec := &models.Record{}
	var submitedBy sql.NullString
	dest := []interface{}{
		&rec.ID, &rec.ClassID, &rec.PayedBy, &rec.SubmitedAt, &rec.Amount,
		&rec.HasPaid, &rec.IsPrepaid, &rec.IsAbsent, &rec.SettingsAmount,
		&submitedBy, &rec.CreatedAt, &rec.UpdatedAt,
	}
	var studentName, className string
	if withStudent {
		dest = append(dest, &studentName, &className)
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}
	rec.SubmitedBy = submitedBy.String
	if withStudent {
		rec.Student = &models.Student{ID: rec.PayedBy, Name: studentName}
		rec.Class = &models.Class{ID: rec.ClassID, Name: className}
	}
	return rec, nil
}

// GetAllRecords retrieves every record with its student and class names
func GetAllRecords(db *sql.DB) ([]*models.Record, error) {
	query := `SELECT r.id, r.class_id, r.payed_by, r.submited_at, r.amount,
			  r.has_paid, r.is_prepaid, r.is_absent, r.settings_amount,
			  r.submited_by, r.created_at, r.updated_at, s.name, c.name
			  FROM records r
			  JOIN students s ON s.id = r.payed_by
			  JOIN classes c ON c.id = r.class_id
			  ORDER BY r.submited_at DESC, s.name ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		rec, err := scanRecordRow(rows, true)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetRecordsByClassAndDate retrieves one class's records for a single day
func GetRecordsByClassAndDate(db *sql.DB, classID string, date time.Time) ([]*models.Record, error) {
	query := `SELECT r.id, r.class_id, r.payed_by, r.submited_at, r.amount,
			  r.has_paid, r.is_prepaid, r.is_absent, r.settings_amount,
			  r.submited_by, r.created_at, r.updated_at, s.name, c.name
			  FROM records r
			  JOIN students s ON s.id = r.payed_by
			  JOIN classes c ON c.id = r.class_id
			  WHERE r.class_id = $1 AND r.submited_at = $2
			  ORDER BY s.name ASC`
	rows, err := db.Query(query, classID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		rec, err := scanRecordRow(rows, true)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetRecordsByStudent retrieves one student's records, newest first
func GetRecordsByStudent(db *sql.DB, studentID string) ([]*models.Record, error) {
	query := `SELECT r.id, r.class_id, r.payed_by, r.submited_at, r.amount,
			  r.has_paid, r.is_prepaid, r.is_absent, r.settings_amount,
			  r.submited_by, r.created_at, r.updated_at
			  FROM records r
			  WHERE r.payed_by = $1
			  ORDER BY r.submited_at DESC`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		rec, err := scanRecordRow(rows, false)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// UpdateRecordStatus flips the paid/absent flags on an existing record.
func UpdateRecordStatus(db *sql.DB, recordID string, hasPaid, isAbsent bool) (*models.Record, error) {
	rec := &models.Record{ID: recordID, HasPaid: hasPaid, IsAbsent: isAbsent}
	var submitedBy sql.NullString
	query := `UPDATE records SET has_paid = $1, is_absent = $2, updated_at = NOW()
			  WHERE id = $3
			  RETURNING class_id, payed_by, submited_at, amount, is_prepaid, settings_amount, submited_by, created_at, updated_at`
	err := db.QueryRow(query, hasPaid, isAbsent, recordID).Scan(
		&rec.ClassID, &rec.PayedBy, &rec.SubmitedAt, &rec.Amount,
		&rec.IsPrepaid, &rec.SettingsAmount, &submitedBy, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.SubmitedBy = submitedBy.String
	return rec, nil
}

// UpdateRecord overwrites a record's mutable fields (direct admin edit).
func UpdateRecord(db *sql.DB, rec *models.Record) error {
	query := `UPDATE records SET class_id = $1, payed_by = $2, amount = $3,
			  has_paid = $4, is_prepaid = $5, is_absent = $6, submited_by = $7, updated_at = NOW()
			  WHERE id = $8
			  RETURNING submited_at, settings_amount, created_at, updated_at`
	err := db.QueryRow(query, rec.ClassID, rec.PayedBy, rec.Amount,
		rec.HasPaid, rec.IsPrepaid, rec.IsAbsent, rec.SubmitedBy, rec.ID).
		Scan(&rec.SubmitedAt, &rec.SettingsAmount, &rec.CreatedAt, &rec.UpdatedAt)
	return err
}

func DeleteRecord(db *sql.DB, recordID string) error {
	result, err := db.Exec(`DELETE FROM records WHERE id = $1`, recordID)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// RestampPrepaidRecords overwrites the amount and settings_amount of a
// student's prepaid records inside [start, end] with the new per-day
// amount. Paid/absent flags stay as dictated.
func RestampPrepaidRecords(db *sql.DB, studentID string, start, end time.Time, perDay float64) (int64, error) {
	query := `UPDATE records SET amount = $1, settings_amount = $1, updated_at = NOW()
			  WHERE payed_by = $2 AND is_prepaid = true
			  AND submited_at BETWEEN $3 AND $4`
	result, err := db.Exec(query, perDay, studentID, start, end)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// ResetPrepaidRecords reverts a student's prepaid records inside
// [start, end] but outside [keepStart, keepEnd] back to unpaid at the
// standing fee. Used when a prepayment window shrinks or moves.
func ResetPrepaidRecords(db *sql.DB, studentID string, start, end, keepStart, keepEnd time.Time, fee float64) (int64, error) {
	query := `UPDATE records SET amount = $1, settings_amount = $1,
			  is_prepaid = false, has_paid = false, updated_at = NOW()
			  WHERE payed_by = $2 AND is_prepaid = true
			  AND submited_at BETWEEN $3 AND $4
			  AND submited_at NOT BETWEEN $5 AND $6`
	result, err := db.Exec(query, fee, studentID, start, end, keepStart, keepEnd)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
