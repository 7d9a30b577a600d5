package database

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/Masood-zone/CMS--full/app/models"
)

// CountUsersByRole counts active users holding any of the given roles.
func CountUsersByRole(db *sql.DB, roles ...string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE role = ANY($1) AND is_active = true`
	err := db.QueryRow(query, pq.Array(roles)).Scan(&count)
	return count, err
}

func CountStudents(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&count)
	return count, err
}

func CountStudentsInClass(db *sql.DB, classID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE class_id = $1`, classID).Scan(&count)
	return count, err
}

func CountClasses(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM classes`).Scan(&count)
	return count, err
}

// SumAllRecordAmounts totals the amount column across every record ever
// created. Summing records rather than settings x headcount keeps the
// figure correct once prepayments introduce per-student variance.
func SumAllRecordAmounts(db *sql.DB) (float64, error) {
	var total float64
	err := db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM records`).Scan(&total)
	return total, err
}

// ClassDayTotals returns the paid and unpaid partitions of one class's
// records for a single day, counting only rows with a known submitter.
func ClassDayTotals(db *sql.DB, classID string, date time.Time) (paid, unpaid models.PartitionTotals, err error) {
	query := `SELECT
			  COUNT(*) FILTER (WHERE has_paid = true),
			  COALESCE(SUM(amount) FILTER (WHERE has_paid = true), 0),
			  COUNT(*) FILTER (WHERE has_paid = false),
			  COALESCE(SUM(amount) FILTER (WHERE has_paid = false), 0)
			  FROM records
			  WHERE class_id = $1 AND submited_at = $2 AND submited_by IS NOT NULL`
	err = db.QueryRow(query, classID, date).Scan(
		&paid.Count, &paid.Amount, &unpaid.Count, &unpaid.Amount,
	)
	return paid, unpaid, err
}

// DayPartitions splits one day's records into disjoint paid, unpaid and
// absent slices with their amount sums.
func DayPartitions(db *sql.DB, date time.Time) (paid, unpaid, absent models.PartitionTotals, err error) {
	query := `SELECT
			  COUNT(*) FILTER (WHERE has_paid = true AND is_absent = false),
			  COALESCE(SUM(amount) FILTER (WHERE has_paid = true AND is_absent = false), 0),
			  COUNT(*) FILTER (WHERE has_paid = false AND is_absent = false),
			  COALESCE(SUM(amount) FILTER (WHERE has_paid = false AND is_absent = false), 0),
			  COUNT(*) FILTER (WHERE is_absent = true),
			  COALESCE(SUM(amount) FILTER (WHERE is_absent = true), 0)
			  FROM records
			  WHERE submited_at = $1`
	err = db.QueryRow(query, date).Scan(
		&paid.Count, &paid.Amount,
		&unpaid.Count, &unpaid.Amount,
		&absent.Count, &absent.Amount,
	)
	return paid, unpaid, absent, err
}
