package canteen

import (
	"time"

	"github.com/Masood-zone/CMS--full/app/models"
)

// Store is the persistence surface the canteen services depend on. The
// production implementation is database.Store; tests use an in-memory
// fake. InsertRecord must return database.ErrDuplicateRecord on a
// (student, date) uniqueness conflict, and UpsertRecords must apply the
// whole batch atomically.
type Store interface {
	SettingValue(name string) (string, error)

	ClassesWithStudents(classID string) ([]*models.Class, error)
	ClassExists(classID string) (bool, error)
	AdminExists(userID string) (bool, error)
	MissingStudents(ids []string) ([]string, error)

	ActivePrepayments(date time.Time, studentIDs []string) ([]*models.Prepayment, error)
	PrepaymentByID(id string) (*models.Prepayment, error)
	CreatePrepayment(p *models.Prepayment) error
	SavePrepayment(p *models.Prepayment) error
	DeletePrepayment(id string) error
	RestampPrepaidRecords(studentID string, start, end time.Time, perDay float64) (int64, error)
	ResetPrepaidRecords(studentID string, start, end, keepStart, keepEnd time.Time, fee float64) (int64, error)

	InsertRecord(rec *models.Record) error
	UpsertRecords(recs []*models.Record) ([]*models.Record, error)

	CountUsersByRole(roles ...string) (int, error)
	CountStudents() (int, error)
	CountStudentsInClass(classID string) (int, error)
	CountClasses() (int, error)
	SumAllRecordAmounts() (float64, error)
	ClassDayTotals(classID string, date time.Time) (paid, unpaid models.PartitionTotals, err error)
	DayPartitions(date time.Time) (paid, unpaid, absent models.PartitionTotals, err error)
}
