package database

import (
	"database/sql"
	"time"

	"github.com/Masood-zone/CMS--full/app/models"
)

// Store adapts the query layer to the canteen service interfaces so the
// core takes an injected handle instead of reaching for a global.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) SettingValue(name string) (string, error) {
	return GetSettingValue(s.DB, name)
}

func (s *Store) ClassesWithStudents(classID string) ([]*models.Class, error) {
	return GetClassesWithStudents(s.DB, classID)
}

func (s *Store) ClassExists(classID string) (bool, error) {
	return ClassExists(s.DB, classID)
}

func (s *Store) AdminExists(userID string) (bool, error) {
	return UserExists(s.DB, userID)
}

func (s *Store) MissingStudents(ids []string) ([]string, error) {
	return MissingStudents(s.DB, ids)
}

func (s *Store) ActivePrepayments(date time.Time, studentIDs []string) ([]*models.Prepayment, error) {
	return GetActivePrepayments(s.DB, date, studentIDs)
}

func (s *Store) PrepaymentByID(id string) (*models.Prepayment, error) {
	return GetPrepaymentByID(s.DB, id)
}

func (s *Store) CreatePrepayment(p *models.Prepayment) error {
	return CreatePrepayment(s.DB, p)
}

func (s *Store) SavePrepayment(p *models.Prepayment) error {
	return UpdatePrepayment(s.DB, p)
}

func (s *Store) DeletePrepayment(id string) error {
	return DeletePrepayment(s.DB, id)
}

func (s *Store) RestampPrepaidRecords(studentID string, start, end time.Time, perDay float64) (int64, error) {
	return RestampPrepaidRecords(s.DB, studentID, start, end, perDay)
}

func (s *Store) ResetPrepaidRecords(studentID string, start, end, keepStart, keepEnd time.Time, fee float64) (int64, error) {
	return ResetPrepaidRecords(s.DB, studentID, start, end, keepStart, keepEnd, fee)
}

func (s *Store) InsertRecord(rec *models.Record) error {
	return InsertRecord(s.DB, rec)
}

func (s *Store) UpsertRecords(recs []*models.Record) ([]*models.Record, error) {
	return UpsertRecordsTx(s.DB, recs)
}

func (s *Store) CountUsersByRole(roles ...string) (int, error) {
	return CountUsersByRole(s.DB, roles...)
}

func (s *Store) CountStudents() (int, error) {
	return CountStudents(s.DB)
}

func (s *Store) CountStudentsInClass(classID string) (int, error) {
	return CountStudentsInClass(s.DB, classID)
}

func (s *Store) CountClasses() (int, error) {
	return CountClasses(s.DB)
}

func (s *Store) SumAllRecordAmounts() (float64, error) {
	return SumAllRecordAmounts(s.DB)
}

func (s *Store) ClassDayTotals(classID string, date time.Time) (paid, unpaid models.PartitionTotals, err error) {
	return ClassDayTotals(s.DB, classID, date)
}

func (s *Store) DayPartitions(date time.Time) (paid, unpaid, absent models.PartitionTotals, err error) {
	return DayPartitions(s.DB, date)
}
