package canteen

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masood-zone/CMS--full/app/database"
	"github.com/Masood-zone/CMS--full/app/models"
)

// fakeStore is an in-memory Store. Records are keyed by (student, date)
// so the uniqueness the database enforces holds here too.
type fakeStore struct {
	settings map[string]string
	users    map[string]string // id -> role
	classes  []*models.Class
	students map[string]bool
	prepays  []*models.Prepayment
	records  map[string]*models.Record

	nextID int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		settings: map[string]string{},
		users:    map[string]string{},
		students: map[string]bool{},
		records:  map[string]*models.Record{},
	}
}

func (f *fakeStore) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func recordKey(studentID string, date time.Time) string {
	return studentID + "|" + date.Format("2006-01-02")
}

func (f *fakeStore) addClass(name string, studentIDs ...string) *models.Class {
	class := &models.Class{ID: f.id("class"), Name: name}
	for _, sid := range studentIDs {
		f.students[sid] = true
		class.Students = append(class.Students, &models.Student{ID: sid, Name: sid, ClassID: &class.ID})
	}
	f.classes = append(f.classes, class)
	return class
}

func (f *fakeStore) addAdmin(id string) {
	f.users[id] = string(models.Admin)
}

func (f *fakeStore) SettingValue(name string) (string, error) {
	return f.settings[name], nil
}

func (f *fakeStore) ClassesWithStudents(classID string) ([]*models.Class, error) {
	if classID == "" {
		return f.classes, nil
	}
	for _, class := range f.classes {
		if class.ID == classID {
			return []*models.Class{class}, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ClassExists(classID string) (bool, error) {
	for _, class := range f.classes {
		if class.ID == classID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) AdminExists(userID string) (bool, error) {
	_, ok := f.users[userID]
	return ok, nil
}

func (f *fakeStore) MissingStudents(ids []string) ([]string, error) {
	var missing []string
	for _, id := range ids {
		if !f.students[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (f *fakeStore) ActivePrepayments(date time.Time, studentIDs []string) ([]*models.Prepayment, error) {
	wanted := make(map[string]bool, len(studentIDs))
	for _, id := range studentIDs {
		wanted[id] = true
	}
	var active []*models.Prepayment
	for _, p := range f.prepays {
		if wanted[p.StudentID] && p.CoversDate(date) {
			active = append(active, p)
		}
	}
	return active, nil
}

func (f *fakeStore) PrepaymentByID(id string) (*models.Prepayment, error) {
	for _, p := range f.prepays {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreatePrepayment(p *models.Prepayment) error {
	p.ID = f.id("prepay")
	p.CreatedAt = time.Now()
	f.prepays = append(f.prepays, p)
	return nil
}

func (f *fakeStore) SavePrepayment(p *models.Prepayment) error {
	for i, existing := range f.prepays {
		if existing.ID == p.ID {
			f.prepays[i] = p
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeStore) DeletePrepayment(id string) error {
	for i, p := range f.prepays {
		if p.ID == id {
			f.prepays = append(f.prepays[:i], f.prepays[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func within(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

func (f *fakeStore) RestampPrepaidRecords(studentID string, start, end time.Time, perDay float64) (int64, error) {
	var n int64
	for _, rec := range f.records {
		if rec.PayedBy == studentID && rec.IsPrepaid && within(rec.SubmitedAt, start, end) {
			rec.Amount = perDay
			rec.SettingsAmount = perDay
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) ResetPrepaidRecords(studentID string, start, end, keepStart, keepEnd time.Time, fee float64) (int64, error) {
	var n int64
	for _, rec := range f.records {
		if rec.PayedBy == studentID && rec.IsPrepaid &&
			within(rec.SubmitedAt, start, end) && !within(rec.SubmitedAt, keepStart, keepEnd) {
			rec.Amount = fee
			rec.SettingsAmount = fee
			rec.IsPrepaid = false
			rec.HasPaid = false
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) InsertRecord(rec *models.Record) error {
	key := recordKey(rec.PayedBy, rec.SubmitedAt)
	if _, ok := f.records[key]; ok {
		return database.ErrDuplicateRecord
	}
	rec.ID = f.id("record")
	f.records[key] = rec
	return nil
}

func (f *fakeStore) UpsertRecords(recs []*models.Record) ([]*models.Record, error) {
	out := make([]*models.Record, 0, len(recs))
	for _, rec := range recs {
		key := recordKey(rec.PayedBy, rec.SubmitedAt)
		if existing, ok := f.records[key]; ok {
			existing.Amount = rec.Amount
			existing.HasPaid = rec.HasPaid
			existing.IsPrepaid = rec.IsPrepaid
			existing.IsAbsent = rec.IsAbsent
			existing.SubmitedBy = rec.SubmitedBy
			out = append(out, existing)
			continue
		}
		rec.ID = f.id("record")
		f.records[key] = rec
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeStore) CountUsersByRole(roles ...string) (int, error) {
	wanted := make(map[string]bool, len(roles))
	for _, r := range roles {
		wanted[r] = true
	}
	n := 0
	for _, role := range f.users {
		if wanted[role] {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountStudents() (int, error) {
	return len(f.students), nil
}

func (f *fakeStore) CountStudentsInClass(classID string) (int, error) {
	for _, class := range f.classes {
		if class.ID == classID {
			return len(class.Students), nil
		}
	}
	return 0, nil
}

func (f *fakeStore) CountClasses() (int, error) {
	return len(f.classes), nil
}

func (f *fakeStore) SumAllRecordAmounts() (float64, error) {
	var sum float64
	for _, rec := range f.records {
		sum += rec.Amount
	}
	return sum, nil
}

func (f *fakeStore) ClassDayTotals(classID string, date time.Time) (paid, unpaid models.PartitionTotals, err error) {
	for _, rec := range f.records {
		if rec.ClassID != classID || !rec.SubmitedAt.Equal(date) || rec.SubmitedBy == "" {
			continue
		}
		if rec.HasPaid {
			paid.Count++
			paid.Amount += rec.Amount
		} else {
			unpaid.Count++
			unpaid.Amount += rec.Amount
		}
	}
	return paid, unpaid, nil
}

func (f *fakeStore) DayPartitions(date time.Time) (paid, unpaid, absent models.PartitionTotals, err error) {
	for _, rec := range f.records {
		if !rec.SubmitedAt.Equal(date) {
			continue
		}
		switch {
		case rec.IsAbsent:
			absent.Count++
			absent.Amount += rec.Amount
		case rec.HasPaid:
			paid.Count++
			paid.Amount += rec.Amount
		default:
			unpaid.Count++
			unpaid.Amount += rec.Amount
		}
	}
	return paid, unpaid, absent, nil
}

var _ Store = (*fakeStore)(nil)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func recordFor(classID, studentID string, day time.Time) *models.Record {
	return &models.Record{
		ClassID:    classID,
		PayedBy:    studentID,
		SubmitedAt: day,
		SubmitedBy: "admin-1",
	}
}
