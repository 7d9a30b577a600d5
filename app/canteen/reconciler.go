package canteen

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Masood-zone/CMS--full/app/database"
	"github.com/Masood-zone/CMS--full/app/models"
)

// Reconciler produces exactly one record per (student, date) and keeps
// it consistent with the standing fee and prepayment state. Generation
// only fills gaps; administrator dictation is the one path allowed to
// overwrite.
type Reconciler struct {
	store  Store
	ledger *Ledger
}

func NewReconciler(store Store) *Reconciler {
	return &Reconciler{store: store, ledger: NewLedger(store)}
}

// SkippedRecord reports one (student, date) pair that already had a
// record when generation ran.
type SkippedRecord struct {
	StudentID string `json:"student_id"`
	Date      string `json:"date"`
}

// GenerationResult summarizes one generation run.
type GenerationResult struct {
	CreatedRecords int             `json:"created_records"`
	SkippedRecords []SkippedRecord `json:"skipped_records"`
}

// GenerateDailyRecords materializes the default record for every student
// in scope on the given date. Students covered by an active prepayment
// start out paid at their per-day amount; everyone else starts unpaid at
// the standing fee. Existing records are skipped, never overwritten, so
// re-running for the same date is safe.
func (r *Reconciler) GenerateDailyRecords(date time.Time, classID, adminID string) (*GenerationResult, error) {
	day := DateOnly(date)

	exists, err := r.store.AdminExists(adminID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &NotFoundError{Resource: "admin", ID: adminID}
	}

	fee, err := standingFee(r.store)
	if err != nil {
		return nil, err
	}

	roster, err := r.store.ClassesWithStudents(classID)
	if err != nil {
		return nil, err
	}
	if classID != "" && len(roster) == 0 {
		return nil, &NotFoundError{Resource: "class", ID: classID}
	}

	var studentIDs []string
	for _, class := range roster {
		for _, student := range class.Students {
			studentIDs = append(studentIDs, student.ID)
		}
	}
	prepaid, err := r.ledger.ActiveOn(day, studentIDs)
	if err != nil {
		return nil, err
	}

	result := &GenerationResult{SkippedRecords: []SkippedRecord{}}
	for _, class := range roster {
		for _, student := range class.Students {
			rec := &models.Record{
				ClassID:        class.ID,
				PayedBy:        student.ID,
				SubmitedAt:     day,
				Amount:         fee,
				SettingsAmount: fee,
				SubmitedBy:     adminID,
			}
			if p, ok := prepaid[student.ID]; ok {
				rec.Amount = p.PerDayAmount
				rec.HasPaid = true
				rec.IsPrepaid = true
			}

			err := r.store.InsertRecord(rec)
			if errors.Is(err, database.ErrDuplicateRecord) {
				result.SkippedRecords = append(result.SkippedRecords, SkippedRecord{
					StudentID: student.ID,
					Date:      day.Format("2006-01-02"),
				})
				continue
			}
			if err != nil {
				return nil, err
			}
			result.CreatedRecords++
		}
	}

	log.Printf("Generated %d records for %s, skipped %d existing",
		result.CreatedRecords, day.Format("2006-01-02"), len(result.SkippedRecords))
	return result, nil
}

// DictationItem is one student's entry in an administrator submission.
// Paid students carry the charge in Amount; unpaid and absent students
// carry what they owe in AmountOwing.
type DictationItem struct {
	StudentID   string  `json:"student_id" validate:"required,uuid"`
	Amount      float64 `json:"amount"`
	AmountOwing float64 `json:"amount_owing"`
	HasPaid     bool    `json:"has_paid"`
}

// DictationEntry is the normalized form: one charge amount and the two
// flags, decided once at the boundary.
type DictationEntry struct {
	StudentID string
	Amount    float64
	HasPaid   bool
	IsAbsent  bool
}

// MergeDictation folds the three submission lists into one entry per
// student. A student duplicated across lists keeps the last list's
// amount and paid flag, but membership in the absent list always sets
// the absent flag. Items from the paid list are paid regardless of
// their own flag.
func MergeDictation(paid, unpaid, absent []DictationItem) []DictationEntry {
	index := make(map[string]int)
	var entries []DictationEntry

	apply := func(item DictationItem, hasPaid bool) {
		amount := item.Amount
		if amount == 0 {
			amount = item.AmountOwing
		}
		if i, ok := index[item.StudentID]; ok {
			entries[i].Amount = amount
			entries[i].HasPaid = hasPaid
			return
		}
		index[item.StudentID] = len(entries)
		entries = append(entries, DictationEntry{
			StudentID: item.StudentID,
			Amount:    amount,
			HasPaid:   hasPaid,
		})
	}

	for _, item := range paid {
		apply(item, true)
	}
	for _, item := range unpaid {
		apply(item, item.HasPaid)
	}
	for _, item := range absent {
		apply(item, item.HasPaid)
	}
	for _, item := range absent {
		if i, ok := index[item.StudentID]; ok {
			entries[i].IsAbsent = true
		}
	}
	return entries
}

// SubmitAdminRecord applies an administrator's paid/unpaid/absent
// dictation for one class and date. Validation fails fast before any
// write; an active prepayment overrides the dictated amount and forces
// paid status; the whole batch is written in a single transaction.
func (r *Reconciler) SubmitAdminRecord(classID string, date time.Time, entries []DictationEntry, adminID string) ([]*models.Record, error) {
	day := DateOnly(date)

	exists, err := r.store.ClassExists(classID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &NotFoundError{Resource: "class", ID: classID}
	}
	exists, err = r.store.AdminExists(adminID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &NotFoundError{Resource: "admin", ID: adminID}
	}

	studentIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		studentIDs = append(studentIDs, entry.StudentID)
	}
	missing, err := r.store.MissingStudents(studentIDs)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, &NotFoundError{Resource: "student", ID: strings.Join(missing, ", ")}
	}

	prepaid, err := r.ledger.ActiveOn(day, studentIDs)
	if err != nil {
		return nil, err
	}

	recs := make([]*models.Record, 0, len(entries))
	for _, entry := range entries {
		rec := &models.Record{
			ClassID:        classID,
			PayedBy:        entry.StudentID,
			SubmitedAt:     day,
			Amount:         entry.Amount,
			HasPaid:        entry.HasPaid,
			IsAbsent:       entry.IsAbsent,
			SettingsAmount: entry.Amount,
			SubmitedBy:     adminID,
		}
		if p, ok := prepaid[entry.StudentID]; ok {
			// Prepayment guarantees paid status at the amortized rate.
			rec.Amount = p.PerDayAmount
			rec.SettingsAmount = p.PerDayAmount
			rec.HasPaid = true
			rec.IsPrepaid = true
		}
		recs = append(recs, rec)
	}

	return r.store.UpsertRecords(recs)
}
