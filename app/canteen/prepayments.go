package canteen

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Masood-zone/CMS--full/app/models"
)

// Ledger manages prepayment windows and keeps already-materialized
// records consistent when a window's amount or interval changes.
type Ledger struct {
	store Store
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// PerDayAmount amortizes a prepayment total over its qualifying days,
// rounded to two decimal places.
func PerDayAmount(amount float64, days int) float64 {
	if days <= 0 {
		return 0
	}
	return decimal.NewFromFloat(amount).
		Div(decimal.NewFromInt(int64(days))).
		Round(2).
		InexactFloat64()
}

// CreatePrepaymentInput carries the validated boundary values for a new
// prepayment. NumberOfDays is advisory: the ledger recomputes the
// weekday count from the interval so create and update agree.
type CreatePrepaymentInput struct {
	StudentID    string
	ClassID      string
	Amount       float64
	StartDate    time.Time
	EndDate      time.Time
	NumberOfDays int
}

func (l *Ledger) validateWindow(amount float64, start, end time.Time) (int, error) {
	if amount <= 0 {
		return 0, newValidationError("prepayment amount must be greater than zero")
	}
	if end.Before(start) {
		return 0, newValidationError("start date must not be after end date")
	}
	days := CountWeekdays(start, end)
	if days <= 0 {
		return 0, newValidationError("prepayment interval %s to %s contains no weekdays",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return days, nil
}

// Create stores a new prepayment with its derived per-day amount.
func (l *Ledger) Create(input CreatePrepaymentInput) (*models.Prepayment, error) {
	start, end := DateOnly(input.StartDate), DateOnly(input.EndDate)
	days, err := l.validateWindow(input.Amount, start, end)
	if err != nil {
		return nil, err
	}
	if input.NumberOfDays != 0 && input.NumberOfDays != days {
		log.Printf("Prepayment create: supplied day count %d differs from weekday count %d, using %d",
			input.NumberOfDays, days, days)
	}

	missing, err := l.store.MissingStudents([]string{input.StudentID})
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, &NotFoundError{Resource: "student", ID: input.StudentID}
	}
	exists, err := l.store.ClassExists(input.ClassID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &NotFoundError{Resource: "class", ID: input.ClassID}
	}

	p := &models.Prepayment{
		StudentID:    input.StudentID,
		ClassID:      input.ClassID,
		Amount:       input.Amount,
		StartDate:    start,
		EndDate:      end,
		NumberOfDays: days,
		PerDayAmount: PerDayAmount(input.Amount, days),
	}
	if err := l.store.CreatePrepayment(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces a prepayment's amount and interval, recomputes the
// amortization, and cascades to already-materialized records:
// prepaid records inside the new interval are restamped with the new
// per-day amount, and records prepaid under the old interval but no
// longer covered revert to unpaid at the current standing fee.
func (l *Ledger) Update(id string, amount float64, startDate, endDate time.Time) (*models.Prepayment, error) {
	p, err := l.store.PrepaymentByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &NotFoundError{Resource: "prepayment", ID: id}
	}

	start, end := DateOnly(startDate), DateOnly(endDate)
	days, err := l.validateWindow(amount, start, end)
	if err != nil {
		return nil, err
	}

	oldStart, oldEnd := p.StartDate, p.EndDate
	p.Amount = amount
	p.StartDate = start
	p.EndDate = end
	p.NumberOfDays = days
	p.PerDayAmount = PerDayAmount(amount, days)

	if err := l.store.SavePrepayment(p); err != nil {
		return nil, err
	}

	restamped, err := l.store.RestampPrepaidRecords(p.StudentID, start, end, p.PerDayAmount)
	if err != nil {
		return nil, err
	}

	fee, err := l.standingFee()
	if err != nil {
		return nil, err
	}
	reverted, err := l.store.ResetPrepaidRecords(p.StudentID, oldStart, oldEnd, start, end, fee)
	if err != nil {
		return nil, err
	}
	log.Printf("Prepayment %s updated: restamped %d records at %.2f/day, reverted %d records outside new interval",
		p.ID, restamped, p.PerDayAmount, reverted)

	return p, nil
}

// Delete removes the prepayment only; records already created under it
// stay untouched.
func (l *Ledger) Delete(id string) error {
	err := l.store.DeletePrepayment(id)
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Resource: "prepayment", ID: id}
	}
	return err
}

// ActiveOn answers which of the given students are prepaid on date,
// mapping each student id to their covering prepayment. When a student
// somehow holds several overlapping windows, the oldest wins.
func (l *Ledger) ActiveOn(date time.Time, studentIDs []string) (map[string]*models.Prepayment, error) {
	prepayments, err := l.store.ActivePrepayments(DateOnly(date), studentIDs)
	if err != nil {
		return nil, err
	}
	active := make(map[string]*models.Prepayment, len(prepayments))
	for _, p := range prepayments {
		if _, ok := active[p.StudentID]; !ok {
			active[p.StudentID] = p
		}
	}
	return active, nil
}

func (l *Ledger) standingFee() (float64, error) {
	return standingFee(l.store)
}
