package canteen

import (
	"time"

	"github.com/Masood-zone/CMS--full/app/models"
)

// Aggregator serves the read-only rollups. It never mutates records; all
// money figures come from summing record amounts so prepayment variance
// is reflected exactly.
type Aggregator struct {
	store Store
}

func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// AdminAnalytics is the school-wide rollup: headcounts plus total
// collections across every record ever created.
func (a *Aggregator) AdminAnalytics() (*models.AdminAnalytics, error) {
	admins, err := a.store.CountUsersByRole(string(models.SuperAdmin), string(models.Admin), string(models.Teacher))
	if err != nil {
		return nil, err
	}
	students, err := a.store.CountStudents()
	if err != nil {
		return nil, err
	}
	classes, err := a.store.CountClasses()
	if err != nil {
		return nil, err
	}
	collections, err := a.store.SumAllRecordAmounts()
	if err != nil {
		return nil, err
	}

	return &models.AdminAnalytics{
		TotalAdmins:      admins,
		TotalStudents:    students,
		TotalClasses:     classes,
		TotalCollections: collections,
	}, nil
}

// ClassAnalytics summarizes today's submitted records for one class.
func (a *Aggregator) ClassAnalytics(classID string) (*models.ClassAnalytics, error) {
	exists, err := a.store.ClassExists(classID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &NotFoundError{Resource: "class", ID: classID}
	}

	students, err := a.store.CountStudentsInClass(classID)
	if err != nil {
		return nil, err
	}
	paid, unpaid, err := a.store.ClassDayTotals(classID, DateOnly(time.Now()))
	if err != nil {
		return nil, err
	}

	return &models.ClassAnalytics{
		TotalStudents:  students,
		TotalAmount:    paid.Amount + unpaid.Amount,
		PaidStudents:   paid,
		UnpaidStudents: unpaid,
	}, nil
}

// DailyAnalytics partitions one day's records into paid, unpaid and
// absent. Absent records count toward the total but their amounts are
// reported separately and excluded from TotalAmount.
func (a *Aggregator) DailyAnalytics(date time.Time) (*models.DailyAnalytics, error) {
	day := DateOnly(date)
	paid, unpaid, absent, err := a.store.DayPartitions(day)
	if err != nil {
		return nil, err
	}

	return &models.DailyAnalytics{
		Date:          day.Format("2006-01-02"),
		TotalRecords:  paid.Count + unpaid.Count + absent.Count,
		TotalAmount:   paid.Amount + unpaid.Amount,
		PaidRecords:   paid,
		UnpaidRecords: unpaid,
		AbsentRecords: absent,
	}, nil
}
