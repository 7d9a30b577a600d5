package canteen

import (
	"testing"
	"time"

	"github.com/Masood-zone/CMS--full/app/models"
)

func TestAdminAnalytics(t *testing.T) {
	store := newFakeStore()
	store.settings["amount"] = "5"
	store.addAdmin("admin-1")
	store.users["teacher-1"] = string(models.Teacher)
	store.addClass("P1", "student-a", "student-b")
	store.addClass("P2", "student-c")

	rec := NewReconciler(store)
	day := date(2024, time.March, 6)
	if _, err := rec.GenerateDailyRecords(day, "", "admin-1"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	agg := NewAggregator(store)
	got, err := agg.AdminAnalytics()
	if err != nil {
		t.Fatalf("AdminAnalytics: %v", err)
	}
	if got.TotalAdmins != 2 {
		t.Errorf("TotalAdmins = %d, want 2", got.TotalAdmins)
	}
	if got.TotalStudents != 3 {
		t.Errorf("TotalStudents = %d, want 3", got.TotalStudents)
	}
	if got.TotalClasses != 2 {
		t.Errorf("TotalClasses = %d, want 2", got.TotalClasses)
	}
	if got.TotalCollections != 15 {
		t.Errorf("TotalCollections = %v, want 15", got.TotalCollections)
	}
}

func TestClassAnalytics(t *testing.T) {
	store := newFakeStore()
	store.settings["amount"] = "5"
	store.addAdmin("admin-1")
	class := store.addClass("P1", "student-a", "student-b")
	rec := NewReconciler(store)

	today := DateOnly(time.Now())
	if _, err := rec.GenerateDailyRecords(today, "", "admin-1"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	entries := MergeDictation(
		[]DictationItem{{StudentID: "student-a", Amount: 5}},
		[]DictationItem{{StudentID: "student-b", AmountOwing: 5}},
		nil,
	)
	if _, err := rec.SubmitAdminRecord(class.ID, today, entries, "admin-1"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	agg := NewAggregator(store)
	got, err := agg.ClassAnalytics(class.ID)
	if err != nil {
		t.Fatalf("ClassAnalytics: %v", err)
	}
	if got.TotalStudents != 2 {
		t.Errorf("TotalStudents = %d, want 2", got.TotalStudents)
	}
	if got.PaidStudents.Count != 1 || got.PaidStudents.Amount != 5 {
		t.Errorf("PaidStudents = %+v", got.PaidStudents)
	}
	if got.UnpaidStudents.Count != 1 || got.UnpaidStudents.Amount != 5 {
		t.Errorf("UnpaidStudents = %+v", got.UnpaidStudents)
	}
	if got.TotalAmount != got.PaidStudents.Amount+got.UnpaidStudents.Amount {
		t.Errorf("TotalAmount = %v, want paid+unpaid", got.TotalAmount)
	}
}

func TestClassAnalyticsPartitionsOnPaidStatusOnly(t *testing.T) {
	store := newFakeStore()
	store.settings["amount"] = "5"
	store.addAdmin("admin-1")
	class := store.addClass("P1", "student-a", "student-b", "student-c")
	rec := NewReconciler(store)

	today := DateOnly(time.Now())
	entries := MergeDictation(
		[]DictationItem{{StudentID: "student-a", Amount: 5}},
		[]DictationItem{{StudentID: "student-b", AmountOwing: 5}},
		[]DictationItem{{StudentID: "student-c", AmountOwing: 5}},
	)
	if _, err := rec.SubmitAdminRecord(class.ID, today, entries, "admin-1"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	agg := NewAggregator(store)
	got, err := agg.ClassAnalytics(class.ID)
	if err != nil {
		t.Fatalf("ClassAnalytics: %v", err)
	}
	// The absent student has not paid, so they land in the unpaid
	// partition; class totals split on paid status alone.
	if got.PaidStudents.Count != 1 {
		t.Errorf("PaidStudents.Count = %d, want 1", got.PaidStudents.Count)
	}
	if got.UnpaidStudents.Count != 2 {
		t.Errorf("UnpaidStudents.Count = %d, want 2", got.UnpaidStudents.Count)
	}
	if got.UnpaidStudents.Amount != 10 {
		t.Errorf("UnpaidStudents.Amount = %v, want 10", got.UnpaidStudents.Amount)
	}
}

func TestClassAnalyticsUnknownClass(t *testing.T) {
	agg := NewAggregator(newFakeStore())
	_, err := agg.ClassAnalytics("no-such-class")
	if nf, ok := err.(*NotFoundError); !ok || nf.Resource != "class" {
		t.Errorf("expected class NotFoundError, got %v", err)
	}
}

func TestDailyAnalytics(t *testing.T) {
	store := newFakeStore()
	store.settings["amount"] = "5"
	store.addAdmin("admin-1")
	class := store.addClass("P1", "student-a", "student-b", "student-c")
	rec := NewReconciler(store)

	day := date(2024, time.March, 6)
	entries := MergeDictation(
		[]DictationItem{{StudentID: "student-a", Amount: 5}},
		[]DictationItem{{StudentID: "student-b", AmountOwing: 5}},
		[]DictationItem{{StudentID: "student-c", AmountOwing: 5}},
	)
	if _, err := rec.SubmitAdminRecord(class.ID, day, entries, "admin-1"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	agg := NewAggregator(store)
	got, err := agg.DailyAnalytics(day)
	if err != nil {
		t.Fatalf("DailyAnalytics: %v", err)
	}
	if got.Date != "2024-03-06" {
		t.Errorf("Date = %s", got.Date)
	}
	if got.TotalRecords != 3 {
		t.Errorf("TotalRecords = %d, want 3", got.TotalRecords)
	}
	if got.PaidRecords.Count != 1 || got.UnpaidRecords.Count != 1 || got.AbsentRecords.Count != 1 {
		t.Errorf("partitions = %+v %+v %+v", got.PaidRecords, got.UnpaidRecords, got.AbsentRecords)
	}
	// Absent amounts stay out of the day total.
	if got.TotalAmount != got.PaidRecords.Amount+got.UnpaidRecords.Amount {
		t.Errorf("TotalAmount = %v, want paid+unpaid", got.TotalAmount)
	}
	if got.TotalRecords != got.PaidRecords.Count+got.UnpaidRecords.Count+got.AbsentRecords.Count {
		t.Errorf("TotalRecords = %d, want sum of partitions", got.TotalRecords)
	}
}

func TestDailyAnalyticsEmptyDay(t *testing.T) {
	agg := NewAggregator(newFakeStore())
	got, err := agg.DailyAnalytics(date(2024, time.March, 6))
	if err != nil {
		t.Fatalf("DailyAnalytics: %v", err)
	}
	if got.TotalRecords != 0 || got.TotalAmount != 0 {
		t.Errorf("empty day = %+v", got)
	}
}
