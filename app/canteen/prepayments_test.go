package canteen

import (
	"testing"
	"time"
)

func TestPerDayAmount(t *testing.T) {
	if got := PerDayAmount(100, 5); got != 20 {
		t.Errorf("PerDayAmount(100, 5) = %v, want 20", got)
	}
	if got := PerDayAmount(10, 3); got != 3.33 {
		t.Errorf("PerDayAmount(10, 3) = %v, want 3.33", got)
	}
	if got := PerDayAmount(50, 0); got != 0 {
		t.Errorf("PerDayAmount(50, 0) = %v, want 0", got)
	}
}

func TestLedgerCreate(t *testing.T) {
	store := newFakeStore()
	class := store.addClass("P1", "student-a")
	ledger := NewLedger(store)

	// Mon 2024-03-04 through Fri 2024-03-08, five weekdays.
	p, err := ledger.Create(CreatePrepaymentInput{
		StudentID: "student-a",
		ClassID:   class.ID,
		Amount:    100,
		StartDate: date(2024, time.March, 4),
		EndDate:   date(2024, time.March, 8),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.NumberOfDays != 5 {
		t.Errorf("NumberOfDays = %d, want 5", p.NumberOfDays)
	}
	if p.PerDayAmount != 20 {
		t.Errorf("PerDayAmount = %v, want 20", p.PerDayAmount)
	}
	if p.ID == "" {
		t.Error("expected stored prepayment to have an id")
	}
}

func TestLedgerCreateRecomputesDayCount(t *testing.T) {
	store := newFakeStore()
	class := store.addClass("P1", "student-a")
	ledger := NewLedger(store)

	// Supplied day count disagrees with the interval; the weekday count wins.
	p, err := ledger.Create(CreatePrepaymentInput{
		StudentID:    "student-a",
		ClassID:      class.ID,
		Amount:       100,
		StartDate:    date(2024, time.March, 4),
		EndDate:      date(2024, time.March, 8),
		NumberOfDays: 7,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.NumberOfDays != 5 || p.PerDayAmount != 20 {
		t.Errorf("got days=%d perDay=%v, want 5 and 20", p.NumberOfDays, p.PerDayAmount)
	}
}

func TestLedgerCreateValidation(t *testing.T) {
	store := newFakeStore()
	class := store.addClass("P1", "student-a")
	ledger := NewLedger(store)

	tests := []struct {
		name  string
		input CreatePrepaymentInput
	}{
		{"zero amount", CreatePrepaymentInput{
			StudentID: "student-a", ClassID: class.ID, Amount: 0,
			StartDate: date(2024, time.March, 4), EndDate: date(2024, time.March, 8),
		}},
		{"end before start", CreatePrepaymentInput{
			StudentID: "student-a", ClassID: class.ID, Amount: 100,
			StartDate: date(2024, time.March, 8), EndDate: date(2024, time.March, 4),
		}},
		{"weekend only interval", CreatePrepaymentInput{
			StudentID: "student-a", ClassID: class.ID, Amount: 100,
			StartDate: date(2024, time.March, 9), EndDate: date(2024, time.March, 10),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ledger.Create(tt.input)
			if _, ok := err.(*ValidationError); !ok {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestLedgerCreateUnknownReferences(t *testing.T) {
	store := newFakeStore()
	class := store.addClass("P1", "student-a")
	ledger := NewLedger(store)

	_, err := ledger.Create(CreatePrepaymentInput{
		StudentID: "ghost", ClassID: class.ID, Amount: 100,
		StartDate: date(2024, time.March, 4), EndDate: date(2024, time.March, 8),
	})
	if nf, ok := err.(*NotFoundError); !ok || nf.Resource != "student" {
		t.Errorf("expected student NotFoundError, got %v", err)
	}

	_, err = ledger.Create(CreatePrepaymentInput{
		StudentID: "student-a", ClassID: "no-such-class", Amount: 100,
		StartDate: date(2024, time.March, 4), EndDate: date(2024, time.March, 8),
	})
	if nf, ok := err.(*NotFoundError); !ok || nf.Resource != "class" {
		t.Errorf("expected class NotFoundError, got %v", err)
	}
}

func TestLedgerUpdateCascades(t *testing.T) {
	store := newFakeStore()
	store.settings["amount"] = "5"
	class := store.addClass("P1", "student-a")
	ledger := NewLedger(store)

	// Prepayment over two weeks, 10 weekdays at 10/day.
	p, err := ledger.Create(CreatePrepaymentInput{
		StudentID: "student-a",
		ClassID:   class.ID,
		Amount:    100,
		StartDate: date(2024, time.March, 4),
		EndDate:   date(2024, time.March, 15),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Materialize prepaid records for the first and second week.
	for _, d := range []time.Time{date(2024, time.March, 4), date(2024, time.March, 11)} {
		rec := recordFor(class.ID, "student-a", d)
		rec.Amount = p.PerDayAmount
		rec.SettingsAmount = p.PerDayAmount
		rec.HasPaid = true
		rec.IsPrepaid = true
		if err := store.InsertRecord(rec); err != nil {
			t.Fatalf("InsertRecord: %v", err)
		}
	}

	// Shrink the window to the first week only, 5 weekdays at 16/day.
	updated, err := ledger.Update(p.ID, 80, date(2024, time.March, 4), date(2024, time.March, 8))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.NumberOfDays != 5 || updated.PerDayAmount != 16 {
		t.Errorf("got days=%d perDay=%v, want 5 and 16", updated.NumberOfDays, updated.PerDayAmount)
	}

	// Record inside the new window carries the new per-day amount.
	kept := store.records[recordKey("student-a", date(2024, time.March, 4))]
	if kept.Amount != 16 || !kept.IsPrepaid || !kept.HasPaid {
		t.Errorf("kept record = amount %v prepaid %v paid %v, want 16 true true",
			kept.Amount, kept.IsPrepaid, kept.HasPaid)
	}

	// Record outside the new window reverts to unpaid at the standing fee.
	dropped := store.records[recordKey("student-a", date(2024, time.March, 11))]
	if dropped.Amount != 5 || dropped.IsPrepaid || dropped.HasPaid {
		t.Errorf("dropped record = amount %v prepaid %v paid %v, want 5 false false",
			dropped.Amount, dropped.IsPrepaid, dropped.HasPaid)
	}
}

func TestLedgerUpdateMissing(t *testing.T) {
	ledger := NewLedger(newFakeStore())
	_, err := ledger.Update("nope", 100, date(2024, time.March, 4), date(2024, time.March, 8))
	if _, ok := err.(*NotFoundError); !ok {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestLedgerDelete(t *testing.T) {
	store := newFakeStore()
	class := store.addClass("P1", "student-a")
	ledger := NewLedger(store)

	p, err := ledger.Create(CreatePrepaymentInput{
		StudentID: "student-a", ClassID: class.ID, Amount: 100,
		StartDate: date(2024, time.March, 4), EndDate: date(2024, time.March, 8),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := ledger.Delete(p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := ledger.Delete(p.ID); err == nil {
		t.Error("expected NotFoundError for second delete")
	} else if _, ok := err.(*NotFoundError); !ok {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestLedgerActiveOn(t *testing.T) {
	store := newFakeStore()
	class := store.addClass("P1", "student-a", "student-b")
	ledger := NewLedger(store)

	if _, err := ledger.Create(CreatePrepaymentInput{
		StudentID: "student-a", ClassID: class.ID, Amount: 100,
		StartDate: date(2024, time.March, 4), EndDate: date(2024, time.March, 8),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	active, err := ledger.ActiveOn(date(2024, time.March, 6), []string{"student-a", "student-b"})
	if err != nil {
		t.Fatalf("ActiveOn: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("len(active) = %d, want 1", len(active))
	}
	if _, ok := active["student-a"]; !ok {
		t.Error("expected student-a to be covered")
	}

	// Outside the window nobody is covered.
	active, err = ledger.ActiveOn(date(2024, time.March, 11), []string{"student-a", "student-b"})
	if err != nil {
		t.Fatalf("ActiveOn: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("len(active) = %d, want 0", len(active))
	}
}

func TestLedgerActiveOnOldestWins(t *testing.T) {
	store := newFakeStore()
	class := store.addClass("P1", "student-a")
	ledger := NewLedger(store)

	first, err := ledger.Create(CreatePrepaymentInput{
		StudentID: "student-a", ClassID: class.ID, Amount: 100,
		StartDate: date(2024, time.March, 4), EndDate: date(2024, time.March, 8),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := ledger.Create(CreatePrepaymentInput{
		StudentID: "student-a", ClassID: class.ID, Amount: 200,
		StartDate: date(2024, time.March, 4), EndDate: date(2024, time.March, 8),
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	active, err := ledger.ActiveOn(date(2024, time.March, 5), []string{"student-a"})
	if err != nil {
		t.Fatalf("ActiveOn: %v", err)
	}
	if active["student-a"].ID != first.ID {
		t.Errorf("ActiveOn picked %s, want oldest %s", active["student-a"].ID, first.ID)
	}
}
