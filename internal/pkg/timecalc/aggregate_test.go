package timecalc

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func testDays(t *testing.T, month string) []Day {
	t.Helper()
	period, err := ParseMonth(month)
	if err != nil {
		t.Fatalf("ParseMonth(%q): %v", month, err)
	}
	return period.Days()
}

func TestAggregate_WorkerHoursExcludeAbsences(t *testing.T) {
	roster := []RosterWorker{{ID: 1, FirstName: "Alice", LastName: "Dupont"}}
	days := testDays(t, "2025-03")
	entries := []Entry{
		{WorkerID: 1, DayKey: "2025-03-03", Hours: dec("7.5"), Status: StatusWorked},
		{WorkerID: 1, DayKey: "2025-03-04", Hours: dec("8"), Status: StatusWorked},
		// An absence keeps whatever hours the row carries out of the totals.
		{WorkerID: 1, DayKey: "2025-03-05", Hours: dec("7.5"), Status: StatusAbsent},
		{WorkerID: 1, DayKey: "2025-03-06", Hours: dec("0"), Status: StatusWorked},
	}

	agg := Aggregate(roster, days, entries)

	if got := agg.WorkerHours(1); !got.Equal(dec("15.5")) {
		t.Errorf("WorkerHours = %s, want 15.5", got)
	}
	if got := agg.WorkerWorkedDays(1); got != 2 {
		t.Errorf("WorkerWorkedDays = %d, want 2", got)
	}
}

func TestAggregate_WorkedDaysCappedByPeriod(t *testing.T) {
	roster := []RosterWorker{{ID: 1, FirstName: "Alice", LastName: "Dupont"}}
	days := testDays(t, "2025-02")

	var entries []Entry
	for _, day := range days {
		entries = append(entries, Entry{WorkerID: 1, DayKey: day.Key, Hours: dec("7.5"), Status: StatusWorked})
	}
	// Entries outside the period day list never count.
	entries = append(entries, Entry{WorkerID: 1, DayKey: "2025-03-01", Hours: dec("7.5"), Status: StatusWorked})

	agg := Aggregate(roster, days, entries)

	if got := agg.WorkerWorkedDays(1); got != len(days) {
		t.Errorf("WorkerWorkedDays = %d, want %d", got, len(days))
	}
}

func TestAggregate_IgnoresWorkersOutsideRoster(t *testing.T) {
	roster := []RosterWorker{{ID: 1, FirstName: "Alice", LastName: "Dupont"}}
	days := testDays(t, "2025-03")
	entries := []Entry{
		{WorkerID: 1, DayKey: "2025-03-03", Hours: dec("8"), Status: StatusWorked},
		{WorkerID: 99, DayKey: "2025-03-03", Hours: dec("8"), Status: StatusWorked},
	}

	agg := Aggregate(roster, days, entries)

	if got := agg.TotalHours(); !got.Equal(dec("8")) {
		t.Errorf("TotalHours = %s, want 8", got)
	}
	if got := agg.DayTotal("2025-03-03"); !got.Equal(dec("8")) {
		t.Errorf("DayTotal = %s, want 8", got)
	}
}

func TestAggregate_ZeroEntryWorkerPresent(t *testing.T) {
	roster := []RosterWorker{
		{ID: 1, FirstName: "Alice", LastName: "Dupont"},
		{ID: 2, FirstName: "Bruno", LastName: "Martin"},
	}
	days := testDays(t, "2025-03")
	entries := []Entry{
		{WorkerID: 1, DayKey: "2025-03-03", Hours: dec("7.5"), Status: StatusWorked},
	}

	agg := Aggregate(roster, days, entries)

	if got := agg.WorkerHours(2); !got.Equal(decimal.Zero) {
		t.Errorf("WorkerHours(2) = %s, want 0", got)
	}
	if got := agg.WorkerWorkedDays(2); got != 0 {
		t.Errorf("WorkerWorkedDays(2) = %d, want 0", got)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	roster := []RosterWorker{{ID: 1, FirstName: "Alice", LastName: "Dupont"}}
	days := testDays(t, "2025-03")
	entries := []Entry{
		{WorkerID: 1, DayKey: "2025-03-03", Hours: dec("7.75"), Status: StatusWorked},
		{WorkerID: 1, DayKey: "2025-03-04", Hours: dec("6.25"), Status: StatusWorked},
	}

	first := Aggregate(roster, days, entries)
	second := Aggregate(roster, days, entries)

	if !first.TotalHours().Equal(second.TotalHours()) {
		t.Errorf("re-aggregation changed the total: %s vs %s", first.TotalHours(), second.TotalHours())
	}
}

// Many quarter-hour entries must sum exactly, without float drift.
func TestAggregate_DecimalAccumulation(t *testing.T) {
	roster := []RosterWorker{{ID: 1, FirstName: "Alice", LastName: "Dupont"}}
	days := testDays(t, "2025-01")

	var entries []Entry
	for _, day := range days {
		entries = append(entries, Entry{WorkerID: 1, DayKey: day.Key, Hours: dec("0.25"), Status: StatusWorked})
	}

	agg := Aggregate(roster, days, entries)

	if got := agg.TotalHours(); !got.Equal(dec("7.75")) {
		t.Errorf("TotalHours = %s, want 7.75", got)
	}
}

func TestAverageHoursPerWorker_EmptyRoster(t *testing.T) {
	agg := Aggregate(nil, testDays(t, "2025-03"), nil)
	if agg.AverageHoursPerWorker() != nil {
		t.Errorf("average for empty roster should be nil")
	}
}
