package timecalc

import (
	"testing"
)

func exportDataset(t *testing.T) Dataset {
	t.Helper()
	period, err := ParseMonth("2025-03")
	if err != nil {
		t.Fatalf("ParseMonth: %v", err)
	}

	workers := []RosterWorker{
		{ID: 2, FirstName: "Bruno", LastName: "Martin", PayRate: decPtr("28"), ChargesPct: dec("0")},
		{ID: 1, FirstName: "Alice", LastName: "Dupont", PayRate: decPtr("32"), ChargesPct: dec("12.5")},
	}
	SortRoster(workers)

	entries := []Entry{
		{WorkerID: 1, DayKey: "2025-03-03", Hours: dec("8"), Status: StatusWorked},
		{WorkerID: 1, DayKey: "2025-03-04", Hours: dec("7.5"), Status: StatusWorked},
		{WorkerID: 1, DayKey: "2025-03-05", Hours: dec("0"), Status: StatusAbsent},
		{WorkerID: 2, DayKey: "2025-03-03", Hours: dec("8"), Status: StatusWorked},
	}

	return Dataset{
		Workers: workers,
		Days:    period.Days(),
		Entries: IndexEntries(entries),
	}
}

func TestSortRoster(t *testing.T) {
	workers := []RosterWorker{
		{ID: 1, FirstName: "Zoé", LastName: "Martin"},
		{ID: 2, FirstName: "Alice", LastName: "Martin"},
		{ID: 3, FirstName: "Bruno", LastName: "Dupont"},
	}
	SortRoster(workers)

	if workers[0].ID != 3 || workers[1].ID != 2 || workers[2].ID != 1 {
		t.Errorf("unexpected order: %v %v %v", workers[0].ID, workers[1].ID, workers[2].ID)
	}
}

func TestBuildPayrollSheet(t *testing.T) {
	sheet, err := BuildSheet(ExportPayroll, exportDataset(t))
	if err != nil {
		t.Fatalf("BuildSheet: %v", err)
	}
	if sheet.Name != "Paie" {
		t.Errorf("sheet name = %q", sheet.Name)
	}
	// Header + 2 workers + TOTAL.
	if len(sheet.Rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(sheet.Rows))
	}

	alice := sheet.Rows[1]
	if alice[0] != "DUPONT Alice" {
		t.Errorf("worker name = %v", alice[0])
	}
	if alice[1] != "15:30" {
		t.Errorf("hours = %v, want 15:30", alice[1])
	}
	if alice[3] != "12.50%" {
		t.Errorf("charges = %v, want 12.50%%", alice[3])
	}
	// 15.5 × 32 × 1.125 = 558.
	if alice[4] != 558.0 {
		t.Errorf("cost = %v, want 558", alice[4])
	}

	total := sheet.Rows[3]
	if total[0] != "TOTAL" {
		t.Errorf("total label = %v", total[0])
	}
	if total[1] != "23:30" {
		t.Errorf("total hours = %v, want 23:30", total[1])
	}
	// 558 + 8×28 = 782.
	if total[4] != 782.0 {
		t.Errorf("total cost = %v, want 782", total[4])
	}
}

func TestBuildPayrollSheet_MissingRateRendersEmDash(t *testing.T) {
	dataset := exportDataset(t)
	dataset.Workers[0].PayRate = nil

	sheet, err := BuildSheet(ExportPayroll, dataset)
	if err != nil {
		t.Fatalf("BuildSheet: %v", err)
	}
	if sheet.Rows[1][2] != EmDash {
		t.Errorf("rate cell = %v, want em-dash", sheet.Rows[1][2])
	}
	// The sheet still totals the other worker's cost.
	if sheet.Rows[3][4] != 224.0 {
		t.Errorf("total cost = %v, want 224", sheet.Rows[3][4])
	}
}

func TestBuildDetailSheet(t *testing.T) {
	sheet, err := BuildSheet(ExportDetail, exportDataset(t))
	if err != nil {
		t.Fatalf("BuildSheet: %v", err)
	}
	if sheet.Name != "Détail" {
		t.Errorf("sheet name = %q", sheet.Name)
	}

	header := sheet.Rows[0]
	// Worker column + 31 days + Total.
	if len(header) != 33 {
		t.Fatalf("header columns = %d, want 33", len(header))
	}

	alice := sheet.Rows[1]
	if alice[3] != "08:00" { // 2025-03-03
		t.Errorf("day 03 = %v, want 08:00", alice[3])
	}
	if alice[4] != "07:30" {
		t.Errorf("day 04 = %v, want 07:30", alice[4])
	}
	if alice[5] != "ABS" {
		t.Errorf("day 05 = %v, want ABS", alice[5])
	}
	if alice[6] != "" {
		t.Errorf("day 06 = %v, want empty", alice[6])
	}
	if alice[32] != "15:30" {
		t.Errorf("row total = %v, want 15:30", alice[32])
	}

	total := sheet.Rows[len(sheet.Rows)-1]
	if total[0] != "TOTAL" {
		t.Errorf("total label = %v", total[0])
	}
	if total[3] != "16:00" {
		t.Errorf("day 03 column total = %v, want 16:00", total[3])
	}
	if total[32] != "23:30" {
		t.Errorf("grand total = %v, want 23:30", total[32])
	}
}

func TestBuildGlobalSheet(t *testing.T) {
	sheet, err := BuildSheet(ExportGlobal, exportDataset(t))
	if err != nil {
		t.Fatalf("BuildSheet: %v", err)
	}
	if sheet.Name != "Global" {
		t.Errorf("sheet name = %q", sheet.Name)
	}

	alice := sheet.Rows[1]
	if alice[1] != "15:30" || alice[2] != 2.0 {
		t.Errorf("alice row = %v, want 15:30 / 2 days", alice)
	}

	total := sheet.Rows[3]
	if total[1] != "23:30" || total[2] != 3.0 {
		t.Errorf("total row = %v, want 23:30 / 3 days", total)
	}
}

func TestParseExportKind(t *testing.T) {
	for _, value := range []string{"payroll", "detail", "global"} {
		kind, err := ParseExportKind(value)
		if err != nil || string(kind) != value {
			t.Errorf("ParseExportKind(%q) = %v, %v", value, kind, err)
		}
	}
	if kind, err := ParseExportKind(""); err != nil || kind != ExportPayroll {
		t.Errorf("empty kind should default to payroll, got %v, %v", kind, err)
	}
	if _, err := ParseExportKind("csv"); err == nil {
		t.Errorf("ParseExportKind(csv) expected error")
	}
}
