package timecalc

import (
	"testing"

	"github.com/shopspring/decimal"
)

func decPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func TestWorkerCost_BaseWithCharges(t *testing.T) {
	worker := RosterWorker{ID: 1, PayRate: decPtr("40"), ChargesPct: dec("12.5")}

	cost := WorkerCost(worker, dec("10"), 2)

	if !cost.Equal(dec("450")) {
		t.Errorf("cost = %s, want 450 (10 × 40 × 1.125)", cost)
	}
}

func TestWorkerCost_DayUnitAdditionalCost(t *testing.T) {
	worker := RosterWorker{
		ID:         1,
		ChargesPct: decimal.Zero,
		AdditionalCosts: []AdditionalCost{
			{Label: "Panier repas", Unit: CostUnitDay, Amount: dec("50")},
		},
	}

	// 3 worked days, no pay rate: only the daily cost contributes,
	// independent of the hour total.
	cost := WorkerCost(worker, dec("27.25"), 3)

	if !cost.Equal(dec("150")) {
		t.Errorf("cost = %s, want 150", cost)
	}
}

func TestWorkerCost_HourUnitAdditionalCost(t *testing.T) {
	worker := RosterWorker{
		ID:         1,
		PayRate:    decPtr("30"),
		ChargesPct: decimal.Zero,
		AdditionalCosts: []AdditionalCost{
			{Label: "Outillage", Unit: CostUnitHour, Amount: dec("2.5")},
		},
	}

	cost := WorkerCost(worker, dec("8"), 1)

	// 8×30 base + 8×2.5 extra.
	if !cost.Equal(dec("260")) {
		t.Errorf("cost = %s, want 260", cost)
	}
}

func TestWorkerCost_NoPayRateStillGetsExtras(t *testing.T) {
	worker := RosterWorker{
		ID:         1,
		PayRate:    nil,
		ChargesPct: dec("20"),
		AdditionalCosts: []AdditionalCost{
			{Label: "Déplacement", Unit: CostUnitDay, Amount: dec("10")},
		},
	}

	cost := WorkerCost(worker, dec("40"), 5)

	if !cost.Equal(dec("50")) {
		t.Errorf("cost = %s, want 50", cost)
	}
}

func TestValuate_InvoiceEstimate(t *testing.T) {
	roster := []RosterWorker{
		{ID: 1, FirstName: "Alice", LastName: "Dupont"},
		{ID: 2, FirstName: "Bruno", LastName: "Martin"},
	}
	days := testDays(t, "2025-03")
	var entries []Entry
	for _, workerID := range []int64{1, 2} {
		for _, dayKey := range []string{"2025-03-03", "2025-03-04", "2025-03-05"} {
			entries = append(entries, Entry{WorkerID: workerID, DayKey: dayKey, Hours: dec("8"), Status: StatusWorked})
		}
	}

	agg := Aggregate(roster, days, entries)
	valuation := Valuate(agg, roster, decPtr("65"))

	if valuation.InvoiceEstimate == nil {
		t.Fatal("InvoiceEstimate is nil")
	}
	if !valuation.InvoiceEstimate.Equal(dec("3120")) {
		t.Errorf("InvoiceEstimate = %s, want 3120 (65 × 48)", valuation.InvoiceEstimate)
	}
}

func TestValuate_NilBillingRate(t *testing.T) {
	roster := []RosterWorker{{ID: 1}}
	agg := Aggregate(roster, testDays(t, "2025-03"), []Entry{
		{WorkerID: 1, DayKey: "2025-03-03", Hours: dec("8"), Status: StatusWorked},
	})

	valuation := Valuate(agg, roster, nil)

	if valuation.InvoiceEstimate != nil {
		t.Errorf("InvoiceEstimate should be nil without a billing rate, got %s", valuation.InvoiceEstimate)
	}
	if valuation.MarginEstimate != nil {
		t.Errorf("MarginEstimate should be nil without an invoice estimate")
	}
	if valuation.AverageRevenuePerHour != nil {
		t.Errorf("AverageRevenuePerHour should be nil without an invoice estimate")
	}
}

func TestValuate_CoverageUndefinedWithoutPayroll(t *testing.T) {
	roster := []RosterWorker{{ID: 1, FirstName: "Alice", LastName: "Dupont"}}
	agg := Aggregate(roster, testDays(t, "2025-03"), []Entry{
		{WorkerID: 1, DayKey: "2025-03-03", Hours: dec("8"), Status: StatusWorked},
	})

	valuation := Valuate(agg, roster, decPtr("65"))

	if valuation.PayrollEstimate != nil {
		t.Errorf("PayrollEstimate should be nil when the sum is zero")
	}
	if valuation.PayrollCoverage != nil {
		t.Errorf("PayrollCoverage should be nil when payroll is undefined")
	}
	if valuation.AverageCostPerHour != nil {
		t.Errorf("AverageCostPerHour should be nil when payroll is undefined")
	}
}

func TestValuate_MarginAndCoverage(t *testing.T) {
	roster := []RosterWorker{
		{ID: 1, FirstName: "Alice", LastName: "Dupont", PayRate: decPtr("32"), ChargesPct: dec("0")},
	}
	agg := Aggregate(roster, testDays(t, "2025-03"), []Entry{
		{WorkerID: 1, DayKey: "2025-03-03", Hours: dec("10"), Status: StatusWorked},
	})

	valuation := Valuate(agg, roster, decPtr("64"))

	if valuation.MarginEstimate == nil || !valuation.MarginEstimate.Equal(dec("320")) {
		t.Errorf("MarginEstimate = %v, want 320", valuation.MarginEstimate)
	}
	if valuation.PayrollCoverage == nil || *valuation.PayrollCoverage != 2.0 {
		t.Errorf("PayrollCoverage = %v, want 2.0", valuation.PayrollCoverage)
	}
	if valuation.AverageRevenuePerHour == nil || *valuation.AverageRevenuePerHour != 64.0 {
		t.Errorf("AverageRevenuePerHour = %v, want 64", valuation.AverageRevenuePerHour)
	}
	if valuation.MarginPerHour == nil || *valuation.MarginPerHour != 32.0 {
		t.Errorf("MarginPerHour = %v, want 32", valuation.MarginPerHour)
	}
	if valuation.WorkersWithPayRate != 1 {
		t.Errorf("WorkersWithPayRate = %d, want 1", valuation.WorkersWithPayRate)
	}
}

func TestValuate_ZeroHoursGuardsRatios(t *testing.T) {
	roster := []RosterWorker{{ID: 1, PayRate: decPtr("30"), ChargesPct: dec("0")}}
	agg := Aggregate(roster, testDays(t, "2025-03"), nil)

	valuation := Valuate(agg, roster, decPtr("65"))

	if valuation.AverageRevenuePerHour != nil || valuation.AverageCostPerHour != nil || valuation.MarginPerHour != nil {
		t.Errorf("per-hour ratios should all be nil with zero hours")
	}
}
