package timecalc

import "github.com/shopspring/decimal"

var percentBase = decimal.NewFromInt(100)

// Valuation applies billing and payroll rates to an aggregation. Optional
// figures are nil when the underlying data is missing or a denominator is
// zero; a nil figure means "not displayable", never zero.
type Valuation struct {
	InvoiceEstimate *decimal.Decimal
	PayrollEstimate *decimal.Decimal
	MarginEstimate  *decimal.Decimal

	// Ratios are derived display values and may safely live in floats.
	PayrollCoverage       *float64
	AverageRevenuePerHour *float64
	AverageCostPerHour    *float64
	MarginPerHour         *float64

	WorkerCosts        map[int64]decimal.Decimal
	WorkersWithPayRate int
}

// WorkerCost computes one worker's payroll cost for the period: base pay
// (only when a positive pay rate is set) plus additional costs, which
// apply regardless of the pay rate.
func WorkerCost(worker RosterWorker, hours decimal.Decimal, workedDays int) decimal.Decimal {
	cost := decimal.Zero

	if worker.PayRate != nil && worker.PayRate.Sign() > 0 {
		factor := decimal.NewFromInt(1).Add(worker.ChargesPct.Div(percentBase))
		cost = hours.Mul(*worker.PayRate).Mul(factor)
	}

	days := decimal.NewFromInt(int64(workedDays))
	for _, extra := range worker.AdditionalCosts {
		if extra.Amount.Sign() <= 0 {
			continue
		}
		switch extra.Unit {
		case CostUnitHour:
			cost = cost.Add(extra.Amount.Mul(hours))
		case CostUnitDay:
			cost = cost.Add(extra.Amount.Mul(days))
		}
	}

	return cost
}

// Valuate derives invoice, payroll, margin and coverage figures from an
// aggregation. A nil billing rate leaves the invoice estimate (and every
// figure depending on it) nil.
func Valuate(agg *Aggregation, roster []RosterWorker, billingRate *decimal.Decimal) Valuation {
	valuation := Valuation{
		WorkerCosts: make(map[int64]decimal.Decimal, len(roster)),
	}

	totalHours := agg.TotalHours()

	if billingRate != nil {
		invoice := totalHours.Mul(*billingRate)
		valuation.InvoiceEstimate = &invoice
	}

	payroll := decimal.Zero
	for _, worker := range roster {
		hours := agg.WorkerHours(worker.ID)
		cost := WorkerCost(worker, hours, agg.WorkerWorkedDays(worker.ID))
		valuation.WorkerCosts[worker.ID] = cost
		payroll = payroll.Add(cost)
		if worker.PayRate != nil && worker.PayRate.Sign() > 0 {
			valuation.WorkersWithPayRate++
		}
	}
	if payroll.Sign() > 0 {
		valuation.PayrollEstimate = &payroll
	}

	if valuation.InvoiceEstimate != nil && valuation.PayrollEstimate != nil {
		margin := valuation.InvoiceEstimate.Sub(*valuation.PayrollEstimate)
		valuation.MarginEstimate = &margin

		coverage := valuation.InvoiceEstimate.Div(*valuation.PayrollEstimate).InexactFloat64()
		valuation.PayrollCoverage = &coverage
	}

	if totalHours.Sign() > 0 {
		if valuation.InvoiceEstimate != nil {
			revenue := valuation.InvoiceEstimate.Div(totalHours).InexactFloat64()
			valuation.AverageRevenuePerHour = &revenue
		}
		if valuation.PayrollEstimate != nil {
			cost := valuation.PayrollEstimate.Div(totalHours).InexactFloat64()
			valuation.AverageCostPerHour = &cost
		}
		if valuation.AverageRevenuePerHour != nil && valuation.AverageCostPerHour != nil {
			margin := *valuation.AverageRevenuePerHour - *valuation.AverageCostPerHour
			valuation.MarginPerHour = &margin
		}
	}

	return valuation
}
