package timecalc

import "github.com/shopspring/decimal"

// Aggregation folds a period's time entries into per-worker, per-day and
// global totals. It is a pure value: re-running Aggregate over the same
// inputs yields identical results.
type Aggregation struct {
	days        []Day
	workerHours map[int64]decimal.Decimal
	workerDays  map[int64]int
	dayTotals   map[string]decimal.Decimal
	totalHours  decimal.Decimal
	rosterSize  int
}

// IndexEntries builds the (worker, day) lookup used by Aggregate and the
// export renderer. With at most one entry per natural key, later entries
// overwrite earlier ones.
func IndexEntries(entries []Entry) map[int64]map[string]Entry {
	index := make(map[int64]map[string]Entry)
	for _, entry := range entries {
		byDay, ok := index[entry.WorkerID]
		if !ok {
			byDay = make(map[string]Entry)
			index[entry.WorkerID] = byDay
		}
		byDay[entry.DayKey] = entry
	}
	return index
}

// Aggregate computes totals for the given roster over the period's day
// list. Every roster worker is initialized to zero so workers without
// entries are present in the result, and entries from workers outside the
// roster are ignored.
func Aggregate(roster []RosterWorker, days []Day, entries []Entry) *Aggregation {
	agg := &Aggregation{
		days:        days,
		workerHours: make(map[int64]decimal.Decimal, len(roster)),
		workerDays:  make(map[int64]int, len(roster)),
		dayTotals:   make(map[string]decimal.Decimal, len(days)),
		rosterSize:  len(roster),
	}

	for _, worker := range roster {
		agg.workerHours[worker.ID] = decimal.Zero
		agg.workerDays[worker.ID] = 0
	}
	for _, day := range days {
		agg.dayTotals[day.Key] = decimal.Zero
	}

	index := IndexEntries(entries)

	for _, worker := range roster {
		byDay := index[worker.ID]
		for _, day := range days {
			entry, ok := byDay[day.Key]
			if !ok || !entry.countsAsWorked() {
				continue
			}
			agg.workerHours[worker.ID] = agg.workerHours[worker.ID].Add(entry.Hours)
			agg.workerDays[worker.ID]++
			agg.dayTotals[day.Key] = agg.dayTotals[day.Key].Add(entry.Hours)
			agg.totalHours = agg.totalHours.Add(entry.Hours)
		}
	}

	return agg
}

// WorkerHours returns the summed WORKED hours for a worker; zero for a
// roster worker without entries.
func (a *Aggregation) WorkerHours(workerID int64) decimal.Decimal {
	return a.workerHours[workerID]
}

// WorkerWorkedDays returns the count of distinct period days on which the
// worker has a WORKED entry with positive hours.
func (a *Aggregation) WorkerWorkedDays(workerID int64) int {
	return a.workerDays[workerID]
}

// DayTotal returns the summed hours across the roster for one day key.
func (a *Aggregation) DayTotal(dayKey string) decimal.Decimal {
	return a.dayTotals[dayKey]
}

// TotalHours is the period total across the whole roster.
func (a *Aggregation) TotalHours() decimal.Decimal {
	return a.totalHours
}

// AverageHoursPerWorker returns total hours divided by roster size, nil
// for an empty roster.
func (a *Aggregation) AverageHoursPerWorker() *decimal.Decimal {
	if a.rosterSize == 0 {
		return nil
	}
	avg := a.totalHours.Div(decimal.NewFromInt(int64(a.rosterSize)))
	return &avg
}

// Days exposes the canonical day list the aggregation was computed over.
func (a *Aggregation) Days() []Day {
	return a.days
}
