package timecalc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type PeriodMode string

const (
	ModeMonth   PeriodMode = "month"
	ModeQuarter PeriodMode = "quarter"
)

// Period is a closed calendar window: one month ("2025-03") or one
// quarter ("2025-Q1"). Start and End are both inclusive.
type Period struct {
	Mode  PeriodMode
	Value string
	Start time.Time
	End   time.Time
}

// Day is one calendar day inside a period. Key is the canonical
// "YYYY-MM-DD" form used to index time entries.
type Day struct {
	Date    time.Time
	Key     string
	Label   string
	Weekend bool
}

const dayKeyFormat = "2006-01-02"

func ParsePeriod(mode, value string) (Period, error) {
	switch PeriodMode(mode) {
	case ModeQuarter:
		return ParseQuarter(value)
	case ModeMonth, "":
		return ParseMonth(value)
	default:
		return Period{}, fmt.Errorf("unsupported period mode: %s", mode)
	}
}

func ParseMonth(value string) (Period, error) {
	base, err := time.Parse("2006-01", value)
	if err != nil {
		return Period{}, fmt.Errorf("invalid month %q: %w", value, err)
	}

	start := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	return Period{
		Mode:  ModeMonth,
		Value: start.Format("2006-01"),
		Start: start,
		End:   end,
	}, nil
}

func ParseQuarter(value string) (Period, error) {
	parts := strings.SplitN(value, "-Q", 2)
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("invalid quarter %q", value)
	}

	year, yearErr := strconv.Atoi(parts[0])
	quarter, quarterErr := strconv.Atoi(parts[1])
	if yearErr != nil || quarterErr != nil || quarter < 1 || quarter > 4 {
		return Period{}, fmt.Errorf("invalid quarter %q", value)
	}

	start := time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, -1)

	return Period{
		Mode:  ModeQuarter,
		Value: fmt.Sprintf("%04d-Q%d", year, quarter),
		Start: start,
		End:   end,
	}, nil
}

// Days enumerates every calendar day of the period, in order.
func (p Period) Days() []Day {
	var days []Day
	for current := p.Start; !current.After(p.End); current = current.AddDate(0, 0, 1) {
		weekday := current.Weekday()
		days = append(days, Day{
			Date:    current,
			Key:     current.Format(dayKeyFormat),
			Label:   current.Format("02"),
			Weekend: weekday == time.Saturday || weekday == time.Sunday,
		})
	}
	return days
}

// Contains reports whether the given day key falls inside the period.
func (p Period) Contains(dayKey string) bool {
	date, err := time.Parse(dayKeyFormat, dayKey)
	if err != nil {
		return false
	}
	return !date.Before(p.Start) && !date.After(p.End)
}

func DayKey(date time.Time) string {
	return date.Format(dayKeyFormat)
}
