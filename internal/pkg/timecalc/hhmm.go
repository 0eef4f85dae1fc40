package timecalc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// AbsenceLabel is the marker rendered (and accepted by SumHHMM) for an
// explicit absence cell.
const AbsenceLabel = "ABS"

var minutesPerHour = decimal.NewFromInt(60)

// ParseHHMM converts an "HH:MM" string into decimal hours, snapping the
// minutes to the nearest 15-minute boundary first. Stored hour values are
// therefore always multiples of 0.25. "08:07" parses as 8.0, "08:08" as
// 8.25.
func ParseHHMM(value string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty time value")
	}

	parts := strings.Split(trimmed, ":")
	if len(parts) < 2 {
		return decimal.Zero, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}

	hours, hoursErr := strconv.Atoi(parts[0])
	minutes, minutesErr := strconv.Atoi(parts[1])
	if hoursErr != nil || minutesErr != nil {
		return decimal.Zero, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}

	totalMinutes := hours*60 + minutes
	if totalMinutes < 0 {
		return decimal.Zero, fmt.Errorf("invalid time %q: negative duration", value)
	}

	return decimal.NewFromInt(int64(snapToQuarter(totalMinutes))).Div(minutesPerHour), nil
}

// snapToQuarter rounds a minute count to the nearest multiple of 15,
// halves rounding up (7 minutes down, 8 minutes up).
func snapToQuarter(totalMinutes int) int {
	remainder := totalMinutes % 15
	if remainder < 8 {
		return totalMinutes - remainder
	}
	return totalMinutes + 15 - remainder
}

// SnapQuarterHour quantizes a decimal hour value to the nearest
// quarter hour, the same rule ParseHHMM applies to raw input.
func SnapQuarterHour(hours decimal.Decimal) decimal.Decimal {
	totalMinutes := int(hours.Mul(minutesPerHour).Round(0).IntPart())
	if totalMinutes < 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(snapToQuarter(totalMinutes))).Div(minutesPerHour)
}

// FormatHHMM renders decimal hours as zero-padded "HH:MM".
func FormatHHMM(hours decimal.Decimal) string {
	totalMinutes := hours.Mul(minutesPerHour).Round(0).IntPart()
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// SumHHMM adds a list of "HH:MM" labels and returns the total in the same
// form. Empty strings and absence markers contribute zero; they are never
// parse errors.
func SumHHMM(values []string) string {
	var totalMinutes int64
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" || strings.EqualFold(trimmed, AbsenceLabel) {
			continue
		}
		parts := strings.Split(trimmed, ":")
		if len(parts) < 2 {
			continue
		}
		hours, hoursErr := strconv.Atoi(parts[0])
		minutes, minutesErr := strconv.Atoi(parts[1])
		if hoursErr != nil || minutesErr != nil {
			continue
		}
		totalMinutes += int64(hours)*60 + int64(minutes)
	}
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}
