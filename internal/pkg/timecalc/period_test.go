package timecalc

import "testing"

func TestParseMonth(t *testing.T) {
	period, err := ParseMonth("2025-03")
	if err != nil {
		t.Fatalf("ParseMonth returned error: %v", err)
	}
	if period.Start.Format("2006-01-02") != "2025-03-01" {
		t.Errorf("start = %s, want 2025-03-01", period.Start.Format("2006-01-02"))
	}
	if period.End.Format("2006-01-02") != "2025-03-31" {
		t.Errorf("end = %s, want 2025-03-31", period.End.Format("2006-01-02"))
	}
	if len(period.Days()) != 31 {
		t.Errorf("days = %d, want 31", len(period.Days()))
	}
}

func TestParseMonth_LeapFebruary(t *testing.T) {
	period, err := ParseMonth("2024-02")
	if err != nil {
		t.Fatalf("ParseMonth returned error: %v", err)
	}
	if len(period.Days()) != 29 {
		t.Errorf("days = %d, want 29", len(period.Days()))
	}
}

func TestParseQuarter(t *testing.T) {
	period, err := ParseQuarter("2025-Q2")
	if err != nil {
		t.Fatalf("ParseQuarter returned error: %v", err)
	}
	if period.Start.Format("2006-01-02") != "2025-04-01" {
		t.Errorf("start = %s, want 2025-04-01", period.Start.Format("2006-01-02"))
	}
	if period.End.Format("2006-01-02") != "2025-06-30" {
		t.Errorf("end = %s, want 2025-06-30", period.End.Format("2006-01-02"))
	}
}

func TestParsePeriod_Invalid(t *testing.T) {
	invalid := [][2]string{
		{"month", "2025-13"},
		{"month", "202503"},
		{"quarter", "2025-Q5"},
		{"quarter", "2025"},
		{"week", "2025-W01"},
	}
	for _, c := range invalid {
		if _, err := ParsePeriod(c[0], c[1]); err == nil {
			t.Errorf("ParsePeriod(%q, %q) expected error, got none", c[0], c[1])
		}
	}
}

func TestPeriodDays_WeekendFlag(t *testing.T) {
	period, err := ParseMonth("2025-03")
	if err != nil {
		t.Fatalf("ParseMonth returned error: %v", err)
	}
	days := period.Days()
	// 2025-03-01 is a Saturday, 2025-03-03 a Monday.
	if !days[0].Weekend {
		t.Errorf("2025-03-01 should be flagged weekend")
	}
	if days[2].Weekend {
		t.Errorf("2025-03-03 should not be flagged weekend")
	}
	if days[0].Key != "2025-03-01" || days[0].Label != "01" {
		t.Errorf("day key/label = %s/%s", days[0].Key, days[0].Label)
	}
}

func TestPeriodContains(t *testing.T) {
	period, _ := ParseMonth("2025-03")
	if !period.Contains("2025-03-15") {
		t.Errorf("2025-03-15 should be inside 2025-03")
	}
	if period.Contains("2025-04-01") {
		t.Errorf("2025-04-01 should be outside 2025-03")
	}
}
