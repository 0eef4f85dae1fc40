package timecalc

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseHHMM(t *testing.T) {
	cases := []struct {
		input string
		want  string // decimal hours as string
	}{
		{"08:00", "8"},
		{"08:07", "8"},     // 7 minutes rounds down
		{"08:08", "8.25"},  // 8 minutes rounds up
		{"08:15", "8.25"},
		{"08:30", "8.5"},
		{"08:45", "8.75"},
		{"00:00", "0"},
		{"07:52", "7.75"},
		{"07:53", "8"},
		{"10:59", "11"},
	}
	for _, c := range cases {
		got, err := ParseHHMM(c.input)
		if err != nil {
			t.Fatalf("ParseHHMM(%q) returned error: %v", c.input, err)
		}
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("ParseHHMM(%q) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestParseHHMM_Invalid(t *testing.T) {
	invalid := []string{"", "8", "abc", "aa:bb", "08:xx"}
	for _, input := range invalid {
		if _, err := ParseHHMM(input); err == nil {
			t.Errorf("ParseHHMM(%q) expected error, got none", input)
		}
	}
}

func TestFormatHHMM(t *testing.T) {
	cases := []struct {
		hours string
		want  string
	}{
		{"8", "08:00"},
		{"8.25", "08:15"},
		{"8.5", "08:30"},
		{"0", "00:00"},
		{"12.75", "12:45"},
		{"160.5", "160:30"},
	}
	for _, c := range cases {
		got := FormatHHMM(decimal.RequireFromString(c.hours))
		if got != c.want {
			t.Errorf("FormatHHMM(%s) = %q, want %q", c.hours, got, c.want)
		}
	}
}

// Values already on a quarter-hour boundary must survive a parse/format
// round trip unchanged.
func TestHHMMRoundTrip(t *testing.T) {
	for _, value := range []string{"00:00", "00:15", "07:30", "08:00", "23:45"} {
		hours, err := ParseHHMM(value)
		if err != nil {
			t.Fatalf("ParseHHMM(%q) returned error: %v", value, err)
		}
		if got := FormatHHMM(hours); got != value {
			t.Errorf("round trip of %q = %q", value, got)
		}
	}
}

func TestSumHHMM(t *testing.T) {
	cases := []struct {
		values []string
		want   string
	}{
		{[]string{"08:00", "ABS", "07:30"}, "15:30"},
		{[]string{}, "00:00"},
		{[]string{"", "", ""}, "00:00"},
		{[]string{"00:45", "00:30"}, "01:15"},
		{[]string{"10:00", "ABS", "", "10:00", "04:15"}, "24:15"},
	}
	for _, c := range cases {
		got := SumHHMM(c.values)
		if got != c.want {
			t.Errorf("SumHHMM(%v) = %q, want %q", c.values, got, c.want)
		}
	}
}

func TestSnapQuarterHour(t *testing.T) {
	cases := []struct {
		hours string
		want  string
	}{
		{"8.1", "8"},
		{"8.2", "8.25"},
		{"7.5", "7.5"},
		{"-1", "0"},
	}
	for _, c := range cases {
		got := SnapQuarterHour(decimal.RequireFromString(c.hours))
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("SnapQuarterHour(%s) = %s, want %s", c.hours, got, c.want)
		}
	}
}
