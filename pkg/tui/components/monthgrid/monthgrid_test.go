package monthgrid

import (
	"strings"
	"testing"
	"time"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		month time.Time
		want  int
	}{
		{month(2026, time.January), 31},
		{month(2026, time.February), 28},
		{month(2028, time.February), 29},
		{month(2026, time.April), 30},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.month); got != tt.want {
			t.Errorf("DaysIn(%s) = %d, want %d", tt.month.Month(), got, tt.want)
		}
	}
}

func TestRenderPlain(t *testing.T) {
	// February 2026 starts on a Sunday and fits exactly four rows.
	opts := Options{ShowHeader: true}
	out := Render(month(2026, time.February), nil, opts)

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header plus 4 rows, got %d lines", len(lines))
	}
	if lines[0] != "Su Mo Tu We Th Fr Sa" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], " 1") {
		t.Errorf("first row should start with day 1, got %q", lines[1])
	}
	if !strings.Contains(lines[4], "28") {
		t.Errorf("last row should hold day 28, got %q", lines[4])
	}
}

func TestRenderZeroMonth(t *testing.T) {
	if out := Render(time.Time{}, nil, DefaultOptions()); out != "" {
		t.Errorf("zero month should render empty, got %q", out)
	}
}

func TestDayAtAndPosOfRoundTrip(t *testing.T) {
	m := month(2026, time.March) // starts on a Sunday
	for day := 1; day <= DaysIn(m); day++ {
		row, col := PosOf(m, day)
		if got := DayAt(m, row, col); got != day {
			t.Fatalf("PosOf/DayAt mismatch for day %d: got %d", day, got)
		}
	}
}

func TestDayAtBlankCells(t *testing.T) {
	m := month(2026, time.January) // starts on a Thursday
	if got := DayAt(m, 0, 0); got != 0 {
		t.Errorf("leading blank cell should map to 0, got %d", got)
	}
	if got := DayAt(m, 0, 4); got != 1 {
		t.Errorf("Thursday of the first row should be day 1, got %d", got)
	}
	if got := DayAt(m, Rows(m)-1, 6); got != 31 {
		t.Errorf("last cell should be day 31, got %d", got)
	}
}

func TestRows(t *testing.T) {
	if got := Rows(month(2026, time.February)); got != 4 {
		t.Errorf("February 2026 spans 4 rows, got %d", got)
	}
	if got := Rows(month(2026, time.August)); got != 6 {
		t.Errorf("August 2026 spans 6 rows, got %d", got)
	}
}
