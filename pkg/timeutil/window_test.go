package timeutil

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		label   string
		wantErr bool
	}{
		{"1w", 7 * 24 * time.Hour, "1w", false},
		{"3d", 3 * 24 * time.Hour, "3d", false},
		{"1mo", 30 * 24 * time.Hour, "1mo", false},
		{"1w2d", 9 * 24 * time.Hour, "1w2d", false},
		{"", 7 * 24 * time.Hour, "1w", false}, // default
		{"2 weeks", 14 * 24 * time.Hour, "2w", false},
		{"0d", 0, "", true},
		{"soon", 0, "", true},
		{"5x", 0, "", true},
	}
	for _, tc := range tests {
		got, label, err := ParseWindow(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseWindow(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWindow(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want || label != tc.label {
			t.Errorf("ParseWindow(%q) = %v %q, want %v %q", tc.in, got, label, tc.want, tc.label)
		}
	}
}

func TestCutoffTruncatesToDay(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.Local)
	got, label, err := Cutoff(now, "1w")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 3, 3, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("Cutoff = %v, want %v", got, want)
	}
	if label != "1w" {
		t.Fatalf("label = %q", label)
	}
}

func TestFormatWindow(t *testing.T) {
	if got := FormatWindow(0); got != "0h" {
		t.Errorf("FormatWindow(0) = %q", got)
	}
	if got := FormatWindow(9 * 24 * time.Hour); got != "1w2d" {
		t.Errorf("FormatWindow(9d) = %q", got)
	}
}
