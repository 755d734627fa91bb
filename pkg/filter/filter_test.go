package filter

import (
	"testing"

	"github.com/momolog/momo/pkg/entry"
)

func mk(id, date, text, location string, tags ...string) *entry.Entry {
	d, _ := entry.ParseDate(date)
	e := entry.New(d, text)
	e.ID = id
	e.Location = location
	e.Tags = tags
	return e
}

func ids(entries []*entry.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestIdentityFilter(t *testing.T) {
	in := []*entry.Entry{
		mk("1", "2024-01-01", "a", ""),
		mk("2", "2024-01-02", "b", ""),
	}
	out := Filter{}.Apply(in)
	if len(out) != 2 {
		t.Fatalf("identity filter dropped entries: %v", ids(out))
	}
	// The result is a copy, not the input slice.
	out[0] = nil
	if in[0] == nil {
		t.Fatal("Apply returned the input slice")
	}
}

func TestDateFilter(t *testing.T) {
	in := []*entry.Entry{
		mk("1", "2024-01-01", "a", ""),
		mk("2", "2024-01-02", "b", ""),
		mk("3", "2024-01-01", "c", ""),
	}
	d, _ := entry.ParseDate("2024-01-01")
	out := On(d).Apply(in)
	got := ids(out)
	if len(got) != 2 || got[0] != "1" || got[1] != "3" {
		t.Fatalf("date filter = %v, want [1 3]", got)
	}
}

func TestSearchFilter(t *testing.T) {
	in := []*entry.Entry{
		mk("1", "2024-01-01", "quiet", "Rome", "#sea"),
	}
	tests := []struct {
		term string
		want int
	}{
		{"sea", 1},   // tag match
		{"rome", 1},  // location, case-insensitive
		{"ROME", 1},  // case-insensitive both ways
		{"quie", 1},  // text substring
		{"xyz", 0},   // no match anywhere
		{" sea ", 1}, // surrounding whitespace is ignored
	}
	for _, tc := range tests {
		if got := len(Matching(tc.term).Apply(in)); got != tc.want {
			t.Errorf("term %q matched %d, want %d", tc.term, got, tc.want)
		}
	}
}

func TestConjunction(t *testing.T) {
	in := []*entry.Entry{
		mk("1", "2024-01-01", "sea day", ""),
		mk("2", "2024-01-02", "sea night", ""),
		mk("3", "2024-01-01", "hills", ""),
	}
	d, _ := entry.ParseDate("2024-01-01")
	f := Filter{Date: &d, Term: "sea"}
	got := ids(f.Apply(in))
	if len(got) != 1 || got[0] != "1" {
		t.Fatalf("conjunction = %v, want [1]", got)
	}
}

func TestWithImage(t *testing.T) {
	withImg := mk("1", "2024-01-01", "", "")
	withImg.Image = []byte{0xff, 0xd8}
	in := []*entry.Entry{withImg, mk("2", "2024-01-01", "text only", "")}
	out := WithImage(in)
	if len(out) != 1 || out[0].ID != "1" {
		t.Fatalf("WithImage = %v", ids(out))
	}
}

func TestFirstOn(t *testing.T) {
	in := []*entry.Entry{
		mk("1", "2024-01-02", "a", ""),
		mk("2", "2024-01-01", "b", ""),
		mk("3", "2024-01-01", "c", ""),
	}
	d, _ := entry.ParseDate("2024-01-01")
	if got := FirstOn(in, d); got == nil || got.ID != "2" {
		t.Fatalf("FirstOn = %+v, want id 2", got)
	}
	other, _ := entry.ParseDate("2020-05-05")
	if got := FirstOn(in, other); got != nil {
		t.Fatalf("FirstOn for empty day = %+v, want nil", got)
	}
}
