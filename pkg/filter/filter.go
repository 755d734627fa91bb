// Package filter selects the subset of entries a view should render. It is
// pure: filters never mutate the input slice and hold no state of their own.
package filter

import (
	"strings"

	"github.com/momolog/momo/pkg/entry"
)

// Filter narrows an entry list. A nil Date means no date restriction; a
// blank Term means no search restriction. Both together are a conjunction;
// neither is the identity filter.
type Filter struct {
	Date *entry.Date
	Term string
}

// On restricts to entries dated exactly d.
func On(d entry.Date) Filter {
	return Filter{Date: &d}
}

// Matching restricts to entries matching the search term.
func Matching(term string) Filter {
	return Filter{Term: term}
}

// Apply returns the entries that pass the filter, preserving input order.
func (f Filter) Apply(entries []*entry.Entry) []*entry.Entry {
	if f.Date == nil && strings.TrimSpace(f.Term) == "" {
		return append([]*entry.Entry(nil), entries...)
	}
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		if f.Date != nil && e.Date.String() != f.Date.String() {
			continue
		}
		if !f.matchesTerm(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (f Filter) matchesTerm(e *entry.Entry) bool {
	term := strings.ToLower(strings.TrimSpace(f.Term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Text), term) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Location), term) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// WithImage returns only entries that carry a photo, preserving order. The
// gallery view applies no other filter.
func WithImage(entries []*entry.Entry) []*entry.Entry {
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e.HasImage() {
			out = append(out, e)
		}
	}
	return out
}

// FirstOn returns the first entry dated d, or nil. The calendar grid marks a
// day with at most one entry; the list below the grid is authoritative for
// days holding several.
func FirstOn(entries []*entry.Entry, d entry.Date) *entry.Entry {
	want := d.String()
	for _, e := range entries {
		if e != nil && e.Date.String() == want {
			return e
		}
	}
	return nil
}
