package entry

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/momolog/momo/pkg/mood"
)

// Entry is one journal record. The zero mood is the default mood, so old
// records without one load correctly.
type Entry struct {
	ID       string    `json:"id"`
	Date     Date      `json:"date"`
	Image    []byte    `json:"image,omitempty"`
	Text     string    `json:"text,omitempty"`
	Mood     mood.Mood `json:"mood"`
	Location string    `json:"location,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
}

func New(date Date, text string) *Entry {
	return &Entry{
		Date: date,
		Text: text,
		Mood: mood.Default,
	}
}

func (e *Entry) HasImage() bool {
	return e != nil && len(e.Image) > 0
}

// Clone returns a deep copy so cached lists never alias store-owned records.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	if e.Image != nil {
		cp.Image = append([]byte(nil), e.Image...)
	}
	if e.Tags != nil {
		cp.Tags = append([]string(nil), e.Tags...)
	}
	return &cp
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s  %s", e.Mood.String(), e.Date.String(), e.Text)
}

// SortNewestFirst orders entries by id descending. Ids are minted from
// timestamps, so this is newest-first; non-numeric ids sort after numeric
// ones by plain string comparison.
func SortNewestFirst(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left := entries[i]
		right := entries[j]
		if left == nil || right == nil {
			return left != nil
		}
		ln, lerr := strconv.ParseInt(left.ID, 10, 64)
		rn, rerr := strconv.ParseInt(right.ID, 10, 64)
		switch {
		case lerr == nil && rerr == nil:
			return ln > rn
		case lerr == nil:
			return true
		case rerr == nil:
			return false
		default:
			return left.ID > right.ID
		}
	})
}
