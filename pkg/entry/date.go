package entry

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layout is the wire format for entry dates. Dates are compared as strings
// everywhere, so the zero padding matters.
const Layout = "2006-01-02"

// Date is a calendar day without a time component.
type Date struct {
	time.Time
}

func ParseDate(v string) (Date, error) {
	t, err := time.ParseInLocation(Layout, v, time.Local)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Today returns the current local calendar day.
func Today() Date {
	now := time.Now()
	return Date{Time: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)}
}

// On truncates an arbitrary time to its calendar day.
func On(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

func (d Date) SameDay(then time.Time) bool {
	return d.Day() == then.Day() &&
		d.Month() == then.Month() &&
		d.Year() == then.Year()
}

func (d Date) SameMonth(then time.Time) bool {
	return d.Month() == then.Month() &&
		d.Year() == then.Year()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(Layout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(v)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}
