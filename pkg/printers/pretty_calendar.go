package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/momolog/momo/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month grid for on, marking days with entries, then
// the entries for the selected day (when one is set) below the grid. A day
// cell marks at most one entry; the list below is authoritative for days
// holding several.
func (pp *PrettyPrint) Calendar(on time.Time, selected *entry.Date, entries ...*entry.Entry) {
	then := time.Date(on.Year(), on.Month(), 1, 0, 0, 0, 0, time.Local)
	pp.PrintMonth(then, selected, entries...)

	if selected == nil {
		return
	}
	pp.Title(selected.Format("January 2"))
	day := make([]*entry.Entry, 0)
	for _, e := range entries {
		if e.Date.String() == selected.String() {
			day = append(day, e)
		}
	}
	pp.Entries(day...)
}

func (pp *PrettyPrint) PrintMonth(then time.Time, selected *entry.Date, entries ...*entry.Entry) {
	days := DaysIn(then)

	count := make([]int, days)
	for _, e := range entries {
		if e.Date.SameMonth(then) {
			count[e.Date.Day()-1]++
		}
	}

	pp.PrintMonthCount(then, selected, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, selected *entry.Date, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	sel := color.New(color.Bold, color.ReverseVideo)

	for i := 0; i < days; i++ {
		printer := l1
		if i < len(count) && count[i] > 0 {
			printer = l2
		}
		if selected != nil && selected.SameMonth(then) && selected.Day() == i+1 {
			printer = sel
		}
		printer.Printf("%2d", i+1)
		fmt.Print(" ")

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// DaysIn reports how many days the month containing then has.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, then.Location()).Day()
}

// StartDay reports the weekday of the first of the month.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, then.Location()).Weekday()
}

// NextMonth returns the first of the following month.
func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 0, 0, 0, 0, then.Location())
}

// PrevMonth returns the first of the preceding month.
func PrevMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()-1, 1, 0, 0, 0, 0, then.Location())
}
