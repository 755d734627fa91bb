package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/momolog/momo/pkg/entry"
	"github.com/momolog/momo/pkg/filter"
	"github.com/momolog/momo/pkg/tui/components/monthgrid"
	"github.com/momolog/momo/pkg/tui/theme"
)

// calendarModel is the month grid tab. The cursor walks days, enter toggles
// a selection, and selecting the already selected day clears it.
type calendarModel struct {
	th theme.Theme

	entries []*entry.Entry
	month   time.Time
	cursor  int
	// selected is nil when no day is pinned.
	selected *entry.Date
}

func newCalendarModel(th theme.Theme) calendarModel {
	now := time.Now()
	return calendarModel{
		th:     th,
		month:  time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
		cursor: now.Day(),
	}
}

func (c *calendarModel) setEntries(entries []*entry.Entry) {
	c.entries = entries
}

func (c *calendarModel) update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "left", "h":
		c.moveDay(-1)
	case "right", "l":
		c.moveDay(1)
	case "up", "k":
		c.moveDay(-7)
	case "down", "j":
		c.moveDay(7)
	case "pgup", "[":
		c.moveMonth(-1)
	case "pgdown", "]":
		c.moveMonth(1)
	case "enter", " ":
		c.toggleSelect()
	case "esc":
		c.selected = nil
	}
	return nil
}

// moveDay shifts the cursor, rolling into the previous or next month at the
// edges.
func (c *calendarModel) moveDay(delta int) {
	day := c.cursor + delta
	for day < 1 {
		c.month = c.month.AddDate(0, -1, 0)
		day += monthgrid.DaysIn(c.month)
	}
	for day > monthgrid.DaysIn(c.month) {
		day -= monthgrid.DaysIn(c.month)
		c.month = c.month.AddDate(0, 1, 0)
	}
	c.cursor = day
}

func (c *calendarModel) moveMonth(delta int) {
	c.month = c.month.AddDate(0, delta, 0)
	if max := monthgrid.DaysIn(c.month); c.cursor > max {
		c.cursor = max
	}
}

func (c *calendarModel) toggleSelect() {
	d := c.cursorDate()
	if c.selected != nil && c.selected.String() == d.String() {
		c.selected = nil
		return
	}
	c.selected = &d
}

func (c *calendarModel) cursorDate() entry.Date {
	return entry.On(time.Date(c.month.Year(), c.month.Month(), c.cursor, 0, 0, 0, 0, time.Local))
}

// entryDays reports which days of the shown month have at least one entry.
func (c *calendarModel) entryDays() map[int]bool {
	days := make(map[int]bool)
	for _, e := range c.entries {
		if e.Date.SameMonth(c.month) {
			days[e.Date.Day()] = true
		}
	}
	return days
}

func (c *calendarModel) view(width, height int) string {
	var b strings.Builder
	b.WriteString(c.th.Grid.Month.Render(c.month.Format("January 2006")))
	b.WriteString("\n")

	entryDays := c.entryDays()
	days := make([]monthgrid.Day, 0, monthgrid.DaysIn(c.month))
	now := time.Now()
	for day := 1; day <= monthgrid.DaysIn(c.month); day++ {
		d := monthgrid.Day{
			Day:      day,
			HasEntry: entryDays[day],
			IsToday: c.month.Year() == now.Year() &&
				c.month.Month() == now.Month() && day == now.Day(),
			IsSelected: day == c.cursor,
		}
		days = append(days, d)
	}
	b.WriteString(monthgrid.Render(c.month, days, monthgrid.Options{
		HeaderStyle:   c.th.Grid.Header,
		EmptyStyle:    c.th.Grid.Empty,
		EntryStyle:    c.th.Grid.Entry,
		TodayStyle:    c.th.Grid.Today,
		SelectedStyle: c.th.Grid.Selected,
		ShowHeader:    true,
	}))
	b.WriteString("\n\n")

	if c.selected != nil {
		b.WriteString(c.th.Card.Date.Render(c.selected.String()))
		b.WriteString("\n")
		onDay := filter.On(*c.selected).Apply(c.entries)
		if len(onDay) == 0 {
			b.WriteString(c.th.Card.Meta.Render("no entries"))
			b.WriteString("\n")
		}
		for _, e := range onDay {
			line := e.Mood.String()
			if e.Text != "" {
				line += "  " + e.Text
			} else if e.HasImage() {
				line += "  (photo)"
			}
			b.WriteString(c.th.Card.Text.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(c.th.Help.Render("arrows move, [/] month, enter select, esc clear"))
	return b.String()
}
