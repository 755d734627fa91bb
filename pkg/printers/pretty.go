package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/momolog/momo/pkg/entry"
	"github.com/momolog/momo/pkg/imagex"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("1717171717171  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entries renders a card per entry: polaroid style when a photo is
// attached, pinned-note style otherwise.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no memories yet\n\n")
		return
	}
	for _, e := range entries {
		if e.HasImage() {
			pp.Polaroid(e)
		} else {
			pp.Note(e)
		}
	}
}

// Polaroid prints an image entry.
func (pp *PrettyPrint) Polaroid(e *entry.Entry) {
	frame := color.New(color.Faint)
	date := color.New(color.FgHiWhite, color.Bold)
	tags := color.New(color.FgHiYellow, color.Italic, color.Faint)
	body := color.New()
	loc := color.New(color.Faint, color.Italic)

	pp.id(e)
	_, _ = frame.Print("┌── ")
	_, _ = date.Print(e.Date.String())
	_, _ = frame.Printf(" %s\n", e.Mood.String())

	dims := "photo"
	if w, h, err := imagex.Bounds(e.Image); err == nil {
		dims = fmt.Sprintf("photo %d×%d", w, h)
	}
	pp.pad()
	_, _ = frame.Printf("│ ▣ %s\n", dims)

	if e.Text != "" {
		pp.pad()
		_, _ = body.Printf("│ %s\n", e.Text)
	}
	if len(e.Tags) > 0 {
		pp.pad()
		_, _ = frame.Print("│ ")
		_, _ = tags.Println(strings.Join(e.Tags, " "))
	}
	pp.pad()
	_, _ = frame.Print("└── ")
	_, _ = loc.Printf("⚐ %s\n\n", e.Location)
}

// Note prints a text-only entry.
func (pp *PrettyPrint) Note(e *entry.Entry) {
	frame := color.New(color.Faint)
	day := color.New(color.FgHiWhite)
	tags := color.New(color.FgHiYellow, color.Italic, color.Faint)
	body := color.New(color.Italic)

	weekday := strings.ToUpper(e.Date.Weekday().String())

	pp.id(e)
	_, _ = frame.Print("◉ ")
	_, _ = day.Printf("%s %s %s\n", weekday, e.Date.String(), e.Mood.String())
	pp.pad()
	_, _ = body.Printf("  “%s”\n", e.Text)
	if len(e.Tags) > 0 {
		pp.pad()
		_, _ = frame.Print("  ")
		_, _ = tags.Println(strings.Join(e.Tags, " "))
	}
	fmt.Println("")
}

// Table lists entries one row each, for scripting-friendly output.
func (pp *PrettyPrint) Table(entries ...*entry.Entry) {
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("ID", "DATE", "MOOD", "PHOTO", "LOCATION", "TAGS", "TEXT")
	for _, e := range entries {
		photo := ""
		if e.HasImage() {
			photo = "▣"
		}
		table.AddRow(e.ID, e.Date.String(), e.Mood.Key(), photo, e.Location, strings.Join(e.Tags, " "), e.Text)
	}
	fmt.Println(table)
}

func (pp *PrettyPrint) id(e *entry.Entry) {
	if !pp.ShowID {
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	_, _ = y.Print(e.ID)
	if pad := len(spacing) - len(e.ID); pad > 0 {
		_, _ = y.Print(strings.Repeat(" ", pad))
	}
}

func (pp *PrettyPrint) pad() {
	if pp.ShowID {
		fmt.Print(spacing)
	}
}
