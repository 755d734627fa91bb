package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/momolog/momo/pkg/entry"
	"github.com/momolog/momo/pkg/filter"
	"github.com/momolog/momo/pkg/imagex"
	"github.com/momolog/momo/pkg/tui/theme"
)

const galleryColumns = 3

// galleryModel shows only photo entries, newest first, in a column layout.
type galleryModel struct {
	th theme.Theme

	entries []*entry.Entry
	cursor  int
}

func newGalleryModel(th theme.Theme) galleryModel {
	return galleryModel{th: th}
}

func (g *galleryModel) setEntries(entries []*entry.Entry) {
	g.entries = filter.WithImage(entries)
	if g.cursor >= len(g.entries) {
		g.cursor = 0
	}
}

func (g *galleryModel) update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "left", "h":
		if g.cursor > 0 {
			g.cursor--
		}
	case "right", "l":
		if g.cursor < len(g.entries)-1 {
			g.cursor++
		}
	case "up", "k":
		if g.cursor-galleryColumns >= 0 {
			g.cursor -= galleryColumns
		}
	case "down", "j":
		if g.cursor+galleryColumns < len(g.entries) {
			g.cursor += galleryColumns
		}
	}
	return nil
}

func (g *galleryModel) view(width, height int) string {
	if len(g.entries) == 0 {
		return g.th.Card.Meta.Render("no photos yet") + "\n"
	}

	var rows []string
	for start := 0; start < len(g.entries); start += galleryColumns {
		end := start + galleryColumns
		if end > len(g.entries) {
			end = len(g.entries)
		}
		var cells []string
		for i := start; i < end; i++ {
			cells = append(cells, g.cell(g.entries[i], i == g.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rows, "\n") + "\n" +
		g.th.Help.Render("arrows move, tab switch, q quit")
}

func (g *galleryModel) cell(e *entry.Entry, selected bool) string {
	frame := g.th.Card.Frame
	if selected {
		frame = g.th.Card.Selected
	}

	var b strings.Builder
	if w, h, err := imagex.Bounds(e.Image); err == nil {
		b.WriteString(g.th.Card.Meta.Render(fmt.Sprintf("photo %dx%d", w, h)))
	} else {
		b.WriteString(g.th.Card.Meta.Render("photo"))
	}
	b.WriteString("\n")
	b.WriteString(g.th.Card.Date.Render(e.Date.String()))
	b.WriteString("  ")
	b.WriteString(g.th.Card.Mood.Render(e.Mood.Pick().Symbol))
	if e.Text != "" {
		b.WriteString("\n")
		b.WriteString(g.th.Card.Text.Render(truncate(e.Text, 24)))
	}
	return frame.Render(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
