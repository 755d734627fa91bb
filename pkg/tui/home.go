package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/momolog/momo/pkg/entry"
	"github.com/momolog/momo/pkg/filter"
	"github.com/momolog/momo/pkg/imagex"
	"github.com/momolog/momo/pkg/tui/theme"
)

// homeModel is the default tab: a search box over the full journal and the
// matching entries as cards, newest first.
type homeModel struct {
	th theme.Theme

	search  textinput.Model
	entries []*entry.Entry
	visible []*entry.Entry
	cursor  int
}

func newHomeModel(th theme.Theme) homeModel {
	ti := textinput.New()
	ti.Placeholder = "search text, location or tags"
	ti.Prompt = "/ "
	ti.CharLimit = 80
	return homeModel{th: th, search: ti}
}

func (h *homeModel) init() tea.Cmd {
	return textinput.Blink
}

func (h *homeModel) setEntries(entries []*entry.Entry) {
	h.entries = entries
	h.applySearch()
}

func (h *homeModel) searching() bool {
	return h.search.Focused()
}

func (h *homeModel) applySearch() {
	h.visible = filter.Matching(h.search.Value()).Apply(h.entries)
	if h.cursor >= len(h.visible) {
		h.cursor = 0
	}
}

func (h *homeModel) update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		if h.search.Focused() {
			switch key.String() {
			case "esc", "enter":
				h.search.Blur()
				return nil
			}
			var cmd tea.Cmd
			h.search, cmd = h.search.Update(msg)
			h.applySearch()
			return cmd
		}
		switch key.String() {
		case "/":
			return h.search.Focus()
		case "up", "k":
			if h.cursor > 0 {
				h.cursor--
			}
		case "down", "j":
			if h.cursor < len(h.visible)-1 {
				h.cursor++
			}
		}
		return nil
	}

	var cmd tea.Cmd
	h.search, cmd = h.search.Update(msg)
	return cmd
}

func (h *homeModel) view(width, height int) string {
	var b strings.Builder
	b.WriteString(h.search.View())
	b.WriteString("\n\n")

	if len(h.visible) == 0 {
		b.WriteString(h.th.Card.Meta.Render("no entries"))
		b.WriteString("\n")
		return b.String()
	}

	for i, e := range h.visible {
		frame := h.th.Card.Frame
		if i == h.cursor {
			frame = h.th.Card.Selected
		}
		b.WriteString(frame.Render(h.card(e)))
		b.WriteString("\n")
	}
	b.WriteString(h.th.Help.Render("/ search, j/k move, tab switch, q quit"))
	return b.String()
}

func (h *homeModel) card(e *entry.Entry) string {
	var b strings.Builder
	b.WriteString(h.th.Card.Date.Render(e.Date.String()))
	b.WriteString("  ")
	b.WriteString(h.th.Card.Mood.Render(e.Mood.String()))
	b.WriteString("\n")
	if e.HasImage() {
		if w, ht, err := imagex.Bounds(e.Image); err == nil {
			b.WriteString(h.th.Card.Meta.Render(fmt.Sprintf("photo %dx%d", w, ht)))
			b.WriteString("\n")
		}
	}
	if e.Text != "" {
		b.WriteString(h.th.Card.Text.Render(e.Text))
		b.WriteString("\n")
	}
	meta := e.Location
	if len(e.Tags) > 0 {
		meta += "  " + strings.Join(e.Tags, " ")
	}
	b.WriteString(h.th.Card.Meta.Render(meta))
	return b.String()
}
