// Package tui implements the interactive journal browser. The root model
// owns the tab bar and a recovery boundary; each tab is its own model fed
// from the shared entry snapshot.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/momolog/momo/pkg/app"
	"github.com/momolog/momo/pkg/tui/theme"
)

type tab int

const (
	tabHome tab = iota
	tabCalendar
	tabGallery
)

var tabLabels = []string{"Home", "Calendar", "Gallery"}

// Model is the root of the UI. A panic in any tab's update or view is
// caught here and swapped for a fallback screen with a reload action, so a
// rendering bug never takes the journal down with it.
type Model struct {
	service *app.Service
	th      theme.Theme

	width  int
	height int
	active tab

	home     homeModel
	calendar calendarModel
	gallery  galleryModel

	failed   bool
	panicVal any
}

// New constructs the root model over a loaded service.
func New(service *app.Service) *Model {
	th := theme.Default()
	m := &Model{
		service:  service,
		th:       th,
		home:     newHomeModel(th),
		calendar: newCalendarModel(th),
		gallery:  newGalleryModel(th),
	}
	m.refresh()
	return m
}

// Run launches the Bubble Tea program.
func Run(service *app.Service) error {
	p := tea.NewProgram(New(service), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// refresh re-reads the entry snapshot into every tab.
func (m *Model) refresh() {
	entries := m.service.Entries()
	m.home.setEntries(entries)
	m.calendar.setEntries(entries)
	m.gallery.setEntries(entries)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.home.init()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.failed = true
			m.panicVal = r
			model, cmd = m, nil
		}
	}()

	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		return m, nil
	case tea.KeyMsg:
		if v.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.failed {
			return m.updateFailed(v)
		}
		if c, handled := m.updateTabs(v); handled {
			return m, c
		}
	}

	if m.failed {
		return m, nil
	}

	var c tea.Cmd
	switch m.active {
	case tabHome:
		c = m.home.update(msg)
	case tabCalendar:
		c = m.calendar.update(msg)
	case tabGallery:
		c = m.gallery.update(msg)
	}
	return m, c
}

func (m *Model) updateFailed(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "r":
		if err := m.service.Load(context.Background()); err == nil {
			m.refresh()
			m.failed = false
			m.panicVal = nil
		}
	}
	return m, nil
}

// updateTabs handles keys owned by the root: tab switching and quit. Keys
// are passed through while the home search field is capturing input.
func (m *Model) updateTabs(key tea.KeyMsg) (tea.Cmd, bool) {
	if m.active == tabHome && m.home.searching() {
		return nil, false
	}
	switch key.String() {
	case "q":
		return tea.Quit, true
	case "tab":
		m.active = (m.active + 1) % 3
		return nil, true
	case "shift+tab":
		m.active = (m.active + 2) % 3
		return nil, true
	case "1":
		m.active = tabHome
		return nil, true
	case "2":
		m.active = tabCalendar
		return nil, true
	case "3":
		m.active = tabGallery
		return nil, true
	}
	return nil, false
}

// View implements tea.Model.
func (m *Model) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			m.failed = true
			m.panicVal = r
			out = m.failedView()
		}
	}()

	if m.failed {
		return m.failedView()
	}

	var body string
	switch m.active {
	case tabHome:
		body = m.home.view(m.width, m.height-2)
	case tabCalendar:
		body = m.calendar.view(m.width, m.height-2)
	case tabGallery:
		body = m.gallery.view(m.width, m.height-2)
	}
	return m.tabBar() + "\n" + body
}

func (m *Model) tabBar() string {
	parts := make([]string, 0, len(tabLabels))
	for i, label := range tabLabels {
		style := m.th.Tabs.Inactive
		if tab(i) == m.active {
			style = m.th.Tabs.Active
		}
		parts = append(parts, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) failedView() string {
	var b strings.Builder
	b.WriteString(m.th.Err.Render("something went wrong"))
	b.WriteString("\n\n")
	if m.panicVal != nil {
		b.WriteString(m.th.Card.Meta.Render(fmt.Sprintf("%v", m.panicVal)))
		b.WriteString("\n\n")
	}
	b.WriteString(m.th.Help.Render("r reload entries, q quit"))
	return b.String()
}
