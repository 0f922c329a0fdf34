package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

const maxReports = 100 // Max reports loaded per tab

// allCatalogs is the tab that lists reports of every catalog.
var allCatalogs = registry.CatalogInfo{ID: "", Title: "All"}

// ReportsKeyMap defines the key bindings for the reports screen.
type ReportsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReportsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReportsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Next, k.Prev},
		{k.Quit},
	}
}

// DefaultReportsKeyMap returns default key bindings.
func DefaultReportsKeyMap() ReportsKeyMap {
	return ReportsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next catalog"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev catalog"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReportsModel is the Bubble Tea model for browsing saved reports.
type ReportsModel struct {
	tabs     []registry.CatalogInfo
	cursor   int
	store    *storage.Store
	reports  []storage.ReportEntry
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ReportsKeyMap
	width    int
	height   int
	quitting bool
}

// NewReportsModel creates a reports browser over the given store.
func NewReportsModel(store *storage.Store, width, height int) ReportsModel {
	tabs := append([]registry.CatalogInfo{allCatalogs}, registry.List()...)

	m := ReportsModel{
		tabs:   tabs,
		store:  store,
		keys:   DefaultReportsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadReports()
	return m
}

// createTable creates a table sized to the current window.
func (m *ReportsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Catalog", Width: 10},
		{Title: "Seed", Width: 12},
		{Title: "Moves", Width: 6},
		{Title: "Left", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadReports fetches the best reports of the selected tab.
func (m *ReportsModel) loadReports() {
	m.reports, m.loadErr = nil, nil
	if m.store != nil {
		m.reports, m.loadErr = m.store.BestReports(m.tabs[m.cursor].ID, maxReports)
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded reports.
func (m *ReportsModel) updateTableRows() {
	rows := make([]table.Row, len(m.reports))
	for i, r := range m.reports {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Catalog,
			fmt.Sprintf("%d", r.Report.Seed),
			fmt.Sprintf("%d", r.Report.Moves),
			fmt.Sprintf("%d", r.Report.BlocksRemaining),
			fmt.Sprintf("%d", r.Score),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the reports model.
func (m ReportsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the reports screen.
func (m ReportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.cursor = (m.cursor + 1) % len(m.tabs)
			m.loadReports()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.cursor = (m.cursor - 1 + len(m.tabs)) % len(m.tabs)
			m.loadReports()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Selected returns the tab currently shown.
func (m ReportsModel) Selected() registry.CatalogInfo {
	return m.tabs[m.cursor]
}

// View renders the reports screen.
func (m ReportsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("SAVED BOARDS"), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs renders the catalog tabs, falling back to arrows when narrow.
func (m ReportsModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(t.Title)
		} else {
			tabs[i] = tabStyle.Render(t.Title)
		}
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.tabs[m.cursor].Title)
	}
	return line
}

// renderTableContent renders the table or an explanatory message.
func (m ReportsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return errorStyle.Render(m.loadErr.Error())
	case len(m.reports) == 0:
		return emptyStyle.Render("No boards saved yet.\nPress S during play to save one.")
	}
	return m.table.View()
}

// centerText centers a possibly styled block horizontally.
func centerText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunReports runs the reports browser.
func RunReports(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewReportsModel(store, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
