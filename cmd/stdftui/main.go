// Command stdftui is an interactive browser for STDF/ATDF record streams.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/noonchen/go-stdf/stdf"
	"github.com/noonchen/go-stdf/stdf/atdf"
)

var (
	mutedColor  = lipgloss.Color("#888888")
	infoColor   = lipgloss.Color("#4682B4")
	borderColor = lipgloss.Color("#666666")

	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Padding(0, 1)
	statusBarStyle = lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 1)
	mutedStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	detailStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(1, 2)
)

// recordItem adapts a decoded stdf.Record into a bubbles/list.Item.
type recordItem struct {
	index int
	rec   stdf.Record
}

func (i recordItem) FilterValue() string { return i.rec.Kind().String() }
func (i recordItem) Title() string       { return fmt.Sprintf("%4d  %s", i.index, i.rec.Kind()) }
func (i recordItem) Description() string { return "" }

type model struct {
	width, height int
	records       list.Model
	selected      stdf.Record
	errorMessage  string
}

func initialModel(recs []stdf.Record) *model {
	items := make([]list.Item, len(recs))
	for i, r := range recs {
		items[i] = recordItem{index: i, rec: r}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "STDF records"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	m := &model{records: l}
	if len(recs) > 0 {
		m.selected = recs[0]
	}
	return m
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		listHeight := m.height - 8
		if listHeight < 3 {
			listHeight = 3
		}
		m.records.SetSize(m.width, listHeight)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if it, ok := m.records.SelectedItem().(recordItem); ok {
				m.selected = it.rec
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.records, cmd = m.records.Update(msg)
	if it, ok := m.records.SelectedItem().(recordItem); ok {
		m.selected = it.rec
	}
	return m, cmd
}

func (m *model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := headerStyle.Width(m.width).Render("stdftui — arrow keys to browse, enter to inspect, q to quit")
	listView := m.records.View()
	detail := detailStyle.Width(m.width - 4).Render(renderDetail(m.selected))
	status := statusBarStyle.Width(m.width).Render(fmt.Sprintf("%d record(s)", len(m.records.Items())))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		mutedStyle.Render(strings.Repeat("─", m.width)),
		listView,
		detail,
		status,
	)
}

func renderDetail(rec stdf.Record) string {
	if rec == nil {
		return "(no record selected)"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", rec.Kind())
	line, err := atdf.FormatRecord(rec, atdf.DefaultConfig())
	if err != nil {
		fmt.Fprintf(&b, "%+v\n", rec)
		return b.String()
	}
	fields := strings.SplitN(line, ":", 2)
	if len(fields) == 2 {
		for _, f := range strings.Split(fields[1], "|") {
			fmt.Fprintf(&b, "  %s\n", f)
		}
	}
	return b.String()
}

func loadRecords(path string) ([]stdf.Record, error) {
	if strings.HasSuffix(strings.ToLower(path), ".atdf") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		var recs []stdf.Record
		r := atdf.NewReader(f)
		for r.Next() {
			br, err := r.Record.ToRecord(r.Config())
			if err != nil {
				continue
			}
			recs = append(recs, br)
		}
		return recs, r.Err()
	}

	sr, err := stdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer sr.Close()

	var recs []stdf.Record
	it := sr.Records()
	for it.Next() {
		recs = append(recs, it.Record)
	}
	return recs, it.Err()
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: stdftui <file>")
		os.Exit(2)
	}

	recs, err := loadRecords(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "stdftui: %v\n", err)
		os.Exit(1)
	}

	m := initialModel(recs)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "stdftui: %v\n", err)
		os.Exit(1)
	}
}
