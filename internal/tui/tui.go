// Package tui provides an interactive week-by-week browser of excluded time.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"offtime/internal/config"
	"offtime/internal/interval"
	"offtime/internal/rules"
	"offtime/internal/timeutil"
)

// Model is the week browser model. The focused week is recomputed from the
// rule set whenever the focus moves.
type Model struct {
	set *rules.Set
	cfg config.Config

	weekStart time.Time
	excluded  []interval.Interval
	expandErr error

	keys   KeyMap
	styles Styles
	help   help.Model
	width  int
}

// New creates a week browser focused on the current week.
func New(set *rules.Set, cfg config.Config) Model {
	m := Model{
		set:    set,
		cfg:    cfg,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		help:   help.New(),
	}
	loc, _ := cfg.Location()
	m.weekStart = timeutil.StartOfWeek(time.Now().In(loc), cfg.WeekStart())
	m.refresh()
	return m
}

// refresh recomputes the excluded intervals for the focused week.
func (m *Model) refresh() {
	window := interval.New(m.weekStart, m.weekStart.AddDate(0, 0, 7))
	m.excluded, m.expandErr = m.set.Excluded(window)
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.PrevWeek):
			m.weekStart = m.weekStart.AddDate(0, 0, -7)
			m.refresh()

		case key.Matches(msg, m.keys.NextWeek):
			m.weekStart = m.weekStart.AddDate(0, 0, 7)
			m.refresh()

		case key.Matches(msg, m.keys.Today):
			loc, _ := m.cfg.Location()
			m.weekStart = timeutil.StartOfWeek(time.Now().In(loc), m.cfg.WeekStart())
			m.refresh()
		}
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Excluded time, week of %s", m.weekStart.Format("Mon, Jan 2, 2006"))
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	if m.expandErr != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.expandErr)))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	var total time.Duration
	for d := 0; d < 7; d++ {
		dayStart := m.weekStart.AddDate(0, 0, d)
		dayEnd := dayStart.AddDate(0, 0, 1)
		day := interval.New(dayStart, dayEnd)

		b.WriteString(m.styles.DayLabel.Render(dayStart.Format("Mon 2006-01-02")))

		blocks := []string{}
		for _, iv := range m.excluded {
			if !iv.Overlaps(day) {
				continue
			}
			clipped := clip(iv, day)
			total += clipped.Duration()
			blocks = append(blocks, describeBlock(clipped, day))
		}

		if len(blocks) == 0 {
			b.WriteString(m.styles.FreeDay.Render("free"))
		} else {
			b.WriteString(m.styles.Block.Render(strings.Join(blocks, "  ")))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Total.Render(fmt.Sprintf("Total excluded: %s", formatDuration(total))))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// clip restricts iv to the day bounds.
func clip(iv, day interval.Interval) interval.Interval {
	start := iv.Start
	if start.Before(day.Start) {
		start = day.Start
	}
	end := iv.End
	if end.After(day.End) {
		end = day.End
	}
	return interval.New(start, end)
}

// describeBlock renders one within-day excluded span.
func describeBlock(iv, day interval.Interval) string {
	if iv.Start.Equal(day.Start) && iv.End.Equal(day.End) {
		return "all day"
	}
	return fmt.Sprintf("%s-%s", iv.Start.Format("15:04"), iv.End.Format("15:04"))
}

// formatDuration formats a duration as a short human-readable string.
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// Run starts the week browser and blocks until the user quits.
func Run(set *rules.Set, cfg config.Config) error {
	p := tea.NewProgram(New(set, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
