package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitcal/internal/model"
	"github.com/sandeepkv93/habitcal/internal/views"
)

func (m Model) Init() tea.Cmd {
	return waitForDayChange(m.Calendar.Now())
}

func waitForDayChange(now time.Time) tea.Cmd {
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	return tea.Tick(next.Sub(now), func(time.Time) tea.Msg { return DayChangedMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		return m.handleCalendarKey(typed), nil
	case GotoMonthMsg:
		m.Calendar.GoTo(typed.Month)
		m.resetCursor()
		return m, nil
	case DayChangedMsg:
		_, selected := m.Calendar.Selected()
		if !selected && m.Calendar.Month().Key(m.Cursor) == m.todayKey {
			m.resetCursor()
		}
		m.todayKey = model.DateKeyOf(m.Calendar.Now())
		return m, waitForDayChange(m.Calendar.Now())
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.logger.Error("app error", "error", typed.Err)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := m.renderCalendarView() + "\n\n" + m.renderStatsView()
	if palette := m.renderCommandPalette(); palette != "" {
		leftPane += "\n" + palette
	}
	rightPane := m.renderDayView() + "\n" + m.renderLegendView()
	if m.HelpVisible {
		rightPane = m.renderHelpView()
	}

	selected := "-"
	if d, ok := m.Calendar.Selected(); ok {
		selected = m.Calendar.Month().Key(d)
	}
	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("habitcal | month: %s | selected: %s", m.Calendar.Month(), selected),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s/%s month | %s today | %s skip | 1-4 habits | / cmd | %s help | %s quit",
			m.Keys.PrevMonth, m.Keys.NextMonth, m.Keys.Today, m.Keys.Mark, m.Keys.Help, m.Keys.Quit),
	})
}
