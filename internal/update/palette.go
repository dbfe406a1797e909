package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitcal/internal/commands"
	"github.com/sandeepkv93/habitcal/internal/views"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	ctx := context.Background()
	ctrl := m.Calendar
	monthChanged := false
	res, err := commands.Execute(cmd, commands.Handlers{
		Mark: func(a commands.DayArgs) (commands.Result, error) {
			if err := m.checkDay(a.Day); err != nil {
				return commands.Result{}, err
			}
			if err := ctrl.ToggleMarked(ctx, a.Day); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("%s skip: %t", ctrl.Month().Key(a.Day), ctrl.Record(a.Day).Marked)}, nil
		},
		Habit: func(a commands.HabitArgs) (commands.Result, error) {
			if err := m.checkDay(a.Day); err != nil {
				return commands.Result{}, err
			}
			if err := ctrl.ToggleHabit(ctx, a.Day, a.Habit); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("%s %s: %t", ctrl.Month().Key(a.Day), a.Habit, ctrl.Record(a.Day).Flag(a.Habit))}, nil
		},
		Select: func(a commands.DayArgs) (commands.Result, error) {
			if err := m.checkDay(a.Day); err != nil {
				return commands.Result{}, err
			}
			ctrl.SelectDay(a.Day)
			if d, ok := ctrl.Selected(); ok {
				return commands.Result{Message: fmt.Sprintf("selected %s", ctrl.Month().Key(d))}, nil
			}
			return commands.Result{Message: "selection cleared"}, nil
		},
		Goto: func(a commands.GotoArgs) (commands.Result, error) {
			ctrl.GoTo(a.Month)
			monthChanged = true
			return commands.Result{Message: fmt.Sprintf("month: %s", a.Month)}, nil
		},
		Today: func() (commands.Result, error) {
			ctrl.GoToToday()
			monthChanged = true
			return commands.Result{Message: "jumped to today"}, nil
		},
		Next: func() (commands.Result, error) {
			ctrl.NextMonth()
			monthChanged = true
			return commands.Result{Message: fmt.Sprintf("month: %s", ctrl.Month())}, nil
		},
		Prev: func() (commands.Result, error) {
			ctrl.PreviousMonth()
			monthChanged = true
			return commands.Result{Message: fmt.Sprintf("month: %s", ctrl.Month())}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.logger.Warn("palette command failed", "command", raw, "error", err)
		return m
	}

	if monthChanged {
		m.resetCursor()
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	m.logger.Debug("palette command", "command", raw)
	return m
}

func (m Model) checkDay(day int) error {
	if m.Calendar.ValidDay(day) {
		return nil
	}
	return &commands.CommandError{
		Code:    commands.ErrCodeInvalidArgument,
		Message: fmt.Sprintf("day %d is outside %s", day, m.Calendar.Month()),
	}
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.Value())
}
