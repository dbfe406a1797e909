package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitcal/internal/calendar"
	"github.com/sandeepkv93/habitcal/internal/model"
	"github.com/sandeepkv93/habitcal/internal/views"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch key := msg.String(); key {
	case "h", "left":
		m.moveCursor(-1)
	case "l", "right":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-calendar.Columns)
	case "j", "down":
		m.moveCursor(calendar.Columns)
	case m.Keys.PrevMonth, "[":
		m.Calendar.PreviousMonth()
		m.resetCursor()
		m.Status = StatusBar{Text: fmt.Sprintf("month: %s", m.Calendar.Month())}
	case m.Keys.NextMonth, "]":
		m.Calendar.NextMonth()
		m.resetCursor()
		m.Status = StatusBar{Text: fmt.Sprintf("month: %s", m.Calendar.Month())}
	case m.Keys.Today:
		m.Calendar.GoToToday()
		m.resetCursor()
		m.Status = StatusBar{Text: "jumped to today"}
	case "enter", " ":
		m.Calendar.SelectDay(m.Cursor)
	case m.Keys.Mark:
		m.toggleMarked(m.targetDay())
	case "1", "2", "3", "4":
		m.toggleHabit(m.targetDay(), model.Habits[key[0]-'1'])
	}
	return m
}

// moveCursor steps within the displayed month and refuses to leave it.
func (m *Model) moveCursor(delta int) {
	next := m.Cursor + delta
	if m.Calendar.ValidDay(next) {
		m.Cursor = next
	}
}

// targetDay is the selected day, or the day under the cursor when nothing
// is selected.
func (m Model) targetDay() int {
	if d, ok := m.Calendar.Selected(); ok {
		return d
	}
	return m.Cursor
}

func (m *Model) toggleMarked(day int) {
	if err := m.Calendar.ToggleMarked(context.Background(), day); err != nil {
		m.reportSaveError(err)
		return
	}
	key := m.Calendar.Month().Key(day)
	m.logger.Debug("toggled marked", "date", key, "marked", m.Calendar.Record(day).Marked)
	m.Status = StatusBar{Text: fmt.Sprintf("%s skip: %t", key, m.Calendar.Record(day).Marked)}
}

func (m *Model) toggleHabit(day int, habit model.Habit) {
	if err := m.Calendar.ToggleHabit(context.Background(), day, habit); err != nil {
		m.reportSaveError(err)
		return
	}
	key := m.Calendar.Month().Key(day)
	done := m.Calendar.Record(day).Flag(habit)
	m.logger.Debug("toggled habit", "date", key, "habit", habit, "done", done)
	m.Status = StatusBar{Text: fmt.Sprintf("%s %s: %t", key, habit, done)}
}

func (m *Model) reportSaveError(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	m.logger.Error("persist day state", "error", err)
}

func (m Model) renderCalendarView() string {
	grid := m.Calendar.Grid()
	weeks := make([][]views.CellData, 0, 6)
	for _, week := range grid.Weeks() {
		row := make([]views.CellData, 0, len(week))
		for _, c := range week {
			row = append(row, views.CellData{
				Blank:      c.Blank,
				Day:        c.Day,
				Marked:     c.Marked,
				Today:      c.Today,
				Workout:    c.Workout,
				Selected:   c.Selected,
				Cursor:     !c.Blank && c.Day == m.Cursor,
				Completion: c.Completion,
			})
		}
		weeks = append(weeks, row)
	}
	return views.RenderCalendarPanel(views.CalendarPanelData{
		Title:    m.tr.Title(grid.Month),
		Weekdays: m.tr.Weekdays(),
		Weeks:    weeks,
	})
}

func (m Model) renderDayView() string {
	day := m.targetDay()
	rec := m.Calendar.Record(day)
	month := m.Calendar.Month()
	habits := make([]views.HabitLine, 0, len(model.Habits))
	for _, h := range model.Habits {
		habits = append(habits, views.HabitLine{
			Letter: h.Letter(),
			Label:  m.tr.Habit(h),
			Done:   rec.Flag(h),
		})
	}
	return views.RenderDayPanel(views.DayPanelData{
		Title:       fmt.Sprintf("%d %s", day, m.tr.MonthName(month)),
		Workout:     model.IsWorkoutDay(month.Year, month.Index, day),
		Marked:      rec.Marked,
		MarkedLabel: m.tr.Text("day.marked"),
		Habits:      habits,
		DoneText:    m.tr.Text("day.done", model.CompletionCount(rec)),
	})
}

func (m Model) renderLegendView() string {
	return views.RenderLegend(views.LegendData{
		Today:    m.tr.Text("legend.today"),
		Workout:  m.tr.Text("legend.workout"),
		Progress: m.tr.Text("legend.progress"),
		Marked:   m.tr.Text("legend.marked"),
	})
}

func (m Model) renderStatsView() string {
	return views.RenderStatsPanel(views.StatsPanelData{
		Caption: m.tr.Text("stats.marked"),
		Count:   m.Calendar.MarkedCount(),
	})
}
