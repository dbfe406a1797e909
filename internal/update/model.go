package update

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/habitcal/internal/calendar"
	"github.com/sandeepkv93/habitcal/internal/i18n"
	"github.com/sandeepkv93/habitcal/internal/model"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	PrevMonth string
	NextMonth string
	Today     string
	Mark      string
	Help      string
	Quit      string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	Calendar    *calendar.Controller
	Cursor      int
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	todayKey     string
	tr           i18n.Translator
	logger       *slog.Logger
	commandInput textinput.Model
	helpModel    help.Model
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// GotoMonthMsg switches the displayed month, clearing the selection.
type GotoMonthMsg struct {
	Month model.Month
}

// DayChangedMsg fires at local midnight so the today marker moves.
type DayChangedMsg struct{}

func NewModel(ctrl *calendar.Controller) Model {
	return NewModelWithConfig(ctrl, DefaultRuntimeConfig(), nil)
}

func NewModelWithConfig(ctrl *calendar.Controller, cfg RuntimeConfig, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := Model{
		Calendar: ctrl,
		Keys: GlobalKeyMap{
			PrevMonth: "p",
			NextMonth: "n",
			Today:     "t",
			Mark:      "x",
			Help:      "?",
			Quit:      "q",
		},
		tr:     i18n.New(cfg.Locale),
		logger: logger,
	}
	m.todayKey = model.DateKeyOf(ctrl.Now())
	m.initBubbleComponents()
	m.resetCursor()
	return m
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 64
	m.commandInput.Width = 48

	m.helpModel = help.New()
}

// resetCursor puts the cursor on today when today is displayed, on the
// selected day when there is one, and on day 1 otherwise.
func (m *Model) resetCursor() {
	if d, ok := m.Calendar.Selected(); ok {
		m.Cursor = d
		return
	}
	now := m.Calendar.Now()
	month := m.Calendar.Month()
	if model.MonthOf(now) == month {
		m.Cursor = now.Day()
		return
	}
	m.Cursor = 1
}
