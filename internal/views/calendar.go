package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type CellData struct {
	Blank      bool
	Day        int
	Marked     bool
	Today      bool
	Workout    bool
	Selected   bool
	Cursor     bool
	Completion int
}

type CalendarPanelData struct {
	Title    string
	Weekdays []string
	Weeks    [][]CellData
}

type HabitLine struct {
	Letter string
	Label  string
	Done   bool
}

type DayPanelData struct {
	Title       string
	Workout     bool
	Marked      bool
	MarkedLabel string
	Habits      []HabitLine
	DoneText    string
}

type StatsPanelData struct {
	Caption string
	Count   int
}

type LegendData struct {
	Today    string
	Workout  string
	Progress string
	Marked   string
}

const (
	gridColumns = 7
	cellWidth   = 9
)

var (
	todayStyle    = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("13"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	markedStyle   = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("9"))
	workoutStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	weekdayStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
)

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(data.Title) + "\n")
	b.WriteString("[hjkl]move [enter]select [x]skip [1-4]habit [p/n]month\n\n")

	for _, wd := range data.Weekdays {
		b.WriteString(weekdayStyle.Render(pad(wd)))
	}
	b.WriteString("\n")
	for _, week := range data.Weeks {
		for _, cell := range week {
			b.WriteString(renderCell(cell))
		}
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderCell(c CellData) string {
	if c.Blank {
		return strings.Repeat(" ", cellWidth)
	}
	num := fmt.Sprintf("%2d", c.Day)
	switch {
	case c.Marked:
		num = markedStyle.Render(num)
	case c.Today:
		num = todayStyle.Render(num)
	}
	if c.Selected {
		num = selectedStyle.Render(num)
	}

	workout := " "
	if c.Workout {
		workout = workoutStyle.Render("*")
	}
	progress := "    "
	if c.Completion > 0 {
		progress = doneStyle.Render(strings.Repeat("•", c.Completion)) + strings.Repeat("·", 4-c.Completion)
	}

	left, right := " ", " "
	if c.Cursor {
		left, right = "[", "]"
	}
	return left + num + workout + progress + right
}

func pad(s string) string {
	w := lipgloss.Width(s)
	if w >= cellWidth {
		return s
	}
	return " " + s + strings.Repeat(" ", cellWidth-w-1)
}

func RenderDayPanel(data DayPanelData) string {
	var b strings.Builder
	title := data.Title
	if data.Workout {
		title += " " + workoutStyle.Render("*")
	}
	b.WriteString(headerStyle.Render(title) + "\n")
	mark := "[ ]"
	if data.Marked {
		mark = markedStyle.Render("[x]")
	}
	b.WriteString(fmt.Sprintf("%s %s\n\n", mark, data.MarkedLabel))
	for _, h := range data.Habits {
		box := "[ ]"
		if h.Done {
			box = doneStyle.Render("[✓]")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", h.Letter, box, h.Label))
	}
	b.WriteString("\n" + data.DoneText)
	return b.String()
}

func RenderStatsPanel(data StatsPanelData) string {
	return fmt.Sprintf("%s: %d", data.Caption, data.Count)
}

// RenderLegend renders the cell legend as markdown.
func RenderLegend(data LegendData) string {
	md := fmt.Sprintf("- **12** %s\n- **\\*** %s\n- **••··** %s\n- ~~12~~ %s\n",
		data.Today, data.Workout, data.Progress, data.Marked)
	return RenderMarkdown(md)
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s", strings.Join(data.Bindings, "\n"), data.HelpView)
}
