package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/habitcal/internal/calendar"
	"github.com/sandeepkv93/habitcal/internal/i18n"
	"github.com/sandeepkv93/habitcal/internal/model"
	"github.com/spf13/cobra"
)

const showCellWidth = 6

var showCmd = LeafCommand{
	Use:   "show [YYYY-MM]",
	Short: "Print a month grid",
	Long: "Print the month grid with skipped days (x), workout days (*) and the number of\n" +
		"habits done per day. Defaults to the current month.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(commandContext(cmd), time.Now)
		if err != nil {
			return err
		}
		defer s.Close()
		month := ""
		if len(args) > 0 {
			month = args[0]
		}
		return runShow(cmd, s, month, painterFor(cmd.OutOrStdout()))
	},
}.Build()

func runShow(cmd *cobra.Command, s *session, month string, p painter) error {
	if month != "" {
		m, err := model.ParseMonth(month)
		if err != nil {
			return err
		}
		s.ctrl.GoTo(m)
	}
	writeMonth(cmd.OutOrStdout(), s.ctrl, s.tr, p)
	return nil
}

func writeMonth(w io.Writer, ctrl *calendar.Controller, tr i18n.Translator, p painter) {
	grid := ctrl.Grid()
	_, _ = fmt.Fprintln(w, tr.Title(grid.Month))

	var header strings.Builder
	for _, wd := range tr.Weekdays() {
		header.WriteString(fmt.Sprintf("%-*s", showCellWidth, wd))
	}
	_, _ = fmt.Fprintln(w, p.paint(silentStyle, strings.TrimRight(header.String(), " ")))

	for _, week := range grid.Weeks() {
		var line strings.Builder
		for _, cell := range week {
			line.WriteString(showCell(cell, p))
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, p.paint(silentStyle, fmt.Sprintf("x %s  * %s  1-4 %s",
		tr.Text("legend.marked"), tr.Text("legend.workout"), tr.Text("legend.progress"))))
	_, _ = fmt.Fprintf(w, "%s: %d\n", tr.Text("stats.marked"), ctrl.MarkedCount())
}

// showCell renders "DDmwc " where m marks a skipped day, w a workout day
// and c the number of habits done.
func showCell(c calendar.Cell, p painter) string {
	if c.Blank {
		return strings.Repeat(" ", showCellWidth)
	}
	day := fmt.Sprintf("%2d", c.Day)
	switch {
	case c.Marked:
		day = p.paint(markedStyle, day)
	case c.Today:
		day = p.paint(todayStyle, day)
	}
	mark := " "
	if c.Marked {
		mark = p.paint(markedStyle, "x")
	}
	workout := " "
	if c.Workout {
		workout = p.paint(workoutStyle, "*")
	}
	done := " "
	if c.Completion > 0 {
		done = strconv.Itoa(c.Completion)
	}
	return day + mark + workout + done + " "
}
