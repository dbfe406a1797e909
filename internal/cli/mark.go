package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/habitcal/internal/model"
	"github.com/spf13/cobra"
)

var markCmd = LeafCommand{
	Use:   "mark <YYYY-MM-DD>",
	Short: "Toggle the skipped mark on a day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(commandContext(cmd), time.Now)
		if err != nil {
			return err
		}
		defer s.Close()
		return runMark(cmd, s, args[0])
	},
}.Build()

var habitCmd = LeafCommand{
	Use:   "habit <YYYY-MM-DD> <habit>",
	Short: "Toggle a habit on a day",
	Long:  "Toggle a habit on a day. The habit is a name (alcohol, water, steps, nutrition)\nor its letter A-D.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(commandContext(cmd), time.Now)
		if err != nil {
			return err
		}
		defer s.Close()
		return runHabit(cmd, s, args[0], args[1])
	},
}.Build()

func runMark(cmd *cobra.Command, s *session, key string) error {
	if _, _, _, err := model.ParseDateKey(key); err != nil {
		return err
	}
	if err := s.store.ToggleMarked(commandContext(cmd), key); err != nil {
		return err
	}
	s.logger.Info("toggled marked", "date", key, "marked", s.store.Get(key).Marked)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatRecord(s, key))
	return nil
}

func runHabit(cmd *cobra.Command, s *session, key, rawHabit string) error {
	if _, _, _, err := model.ParseDateKey(key); err != nil {
		return err
	}
	habit, err := model.ParseHabit(rawHabit)
	if err != nil {
		return err
	}
	if err := s.store.ToggleHabit(commandContext(cmd), key, habit); err != nil {
		return err
	}
	s.logger.Info("toggled habit", "date", key, "habit", habit, "done", s.store.Get(key).Flag(habit))
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatRecord(s, key))
	return nil
}

// formatRecord prints one day on a single line, e.g.
// "2024-03-05 [x] Skipped | A[ ] B[x] C[ ] D[ ] | Done: 1 of 4".
func formatRecord(s *session, key string) string {
	rec := s.store.Get(key)
	habits := make([]string, 0, len(model.Habits))
	for _, h := range model.Habits {
		habits = append(habits, h.Letter()+checkbox(rec.Flag(h)))
	}
	return fmt.Sprintf("%s %s %s | %s | %s",
		key, checkbox(rec.Marked), s.tr.Text("day.marked"),
		strings.Join(habits, " "), s.tr.Text("day.done", model.CompletionCount(rec)))
}

func checkbox(v bool) string {
	if v {
		return "[x]"
	}
	return "[ ]"
}
