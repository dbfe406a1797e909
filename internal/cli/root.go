package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitcal/internal/update"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	backend string
	dataDir string
	locale  string
}

var flags globalFlags

var rootCmd = &cobra.Command{
	Use:          "habitcal",
	Short:        "Mark calendar days and track four daily habits",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, time.Now)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.backend, "backend", "", "storage backend: file or sqlite (env HABITCAL_BACKEND)")
	pf.StringVar(&flags.dataDir, "data-dir", "", "directory holding the day state (env HABITCAL_DATA_DIR)")
	pf.StringVar(&flags.locale, "locale", "", "label language: en or ru (env HABITCAL_LOCALE)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(habitCmd)
	rootCmd.AddCommand(exportCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func runTUI(cmd *cobra.Command, nowFunc func() time.Time) error {
	s, err := openSession(commandContext(cmd), nowFunc)
	if err != nil {
		return err
	}
	defer s.Close()

	s.logger.Info("starting tui", "backend", s.cfg.Backend, "data_dir", s.cfg.DataDir, "locale", s.tr.Locale())
	program := tea.NewProgram(update.NewModelWithConfig(s.ctrl, s.cfg, s.logger), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
