package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Print the persisted day state as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(commandContext(cmd), time.Now)
		if err != nil {
			return err
		}
		defer s.Close()
		return runExport(cmd, s)
	},
}.Build()

func runExport(cmd *cobra.Command, s *session) error {
	raw, err := s.store.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode day state: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return fmt.Errorf("encode day state: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.String())
	return nil
}
