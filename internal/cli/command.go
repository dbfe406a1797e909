package cli

import "github.com/spf13/cobra"

// LeafCommand defines a command that executes logic.
type LeafCommand struct {
	Use   string
	Short string
	Long  string
	Args  cobra.PositionalArgs
	RunE  func(cmd *cobra.Command, args []string) error
}

func (lc LeafCommand) Build() *cobra.Command {
	return &cobra.Command{
		Use:   lc.Use,
		Short: lc.Short,
		Long:  lc.Long,
		Args:  lc.Args,
		RunE:  lc.RunE,
	}
}
