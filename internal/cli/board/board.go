package board

import (
	"github.com/spf13/cobra"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "boards",
		Aliases: []string{"board"},
		Short:   "Browse boards",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}
