package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/farmstock/internal/console"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all farm animals ordered by ID",
		Args:  cobra.NoArgs,
		RunE: a.withFarm(func(cmd *cobra.Command, args []string, f *farm) error {
			if f.repo.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No farm animals to display.")
				return nil
			}
			console.WriteTable(cmd.OutOrStdout(), f.repo.Sorted(), f.format)
			return nil
		}),
	}
}
