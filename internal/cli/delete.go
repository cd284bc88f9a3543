package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/farmstock/internal/console"
)

func (a *app) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete the animal with the given ID",
		Args:  cobra.ExactArgs(1),
		RunE: a.withFarm(func(cmd *cobra.Command, args []string, f *farm) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			removed, err := f.repo.Delete(id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted the following animal record:")
			console.WriteRecord(cmd.OutOrStdout(), removed, f.format)
			return nil
		}),
	}
}
