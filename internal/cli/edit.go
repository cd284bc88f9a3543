package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/farmstock/internal/console"
	"github.com/mesh-intelligence/farmstock/pkg/types"
)

func (a *app) newEditCmd() *cobra.Command {
	var fl animalFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit fields of an animal",
		Long: "Edit the animal with the given ID. Only the flags given are changed.\n" +
			"A field that fails validation keeps its old value; the others still apply.",
		Args: cobra.ExactArgs(1),
		RunE: a.withFarm(func(cmd *cobra.Command, args []string, f *farm) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p := fl.patch(cmd)
			if p.Empty() {
				return fmt.Errorf("%w: nothing to edit; pass at least one field flag", types.ErrValidation)
			}

			res, err := f.repo.Update(id, p)
			if err != nil {
				return err
			}
			for _, rej := range res.Rejected {
				fmt.Fprintf(cmd.ErrOrStderr(), "Invalid input for %s: %v. Keeping %s.\n",
					strings.ToLower(rej.Field), rej.Err, strings.ToLower(rej.Field))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Livestock record updated successfully.")
			fmt.Fprintln(out, "Record updated to:")
			console.WriteRecord(out, res.Updated, f.format)
			return nil
		}),
	}
	cmd.Flags().IntVar(&fl.id, "id", 0, "new ID (positive and unused)")
	fl.register(cmd)
	return cmd
}

// patch builds a Patch from the flags the user set.
func (fl *animalFlags) patch(cmd *cobra.Command) types.Patch {
	var p types.Patch
	set := cmd.Flags().Changed
	if set("id") {
		p.ID = &fl.id
	}
	if set("water") {
		p.Water = &fl.water
	}
	if set("cost") {
		p.Cost = &fl.cost
	}
	if set("weight") {
		p.Weight = &fl.weight
	}
	if set("colour") {
		p.Colour = &fl.colour
	}
	if set("yield") {
		p.Yield = &fl.yield
	}
	return p
}
