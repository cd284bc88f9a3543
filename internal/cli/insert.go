package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/farmstock/pkg/types"
)

// animalFlags holds the record fields accepted by insert and edit.
type animalFlags struct {
	id     int
	water  float64
	cost   float64
	weight float64
	colour string
	yield  float64
}

func (fl *animalFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&fl.water, "water", 0, "daily water consumption (KG)")
	cmd.Flags().Float64Var(&fl.cost, "cost", 0, "daily cost")
	cmd.Flags().Float64Var(&fl.weight, "weight", 0, "weight (KG)")
	cmd.Flags().StringVar(&fl.colour, "colour", "", "colour")
	cmd.Flags().Float64Var(&fl.yield, "yield", 0, "daily milk (L) for cows and goats, wool (KG) for sheep")
}

func (a *app) newInsertCmd() *cobra.Command {
	var fl animalFlags
	cmd := &cobra.Command{
		Use:       "insert <cow|goat|sheep>",
		Short:     "Add an animal; the next free ID is assigned",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"cow", "goat", "sheep"},
		RunE: a.withFarm(func(cmd *cobra.Command, args []string, f *farm) error {
			species, err := types.ParseSpecies(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q (valid: cow, goat, sheep)", err, args[0])
			}
			saved, err := f.repo.Insert(types.NewAnimal(species, fl.water, fl.cost, fl.weight, fl.colour, fl.yield))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s added successfully with ID %d!\n", species, saved.ID)
			return nil
		}),
	}
	fl.register(cmd)
	return cmd
}
