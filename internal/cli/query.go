package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/farmstock/internal/console"
	"github.com/mesh-intelligence/farmstock/internal/metrics"
	"github.com/mesh-intelligence/farmstock/internal/query"
	"github.com/mesh-intelligence/farmstock/pkg/types"
)

func (a *app) newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the herd by id, colour, type or weight",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "id <id>",
			Short: "Show the animal with the given ID",
			Args:  cobra.ExactArgs(1),
			RunE:  a.withFarm(runQueryID),
		},
		&cobra.Command{
			Use:   "colour <colour>",
			Short: "Report on animals of one colour",
			Args:  cobra.ExactArgs(1),
			RunE:  a.withFarm(runQueryColour),
		},
		&cobra.Command{
			Use:       "type <Cow|Goat|Sheep>",
			Short:     "Report on animals of one species",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"cow", "goat", "sheep"},
			RunE:      a.withFarm(runQueryType),
		},
		&cobra.Command{
			Use:   "weight <threshold>",
			Short: "Report on animals heavier than threshold KG",
			Args:  cobra.ExactArgs(1),
			RunE:  a.withFarm(runQueryWeight),
		},
	)
	return cmd
}

func runQueryID(cmd *cobra.Command, args []string, f *farm) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	found, ok := query.ByID(f.repo.All(), id)
	if !ok {
		return fmt.Errorf("%w: no animal with ID %d", types.ErrNotFound, id)
	}
	console.WriteRecord(cmd.OutOrStdout(), found, f.format)
	return nil
}

func runQueryColour(cmd *cobra.Command, args []string, f *farm) error {
	all := f.repo.All()
	matches := query.ByColour(all, args[0])
	if len(matches) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No animals found with colour '%s'.\n", args[0])
		return nil
	}
	console.WriteColourReport(cmd.OutOrStdout(), args[0], matches, len(all), metrics.LoadPrices(f.backend), f.format)
	return nil
}

func runQueryType(cmd *cobra.Command, args []string, f *farm) error {
	species, err := types.ParseSpecies(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q (valid: Cow, Goat, Sheep)", err, args[0])
	}
	matches := query.ByType(f.repo.All(), species.String())
	if len(matches) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No animals found of type '%s'.\n", species)
		return nil
	}
	console.WriteTypeReport(cmd.OutOrStdout(), species, matches, metrics.LoadPrices(f.backend), f.format)
	return nil
}

func runQueryWeight(cmd *cobra.Command, args []string, f *farm) error {
	threshold, err := parseFloat("weight threshold", args[0])
	if err != nil {
		return err
	}
	matches, err := query.ByWeightAbove(f.repo.All(), threshold)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No animals found above the entered weight threshold.")
		return nil
	}
	console.WriteWeightReport(cmd.OutOrStdout(), threshold, matches, metrics.LoadPrices(f.backend), f.format)
	return nil
}
