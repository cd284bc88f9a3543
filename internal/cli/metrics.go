package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/farmstock/internal/console"
	"github.com/mesh-intelligence/farmstock/internal/metrics"
	"github.com/mesh-intelligence/farmstock/pkg/types"
)

func (a *app) newMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Print prices and daily income, cost and profit for the herd",
		Args:  cobra.NoArgs,
		RunE: a.withFarm(func(cmd *cobra.Command, args []string, f *farm) error {
			p := metrics.LoadPrices(f.backend)
			summary, err := metrics.Report(f.repo.All(), p)
			if types.IsNotFound(err) {
				fmt.Fprintln(cmd.OutOrStdout(), "No farm animals to calculate metrics for.")
				return nil
			}
			if err != nil {
				return err
			}
			console.WriteMetrics(cmd.OutOrStdout(), summary, p, f.format)
			return nil
		}),
	}
}
