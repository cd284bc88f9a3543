package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/farmstock/internal/console"
)

func (a *app) newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE:  a.withFarm(runShell),
	}
}

func runShell(cmd *cobra.Command, args []string, f *farm) error {
	s := console.NewSession(console.Options{
		Repo:      f.repo,
		Prices:    f.backend,
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Formatter: f.format,
		Log:       f.log,
	})
	if err := s.Run(); err != nil {
		return sysErrorf("read input: %w", err)
	}
	return nil
}
