package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/farmstock/internal/paths"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize farmstock configuration and storage",
		Long: "Create the configuration and data directories, write a default config.yaml\n" +
			"if none exists, and create the database with its tables and commodity rows.",
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysErrorf("resolve config dir: %w", err)
	}

	// Record an explicit --data-dir so later runs find the same database.
	created, err := writeConfigIfMissing(configDir, a.flags.dataDir)
	if err != nil {
		return sysErrorf("write config: %w", err)
	}

	return a.withFarm(func(cmd *cobra.Command, args []string, f *farm) error {
		out := cmd.OutOrStdout()
		configPath := filepath.Join(configDir, configFileExt)
		if created {
			fmt.Fprintf(out, "Wrote %s\n", configPath)
		} else {
			fmt.Fprintf(out, "Using %s\n", configPath)
		}
		fmt.Fprintf(out, "Database: %s\n", f.backend.Path())
		fmt.Fprintln(out, "farmstock initialized successfully")
		return nil
	})(cmd, args)
}
