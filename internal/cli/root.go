// Package cli implements the farmstock command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/farmstock/internal/console"
	"github.com/mesh-intelligence/farmstock/internal/herd"
	"github.com/mesh-intelligence/farmstock/internal/logging"
	"github.com/mesh-intelligence/farmstock/internal/paths"
	"github.com/mesh-intelligence/farmstock/internal/sqlite"
	"github.com/mesh-intelligence/farmstock/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	logLevel  string
}

// app carries the state of one command invocation.
type app struct {
	flags rootFlags
}

// NewRootCmd creates the top-level "farmstock" command with global flags
// and all subcommands registered. Run without a subcommand it starts the
// interactive shell.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "farmstock",
		Short: "Livestock inventory and daily farm metrics",
		Long: "farmstock keeps a cow, goat and sheep inventory in a local SQLite database\n" +
			"and reports daily income, cost and profit from stored commodity prices.",
		Args: cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.withFarm(runShell),
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: .farmstock-db)")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newShellCmd())
	root.AddCommand(a.newListCmd())
	root.AddCommand(a.newQueryCmd())
	root.AddCommand(a.newInsertCmd())
	root.AddCommand(a.newEditCmd())
	root.AddCommand(a.newDeleteCmd())
	root.AddCommand(a.newMetricsCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(ExitCode(err))
}

// ExitCode maps an error returned by a command to the process exit code:
// storage and configuration failures are system errors, everything else
// (validation, not found, bad arguments) is a user error.
func ExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *systemError
	if errors.As(err, &se) || types.IsStorage(err) {
		return exitSysError
	}
	return exitUserError
}

// systemError marks a failure of the environment rather than of the input.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }

func (e *systemError) Unwrap() error { return e.err }

func sysErrorf(format string, args ...any) error {
	return &systemError{err: fmt.Errorf(format, args...)}
}

// farm bundles what an attached command needs.
type farm struct {
	backend *sqlite.Backend
	repo    *herd.Repository
	log     *zap.Logger
	format  console.Formatter
}

// farmRunE is a command body that runs against an open farm.
type farmRunE func(cmd *cobra.Command, args []string, f *farm) error

// withFarm opens the farm before run and closes it afterwards, whether or
// not run fails.
func (a *app) withFarm(run farmRunE) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		f, err := a.open()
		if err != nil {
			return err
		}
		defer f.close()

		f.log.Debug("command started", zap.String("command", cmd.CommandPath()))
		return run(cmd, args, f)
	}
}

// open resolves directories, loads config, builds the logger, attaches the
// store and loads the herd. Failing to open the store is fatal.
func (a *app) open() (*farm, error) {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return nil, sysErrorf("resolve config dir: %w", err)
	}
	s, err := loadSettings(configDir)
	if err != nil {
		return nil, sysErrorf("load config: %w", err)
	}
	if a.flags.logLevel != "" {
		s.LogLevel = a.flags.logLevel
	}

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, s.DataDir)
	if err != nil {
		return nil, sysErrorf("resolve data dir: %w", err)
	}

	log, err := logging.New(s.LogLevel, s.LogFormat)
	if err != nil {
		return nil, sysErrorf("configure logging: %w", err)
	}
	log, _ = logging.WithSession(log)

	backend := sqlite.NewBackend(log)
	if err := backend.Attach(types.Config{
		Backend:  types.BackendSQLite,
		DataDir:  dataDir,
		Database: s.Database,
		Prices:   s.Prices,
	}); err != nil {
		return nil, sysErrorf("open database: %w", err)
	}

	repo, err := herd.Load(backend, log)
	if err != nil {
		backend.Detach()
		return nil, sysErrorf("%w", err)
	}

	log.Debug("farm opened",
		zap.String("config_dir", configDir),
		zap.String("database", backend.Path()),
		zap.Int("animals", repo.Len()),
	)
	return &farm{
		backend: backend,
		repo:    repo,
		log:     log,
		format:  console.NewFormatter(s.Currency),
	}, nil
}

func (f *farm) close() {
	if err := f.backend.Detach(); err != nil {
		f.log.Warn("detach failed", zap.Error(err))
	}
	_ = f.log.Sync()
}
