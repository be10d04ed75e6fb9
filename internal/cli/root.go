// Package cli implements the shelf command-line interface: the root command
// runs the interactive menu, and init and version manage setup.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shelf/internal/console"
	"github.com/mesh-intelligence/shelf/internal/library"
	"github.com/mesh-intelligence/shelf/internal/memory"
	"github.com/mesh-intelligence/shelf/internal/paths"
	"github.com/mesh-intelligence/shelf/internal/sqlite"
	"github.com/mesh-intelligence/shelf/pkg/types"
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
	backend   string
	logLevel  string
	jsonMode  bool
}

// session is the state PersistentPreRunE prepares for the subcommands.
type session struct {
	flags     rootFlags
	configDir string
	config    types.Config
	logger    *slog.Logger
}

// codedError carries the process exit code for an error.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func userError(err error) error { return &codedError{code: exitUserError, err: err} }
func sysError(err error) error  { return &codedError{code: exitSysError, err: err} }

// NewRootCmd creates the top-level "shelf" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:   "shelf",
		Short: "Keep track of a small book collection from the terminal",
		Long: `Shelf runs an interactive numbered menu for listing, adding, searching,
borrowing, returning and deleting books. Books live in memory for the
duration of the session.`,
		Args: cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.prepare,
		RunE:              s.runMenu,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&s.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/shelf)")
	pf.StringVar(&s.flags.backend, "backend", "", "book store: memory or sqlite (default: memory)")
	pf.StringVar(&s.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default: warn)")
	pf.BoolVar(&s.flags.jsonMode, "json", false, "print books as JSON lines")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(s))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI with the given arguments and streams and returns the
// exit code.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(errOut, "shelf:", err)

	var coded *codedError
	if errors.As(err, &coded) {
		return coded.code
	}
	return exitUserError
}

// prepare loads .env, resolves the config directory, reads the configuration
// and builds the logger.
func (s *session) prepare(cmd *cobra.Command, args []string) error {
	// Skip setup for version command
	if cmd.Name() == "version" {
		return nil
	}

	if err := loadDotEnv(dotEnvFile); err != nil {
		return userError(err)
	}

	configDir, err := paths.ResolveConfigDir(s.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(cmd, configDir)
	if err != nil {
		return userError(fmt.Errorf("load config: %w", err))
	}

	s.configDir = configDir
	s.config = cfg
	s.logger = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, newSessionID())
	s.logger.Debug("config loaded", "config_dir", configDir, "backend", cfg.Backend)
	return nil
}

// runMenu opens the configured store and runs the interactive menu on the
// command's input and output streams.
func (s *session) runMenu(cmd *cobra.Command, args []string) error {
	store, err := openStore(s.config.Backend)
	if err != nil {
		return sysError(fmt.Errorf("open %s store: %w", s.config.Backend, err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			s.logger.Warn("closing store", "error", err)
		}
	}()

	lib := library.New(store, s.logger)
	app := console.New(lib,
		console.NewLineReader(cmd.InOrStdin()),
		cmd.OutOrStdout(),
		console.WithJSON(s.config.JSON),
		console.WithLogger(s.logger),
	)
	if err := app.Run(); err != nil {
		return sysError(err)
	}
	return nil
}

// openStore returns an empty store for the named backend.
func openStore(backend string) (types.Store, error) {
	switch backend {
	case types.BackendMemory:
		return memory.NewStore(), nil
	case types.BackendSQLite:
		b, err := sqlite.Open()
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, types.ErrBackendUnknown
	}
}
