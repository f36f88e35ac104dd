// Package cli implements the roulette operator commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"arcade-roulette-service/internal/config"
	"arcade-roulette-service/internal/logging"
	"arcade-roulette-service/internal/server"
)

const serviceName = "arcade-roulette-service"

// Options injects dependencies; zero values use the process defaults.
type Options struct {
	Version    string
	LoadConfig func() (config.Config, error)
	Out        io.Writer
	Err        io.Writer
}

// env is shared by every subcommand once the root pre-run has loaded config.
type env struct {
	opts   Options
	cfg    config.Config
	logger *slog.Logger
	comps  *server.Components
}

// components builds the domain services on first use.
func (e *env) components() *server.Components {
	if e.comps == nil {
		e.comps = server.BuildComponents(e.cfg, e.logger, nil)
	}
	return e.comps
}

func (e *env) close() {
	if e.comps == nil {
		return
	}
	if err := e.comps.Close(); err != nil {
		logging.Warn(e.logger, "wishlist backend close failed", "error", err)
	}
}

// NewRootCommand assembles the roulette command tree.
func NewRootCommand(opts Options) *cobra.Command {
	root, _ := newRoot(opts)
	return root
}

func newRoot(opts Options) (*cobra.Command, *env) {
	if opts.LoadConfig == nil {
		opts.LoadConfig = config.Load
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	e := &env{opts: opts}
	var noColor bool

	root := &cobra.Command{
		Use:           "roulette",
		Short:         "Operate the arcade roulette catalogue and wishlist",
		Version:       opts.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initColor(noColor, opts.Out)
			cfg, err := opts.LoadConfig()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = logging.NewLogger(cfg.Log.Logging(serviceName, opts.Version))
			return nil
		},
	}
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newServeCommand(e),
		newGamesCommand(e),
		newRandomCommand(e),
		newWishlistCommand(e),
		newSubmitCommand(e),
	)
	return root, e
}

// Execute runs the CLI and returns the process exit code.
func Execute(opts Options, args []string) int {
	root, e := newRoot(opts)
	return execute(root, e, args)
}

// execute closes the wishlist backend whether or not the command failed.
func execute(root *cobra.Command, e *env, args []string) int {
	defer e.close()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), color.RedString("error:"), err)
		return 1
	}
	return 0
}

// initColor disables color for --no-color or when output is not a terminal.
func initColor(noColor bool, out io.Writer) {
	if noColor || !isTTY(out) {
		color.NoColor = true
	}
}

func isTTY(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
