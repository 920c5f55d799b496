// Package cmd implements the safearea CLI commands.
//
// The command structure follows the usual cobra layout: a root command with
// preview, simulate and config subcommands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-drift/safearea/pkg/config"
	"github.com/go-drift/safearea/pkg/errors"
	"github.com/go-drift/safearea/pkg/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "safearea",
		Short: "Safe area and system bar styling, simulated",
		Long: `safearea drives the safe area plugin against a simulated phone.

It styles the status and navigation bars from light/dark requests and the
device theme, pads the content view under the status bar and passes the
keyboard insets on untouched.

Use "safearea <command> --help" for more information about a command.`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format (console, json)")

	root.AddCommand(
		newPreviewCommand(opts),
		newSimulateCommand(opts),
		newConfigCommand(opts),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

type rootOptions struct {
	logLevel  string
	logFormat string
}

// logger builds the CLI logger and routes reported errors through it.
// Flags win over the loaded config, which wins over SAFEAREA_LOG_*.
func (o *rootOptions) logger(cfg config.Config, out io.Writer) zerolog.Logger {
	lc := logging.EnvConfig()
	if cfg.Logging.Level != "" {
		lc.Level = logging.ParseLevel(cfg.Logging.Level)
	}
	if cfg.Logging.Format != "" {
		lc.Format = cfg.Logging.Format
	}
	if o.logLevel != "" {
		lc.Level = logging.ParseLevel(o.logLevel)
	}
	if o.logFormat != "" {
		lc.Format = o.logFormat
	}
	lc.Output = out
	l := logging.New(lc)
	errors.SetHandler(&errors.LogHandler{Logger: &l})
	return l
}
