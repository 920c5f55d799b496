package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-drift/safearea/pkg/config"
	"github.com/go-drift/safearea/pkg/platform"
	"github.com/go-drift/safearea/pkg/preview"
)

type previewOptions struct {
	dir     string
	theme   string
	logFile string
}

func newPreviewCommand(root *rootOptions) *cobra.Command {
	opts := &previewOptions{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactive phone simulator",
		Long: `Run the plugin against a simulated phone in the terminal.

Keys: d/l/x set dark, light or default on the selected target, tab cycles
the target, t flips the device theme, h/s hide and show, i cycles inset
presets (one has the keyboard open), v toggles viewport-fit, q quits.

The plugin is reloaded whenever the config file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd.Context(), root, opts)
		},
	}
	cmd.Flags().StringVar(&opts.dir, "dir", ".", "directory holding safearea.{yaml,json,toml}")
	cmd.Flags().StringVar(&opts.theme, "theme", "light", "initial device theme (light, dark)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file; the terminal is taken by the preview")
	return cmd
}

func runPreview(ctx context.Context, root *rootOptions, opts *previewOptions) error {
	theme, ok := platform.ParseTheme(opts.theme)
	if !ok {
		return fmt.Errorf("unknown theme %q (use light or dark)", opts.theme)
	}

	mgr := config.NewManager(opts.dir)
	if err := mgr.Load(); err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log := root.logger(mgr.Get(), logOut)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	looper := platform.NewLooper()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return looper.Run(gctx)
	})

	session := preview.NewSession(looper, theme, log)
	if err := session.Load(gctx, mgr.Get()); err != nil {
		looper.Close()
		_ = g.Wait()
		return err
	}

	prog := tea.NewProgram(preview.NewModel(gctx, session), tea.WithAltScreen(), tea.WithContext(gctx))

	if file := mgr.File(); file != "" {
		log.Info().Str("file", file).Msg("watching config")
		mgr.OnConfigChange(func(cfg config.Config) {
			prog.Send(preview.ConfigReloadedMsg{Config: cfg})
		})
		mgr.Watch(func(err error) {
			prog.Send(preview.ConfigErrorMsg{Err: err})
		})
	}

	g.Go(func() error {
		defer looper.Close()
		defer session.Close()
		_, err := prog.Run()
		return err
	})

	err := g.Wait()
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
