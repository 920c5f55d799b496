package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/safearea/pkg/config"
	"github.com/go-drift/safearea/pkg/graphics"
	"github.com/go-drift/safearea/pkg/systembars"
)

func newConfigCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create and check safearea config files",
	}
	cmd.AddCommand(newConfigInitCommand(), newConfigCheckCommand(root))
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write a default config file",
		Long: `Write the default configuration as YAML. PATH defaults to
./safearea.yaml; an existing file is never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName + ".yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", filepath.Clean(path))
			return nil
		},
	}
}

func newConfigCheckCommand(root *rootOptions) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Print the resolved configuration and any problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr := config.NewManager(dir)
			if err := mgr.Load(); err != nil {
				return err
			}
			cfg := mgr.Get()
			log := root.logger(cfg, cmd.ErrOrStderr())
			if !cfg.InsetsHandlingDisabled() {
				log.Warn().
					Str("insetsHandling", cfg.SystemBars.InsetsHandling).
					Msg(`set SystemBars.insetsHandling to "disable"; other values can lead to insets being applied twice`)
			}

			problems := checkConfig(cfg)
			printConfig(cmd.OutOrStdout(), mgr.File(), cfg, problems)
			if len(problems) > 0 {
				return fmt.Errorf("%d problem(s) found", len(problems))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directory holding safearea.{yaml,json,toml}")
	return cmd
}

// checkConfig lists values the plugin would silently replace.
func checkConfig(cfg config.Config) []string {
	var problems []string
	for _, s := range []struct{ key, value string }{
		{"statusBarStyle", cfg.StatusBarStyle},
		{"navigationBarStyle", cfg.NavigationBarStyle},
	} {
		if !knownStyle(s.value) {
			problems = append(problems, fmt.Sprintf("%s: %q is not DARK, LIGHT or DEFAULT and will be treated as DEFAULT", s.key, s.value))
		}
	}
	for _, c := range []struct{ key, value string }{
		{"colors.dark", cfg.Colors.Dark},
		{"colors.light", cfg.Colors.Light},
	} {
		if _, err := graphics.ParseColor(c.value); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v; the built-in color is used", c.key, err))
		}
	}
	if !cfg.InsetsHandlingDisabled() {
		problems = append(problems, fmt.Sprintf("systemBars.insetsHandling: %q should be %q", cfg.SystemBars.InsetsHandling, config.InsetsHandlingDisable))
	}
	return problems
}

func knownStyle(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, systembars.ParseStyle(s).String())
}

func printConfig(w io.Writer, file string, cfg config.Config, problems []string) {
	if file == "" {
		file = "(none, defaults and environment)"
	}
	style := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "unset (follows device theme, bar untouched until first repaint)"
		}
		return systembars.ParseStyle(s).String()
	}
	fmt.Fprintf(w, "file:                          %s\n", file)
	fmt.Fprintf(w, "statusBarStyle:                %s\n", style(cfg.StatusBarStyle))
	fmt.Fprintf(w, "navigationBarStyle:            %s\n", style(cfg.NavigationBarStyle))
	fmt.Fprintf(w, "initialViewportFitCover:       %t\n", cfg.InitialViewportFitCover)
	fmt.Fprintf(w, "detectViewportFitCoverChanges: %t\n", cfg.DetectViewportFitCoverChanges)
	handling := cfg.SystemBars.InsetsHandling
	if strings.TrimSpace(handling) == "" {
		handling = "unset (host handles insets)"
	}
	fmt.Fprintf(w, "systemBars.insetsHandling:     %s\n", handling)
	fmt.Fprintf(w, "colors.dark:                   %s\n", cfg.Colors.Dark)
	fmt.Fprintf(w, "colors.light:                  %s\n", cfg.Colors.Light)
	fmt.Fprintln(w, "                               (#rgb, #rrggbb, #aarrggbb with alpha first, or a CSS color name)")
	fmt.Fprintf(w, "logging:                       %s, %s\n", cfg.Logging.Level, cfg.Logging.Format)
	if len(problems) == 0 {
		fmt.Fprintln(w, "\nno problems found")
		return
	}
	fmt.Fprintln(w, "\nproblems:")
	for _, p := range problems {
		fmt.Fprintf(w, "  - %s\n", p)
	}
}
