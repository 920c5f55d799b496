package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-drift/safearea/cmd/safearea/internal/script"
	"github.com/go-drift/safearea/pkg/platform"
	"github.com/go-drift/safearea/pkg/safearea"
)

func newSimulateCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate SCRIPT.yaml",
		Short: "Run a scripted session and print the final state",
		Long: `Load the plugin on a simulated phone, play the script's steps and
print the resulting bars, padding and the insets passed on.

A script has an optional launch theme, an optional config block and a list
of steps:

  theme: light
  config:
    statusBarStyle: dark
  steps:
    - op: setStyle        # style, target
      style: light
      target: NAVIGATION_BAR
    - op: hide            # target
    - op: show
      target: STATUS_BAR
    - op: theme           # theme
      theme: dark
    - op: insets          # preset and/or edges
      preset: keyboard
    - op: viewportFit     # cover
      cover: false
    - op: start`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			res, err := runScript(ctx, s, root.logger(s.Config, os.Stderr))
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			if res.Failed() {
				return fmt.Errorf("script had failing steps")
			}
			return nil
		},
	}
}

// runScript plays s with a looper standing in for the UI thread.
func runScript(ctx context.Context, s *script.Script, log zerolog.Logger) (*script.Result, error) {
	looper := platform.NewLooper()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return looper.Run(gctx)
	})

	var res *script.Result
	g.Go(func() error {
		defer looper.Close()
		var err error
		res, err = script.Run(gctx, s, looper, log)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f87171"))
)

func printResult(w io.Writer, res *script.Result) {
	for i, step := range res.Steps {
		line := fmt.Sprintf("%2d. %s", i+1, step.Step)
		if step.Err != nil {
			line += "  " + failStyle.Render("FAILED: "+step.Err.Error())
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	snap := res.Snapshot
	bars := []struct {
		name  string
		bar   platform.Bar
		state safearea.BarState
	}{
		{"status", platform.BarStatus, res.State.StatusBar},
		{"navigation", platform.BarNavigation, res.State.NavigationBar},
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("BAR", "REQUESTED", "EFFECTIVE", "APPEARANCE", "COLOR", "VISIBLE")
	for _, b := range bars {
		requested := "unset"
		if b.state.Set {
			requested = b.state.Requested.String()
		}
		bs := snap.Bar(b.bar)
		appearance := "untouched"
		if bs.AppearanceSet {
			appearance = "dark icons"
			if !bs.Light {
				appearance = "light icons"
			}
		}
		color := "untouched"
		if bs.ColorSet {
			color = bs.Color.Hex()
		}
		t.Row(b.name, requested, b.state.Effective.String(), appearance, color, fmt.Sprintf("%t", bs.Visible))
	}
	fmt.Fprintln(w, t.Render())

	fmt.Fprintf(w, "theme:            %s\n", snap.Theme)
	fmt.Fprintf(w, "content color:    %s\n", snap.ContentColor.Hex())
	fmt.Fprintf(w, "padding:          %s\n", formatEdges(snap.Padding))
	fmt.Fprintf(w, "passed on bars:   %s\n", formatEdges(res.Returned.Insets(platform.SystemBars|platform.DisplayCutout)))
	fmt.Fprintf(w, "passed on ime:    %s\n", formatEdges(res.Returned.Insets(platform.IME)))
	fmt.Fprintf(w, "viewport-fit:     %s\n", map[bool]string{true: "cover", false: "auto"}[res.State.ViewportFitCover])
}

func formatEdges(e platform.EdgeInsets) string {
	return fmt.Sprintf("left=%g top=%g right=%g bottom=%g", e.Left, e.Top, e.Right, e.Bottom)
}
