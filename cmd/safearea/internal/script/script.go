// Package script runs scripted plugin sessions for the simulate command.
package script

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/safearea/pkg/config"
	drifterrors "github.com/go-drift/safearea/pkg/errors"
	"github.com/go-drift/safearea/pkg/platform"
	"github.com/go-drift/safearea/pkg/preview"
	"github.com/go-drift/safearea/pkg/safearea"
	drifttest "github.com/go-drift/safearea/pkg/testing"
)

// Step operations.
const (
	OpStart       = "start"
	OpSetStyle    = "setStyle"
	OpShow        = "show"
	OpHide        = "hide"
	OpTheme       = "theme"
	OpInsets      = "insets"
	OpViewportFit = "viewportFit"
)

// Script is a simulate input file.
type Script struct {
	// Theme is the device theme at launch, "light" unless set.
	Theme  string        `yaml:"theme,omitempty"`
	Config config.Config `yaml:"config"`
	Steps  []Step        `yaml:"steps"`
}

// Step is one scripted action.
type Step struct {
	Op     string `yaml:"op"`
	Style  string `yaml:"style,omitempty"`
	Target string `yaml:"target,omitempty"`
	Theme  string `yaml:"theme,omitempty"`
	// Preset names one of the preview inset presets.
	Preset string `yaml:"preset,omitempty"`
	// Edges sets insets per type name, as [left, top, right, bottom].
	Edges map[string][4]float64 `yaml:"edges,omitempty"`
	Cover *bool                 `yaml:"cover,omitempty"`
}

func (s Step) String() string {
	parts := []string{s.Op}
	for _, kv := range [][2]string{{"style", s.Style}, {"target", s.Target}, {"theme", s.Theme}, {"preset", s.Preset}} {
		if kv[1] != "" {
			parts = append(parts, kv[0]+"="+kv[1])
		}
	}
	if s.Cover != nil {
		parts = append(parts, fmt.Sprintf("cover=%t", *s.Cover))
	}
	if len(s.Edges) > 0 {
		parts = append(parts, fmt.Sprintf("edges=%d", len(s.Edges)))
	}
	return strings.Join(parts, " ")
}

// Load reads and validates a script. Config values the script leaves out
// keep their defaults.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	s := &Script{Config: config.Default()}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, &drifterrors.Error{Op: "script.Parse", Kind: drifterrors.KindParsing, Err: err}
	}
	if err := s.Validate(); err != nil {
		return nil, &drifterrors.Error{Op: "script.Validate", Kind: drifterrors.KindParsing, Err: err}
	}
	return s, nil
}

// Validate checks the launch theme and every step. Style and target values
// are not checked; the plugin accepts anything.
func (s *Script) Validate() error {
	if s.Theme != "" {
		if _, ok := platform.ParseTheme(s.Theme); !ok {
			return &drifterrors.ParseError{Source: "theme", DataType: "theme", Got: s.Theme}
		}
	}
	var errs []error
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err))
		}
	}
	return errors.Join(errs...)
}

func (s Step) validate() error {
	switch s.Op {
	case OpStart, OpSetStyle, OpShow, OpHide:
		return nil
	case OpTheme:
		if _, ok := platform.ParseTheme(s.Theme); !ok {
			return &drifterrors.ParseError{Source: "theme", DataType: "theme", Got: s.Theme}
		}
	case OpInsets:
		if s.Preset == "" && len(s.Edges) == 0 {
			return errors.New("needs a preset or edges")
		}
		if s.Preset != "" {
			if _, ok := preview.PresetByName(s.Preset); !ok {
				return &preview.UnknownPresetError{Name: s.Preset}
			}
		}
		for name := range s.Edges {
			if _, ok := platform.ParseInsetType(name); !ok {
				return &drifterrors.ParseError{Source: "edges", DataType: "inset type", Got: name}
			}
		}
	case OpViewportFit:
		if s.Cover == nil {
			return errors.New("needs cover")
		}
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}

// insets builds the step's WindowInsets: the preset, then edges on top.
func (s Step) insets() platform.WindowInsets {
	var base platform.WindowInsets
	if p, ok := preview.PresetByName(s.Preset); ok {
		base = p.Insets
	}
	b := platform.NewWindowInsetsBuilder(base)
	// Sorted so that "systemBars" lands after the single bar types.
	for _, name := range slices.Sorted(maps.Keys(s.Edges)) {
		e := s.Edges[name]
		t, _ := platform.ParseInsetType(name)
		b.SetInsets(t, platform.EdgeInsetsLTRB(e[0], e[1], e[2], e[3]))
	}
	return b.Build()
}

// StepResult is the outcome of one step.
type StepResult struct {
	Step Step
	Err  error
}

// Result is the device and plugin state after a run.
type Result struct {
	Steps    []StepResult
	Snapshot drifttest.Snapshot
	State    safearea.State
	Returned platform.WindowInsets
}

// Failed reports whether any step returned an error.
func (r *Result) Failed() bool {
	for _, s := range r.Steps {
		if s.Err != nil {
			return true
		}
	}
	return false
}

// Run loads the plugin on a fresh device and plays the steps in order on ui.
// A failing step is recorded and the run continues.
func Run(ctx context.Context, s *Script, ui platform.Dispatcher, log zerolog.Logger) (*Result, error) {
	theme, _ := platform.ParseTheme(s.Theme)
	sess := preview.NewSession(ui, theme, log)
	defer sess.Close()

	if err := sess.Load(ctx, s.Config); err != nil {
		return nil, fmt.Errorf("failed to load plugin: %w", err)
	}

	res := &Result{}
	for _, step := range s.Steps {
		err := runStep(ctx, sess, step)
		if err != nil {
			log.Warn().Err(err).Stringer("step", step).Msg("step failed")
		}
		res.Steps = append(res.Steps, StepResult{Step: step, Err: err})
	}

	state, err := sess.Plugin().State(ctx)
	if err != nil {
		return nil, err
	}
	res.State = state
	res.Snapshot = sess.Host().Snapshot()
	res.Returned = sess.Returned()
	return res, nil
}

func runStep(ctx context.Context, sess *preview.Session, step Step) error {
	p := sess.Plugin()
	switch step.Op {
	case OpStart:
		return p.Start(ctx)
	case OpSetStyle:
		return p.SetSystemBarsStyle(ctx, step.Style, step.Target)
	case OpShow:
		return p.ShowSystemBars(ctx, step.Target)
	case OpHide:
		return p.HideSystemBars(ctx, step.Target)
	case OpTheme:
		theme, _ := platform.ParseTheme(step.Theme)
		return sess.SetTheme(ctx, theme)
	case OpInsets:
		return sess.Deliver(ctx, step.insets())
	case OpViewportFit:
		sess.Viewport().Report(*step.Cover)
		return nil
	}
	return fmt.Errorf("unknown op %q", step.Op)
}
