// Package cli implements the highroad command line.
//
//	highroad [flags] <input|-> [match mismatch space]
//
// The input holds two sequences (two plain lines or FASTA). Scoring comes
// from, in rising precedence: built-in defaults, -config YAML, the three
// positional integers, then -match/-mismatch/-space.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/highroad/align"
	"github.com/katalvlaran/highroad/config"
	"github.com/katalvlaran/highroad/render"
	"github.com/katalvlaran/highroad/seqio"
	"github.com/katalvlaran/highroad/tui"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitInvariant = 3
)

type options struct {
	configPath string
	match      int
	mismatch   int
	space      int
	gap        string
	blank      string
	color      bool
	ruler      bool
	width      int
	matrix     bool
	stats      bool
	view       bool
	verbose    bool
}

func newFlagSet(o *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("highroad", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML configuration file")
	fs.IntVar(&o.match, "match", 0, "match score (overrides config and positionals)")
	fs.IntVar(&o.mismatch, "mismatch", 0, "mismatch score (overrides config and positionals)")
	fs.IntVar(&o.space, "space", 0, "space/gap score (overrides config and positionals)")
	fs.StringVar(&o.gap, "gap", "", "gap symbol (single character)")
	fs.StringVar(&o.blank, "blank", "", "blank padding symbol (single character)")
	fs.BoolVar(&o.color, "color", false, "colour the alignment")
	fs.BoolVar(&o.ruler, "ruler", false, "print a match ruler between the sequences")
	fs.IntVar(&o.width, "width", 0, "wrap output every N columns (0 = no wrap)")
	fs.BoolVar(&o.matrix, "matrix", false, "print the dynamic-programming table")
	fs.BoolVar(&o.stats, "stats", false, "print column statistics")
	fs.BoolVar(&o.view, "view", false, "open the interactive viewer")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: highroad [flags] <input|-> [match mismatch space]")
		fs.PrintDefaults()
	}
	return fs
}

// Run executes the command and returns its exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	var o options
	fs := newFlagSet(&o, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	pos := fs.Args()
	if len(pos) != 1 && len(pos) != 4 {
		fs.Usage()
		return ExitUsage
	}

	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			logger.Error("load config", slog.String("path", o.configPath), slog.Any("err", err))
			return ExitFailure
		}
		cfg = loaded
	}

	policy := cfg.Policy()
	if len(pos) == 4 {
		p, err := seqio.ParseParams(pos[1:])
		if err != nil {
			logger.Error("scoring parameters", slog.Any("err", err))
			return ExitUsage
		}
		policy = p
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["match"] {
		policy.Match = o.match
	}
	if set["mismatch"] {
		policy.Mismatch = o.mismatch
	}
	if set["space"] {
		policy.Space = o.space
	}
	if set["gap"] {
		cfg.Symbols.Gap = o.gap
	}
	if set["blank"] {
		cfg.Symbols.Blank = o.blank
	}
	if set["color"] {
		cfg.Render.Color = o.color
	}
	if set["ruler"] {
		cfg.Render.Ruler = o.ruler
	}
	if set["width"] {
		cfg.Render.Width = o.width
	}

	opts, err := cfg.Options()
	if err != nil {
		logger.Error("symbols", slog.Any("err", err))
		return ExitUsage
	}

	pair, err := seqio.ReadPairFile(pos[0])
	if err != nil {
		logger.Error("read input", slog.String("path", pos[0]), slog.Any("err", err))
		return ExitFailure
	}

	res, err := align.Align(align.Problem{Row: pair.Row, Col: pair.Col, Policy: policy}, opts)
	if err != nil {
		if errors.Is(err, align.ErrTracebackInvariant) {
			logger.Error("internal error", slog.Any("err", err))
			return ExitInvariant
		}
		logger.Error("align", slog.Any("err", err))
		return ExitFailure
	}
	if err := res.Verify(align.Problem{Row: pair.Row, Col: pair.Col}); err != nil {
		logger.Error("internal error", slog.Any("err", err))
		return ExitInvariant
	}
	logger.Debug("aligned",
		slog.String("policy", policy.String()),
		slog.Int("rows", res.Matrix.Rows()),
		slog.Int("cols", res.Matrix.Cols()),
		slog.Int("end", res.End),
		slog.Int("score", res.Score),
	)

	r := render.New(
		render.WithColor(cfg.Render.Color),
		render.WithRuler(cfg.Render.Ruler),
		render.WithWidth(cfg.Render.Width),
	)

	if o.view {
		prog := tea.NewProgram(tui.New(res, policy, r), tea.WithAltScreen(), tea.WithOutput(stdout))
		if _, err := prog.Run(); err != nil {
			logger.Error("viewer", slog.Any("err", err))
			return ExitFailure
		}
		return ExitOK
	}

	if err := write(stdout, o, cfg, r, res); err != nil {
		logger.Error("write output", slog.Any("err", err))
		return ExitFailure
	}
	return ExitOK
}

// write prints the optional matrix, the alignment and the optional stats.
// Without render settings the alignment keeps the three-line shape of
// seqio.WriteResult.
func write(w io.Writer, o options, cfg config.Config, r *render.Renderer, res align.Result) error {
	if o.matrix {
		if _, err := io.WriteString(w, res.Matrix.String()+"\n"); err != nil {
			return err
		}
	}
	if cfg.Render == (config.RenderConfig{}) {
		if err := seqio.WriteResult(w, res); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintf(w, "%s\n%d\n", r.Render(res.Alignment), res.Score); err != nil {
		return err
	}
	if o.stats {
		return seqio.WriteStats(w, res.Stats())
	}
	return nil
}
