// Command grokking runs the functional programming exercises and prints
// their results.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/searge/grokking-fp/cart"
	"github.com/searge/grokking-fp/internal/exercise"
	"github.com/searge/grokking-fp/intro"
	"github.com/searge/grokking-fp/tip"
)

type chapter struct {
	name  string
	short string
	run   func(*exercise.Reporter)
}

var chapters = []chapter{
	{name: "intro", short: "Chapter 1: imperative vs declarative word scores", run: intro.Run},
	{name: "cart", short: "Chapter 2: shopping cart discounts", run: cart.Run},
	{name: "tip", short: "Chapter 2: tip calculation", run: tip.Run},
}

// LoggerFactory builds the logger for a run.
type LoggerFactory func(exercise.Config) (*zap.Logger, error)

type app struct {
	out       io.Writer
	newLogger LoggerFactory

	verbose bool
	color   string
	strict  bool

	cfg    exercise.Config
	logger *zap.Logger
}

func newRootCmd(out io.Writer, newLogger LoggerFactory) *cobra.Command {
	a := &app{out: out, newLogger: newLogger}

	rootCmd := &cobra.Command{
		Use:   "grokking",
		Short: "Run the functional programming exercises",
		Long: `Runs the textbook exercises and prints their results.
Each check prints "Assertion passed" or "Assertion failed"; failures do not
stop the run unless --strict is set.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(chapters...)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&a.color, "color", string(exercise.ColorAuto), "Color output: auto, always or never")
	rootCmd.PersistentFlags().BoolVar(&a.strict, "strict", false, "Exit with an error when any assertion fails")

	for _, ch := range chapters {
		ch := ch
		rootCmd.AddCommand(&cobra.Command{
			Use:   ch.name,
			Short: ch.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(ch)
			},
		})
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run every chapter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(chapters...)
		},
	})

	rootCmd.SetOut(out)
	return rootCmd
}

// setup loads env config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := exercise.LoadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if a.verbose {
		cfg.LogLevel = zapcore.DebugLevel
	}
	if flags.Changed("color") {
		mode, err := exercise.ParseColorMode(a.color)
		if err != nil {
			return err
		}
		cfg.Color = mode
	}
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}

	logger, err := a.newLogger(cfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) run(chs ...chapter) error {
	reporter := exercise.NewReporter(exercise.NewPrinter(a.out, a.cfg.Color), a.logger)

	for _, ch := range chs {
		a.logger.Info("running exercise", zap.String("chapter", ch.name))
		ch.run(reporter)
	}

	a.logger.Info("exercises finished",
		zap.Int("passed", reporter.Passed()),
		zap.Int("failed", reporter.Failed()),
		zap.Bool("strict", a.cfg.Strict))

	if a.cfg.Strict {
		return reporter.Err()
	}
	return nil
}

func main() {
	if err := newRootCmd(os.Stdout, exercise.NewLogger).Execute(); err != nil {
		os.Exit(1)
	}
}
