package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/clockface/core"
	"github.com/jask/clockface/internal/config"
	"github.com/jask/clockface/internal/logging"
)

type flags struct {
	config     string
	radius     float64
	minuteStep int
	logFile    string
	logLevel   string
	noMouse    bool
}

var opts flags

var rootCmd = &cobra.Command{
	Use:   "clockface",
	Short: "An analog clock-face time picker for the terminal",
	Long: `Clockface shows two analog time pickers side by side: the stock one and
one with custom number and header renderers. Drag a hand with the mouse or
use the keyboard; the chosen times are printed on exit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(opts.config)
		if err != nil {
			return err
		}
		applyFlags(cmd, &cfg)
		return run(cmd.OutOrStdout(), cfg, !opts.noMouse)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&opts.config, "config", "", "config file (default $CLOCKFACE_CONFIG or ~/.config/clockface/config.toml)")
	f.Float64Var(&opts.radius, "radius", 0, "clock radius in columns")
	f.IntVar(&opts.minuteStep, "minute-step", 0, "minute granularity: 1 or 5")
	f.StringVar(&opts.logFile, "log-file", "", "write debug logs to this file")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	f.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse reporting")
}

// applyFlags lets explicitly set flags win over file and env values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("radius") {
		// keep the tick ring at the same proportion of the face
		if cfg.Clock.Radius > 0 {
			cfg.Clock.NumberRadius = cfg.Clock.NumberRadius * opts.radius / cfg.Clock.Radius
		}
		cfg.Clock.Radius = opts.radius
	}
	if f.Changed("minute-step") {
		cfg.Clock.MinuteStep = opts.minuteStep
	}
	if f.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if f.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
}

// buildEntries makes the stock picker and the customised one from the
// same base options, which are returned for the host's own key bindings.
func buildEntries(cfg config.Config, log zerolog.Logger) ([]entry, core.Options, error) {
	base, err := cfg.PickerOptions()
	if err != nil {
		return nil, core.Options{}, err
	}
	base.Logger = &log

	basic := base
	basic.OnChange = func(v core.Value) {
		log.Debug().Str("picker", "basic").Str("value", v.String()).Msg("changed")
	}
	basicPicker, err := core.New(basic)
	if err != nil {
		return nil, core.Options{}, fmt.Errorf("basic picker: %w", err)
	}

	custom := base
	custom.Colors = customColors(base.Colors)
	custom.Components = customComponents()
	customPicker, err := core.New(custom)
	if err != nil {
		return nil, core.Options{}, fmt.Errorf("custom picker: %w", err)
	}

	return []entry{
		{title: "basic", picker: basicPicker},
		{title: "customised", picker: customPicker},
	}, base, nil
}

func run(out io.Writer, cfg config.Config, mouse bool) error {
	logger, closer, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	entries, base, err := buildEntries(cfg, logger)
	if err != nil {
		return err
	}
	m := newModel(entries, base.Keys, base.Colors, logger)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	logger.Info().Float64("radius", cfg.Clock.Radius).Int("minute_step", cfg.Clock.MinuteStep).Bool("mouse", mouse).Msg("starting")

	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	fm, ok := final.(model)
	if !ok {
		return nil
	}
	for i, v := range fm.Values() {
		title := fm.entries[i].title
		h, mm := v.Clock24()
		fmt.Fprintf(out, "%-10s %s (%02d:%02d)\n", title, v, h, mm)
		logger.Info().Str("picker", title).Str("value", v.String()).Msg("final value")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
