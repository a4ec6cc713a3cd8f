package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/clockface/core"
	"github.com/jask/clockface/widgets"
)

// Config holds application configuration.
type Config struct {
	Clock   ClockConfig         `mapstructure:"clock"`
	Colors  ColorsConfig        `mapstructure:"colors"`
	Initial InitialConfig       `mapstructure:"initial"`
	Log     LogConfig           `mapstructure:"log"`
	Keys    map[string][]string `mapstructure:"keys"`
}

// ClockConfig holds picker geometry and timing.
type ClockConfig struct {
	Radius         float64       `mapstructure:"radius"`
	NumberRadius   float64       `mapstructure:"number_radius"`
	CellAspect     float64       `mapstructure:"cell_aspect"`
	MinuteStep     int           `mapstructure:"minute_step"`
	AutoAdvance    bool          `mapstructure:"auto_advance"`
	Throttle       time.Duration `mapstructure:"throttle"`
	SwitchDuration time.Duration `mapstructure:"switch_duration"`
	FrameInterval  time.Duration `mapstructure:"frame_interval"`
}

// ColorsConfig holds theme overrides; empty values keep the defaults.
type ColorsConfig struct {
	Background      string `mapstructure:"background"`
	ClockBackground string `mapstructure:"clock_background"`
	ClockRing       string `mapstructure:"clock_ring"`
	ClockText       string `mapstructure:"clock_text"`
	ClockActive     string `mapstructure:"clock_active"`
	ClockActiveText string `mapstructure:"clock_active_text"`
	TopActive       string `mapstructure:"top_active"`
	TopActiveText   string `mapstructure:"top_active_text"`
	TopInactive     string `mapstructure:"top_inactive"`
	TopInactiveText string `mapstructure:"top_inactive_text"`
	Line            string `mapstructure:"line"`
	Center          string `mapstructure:"center"`
	End             string `mapstructure:"end"`
	Border          string `mapstructure:"border"`
	BorderFocused   string `mapstructure:"border_focused"`
}

// InitialConfig seeds the picker.
type InitialConfig struct {
	Hour   int    `mapstructure:"hour"`
	Minute int    `mapstructure:"minute"`
	Period string `mapstructure:"period"`
}

// LogConfig controls the debug log. The terminal belongs to the UI, so logs
// only go to a file.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	def := core.DefaultOptions()
	v.SetDefault("clock.radius", def.Radius)
	v.SetDefault("clock.number_radius", def.NumberRadius)
	v.SetDefault("clock.cell_aspect", def.CellAspect)
	v.SetDefault("clock.minute_step", def.MinuteStep)
	v.SetDefault("clock.auto_advance", def.AutoAdvance)
	v.SetDefault("clock.throttle", def.ThrottleInterval)
	v.SetDefault("clock.switch_duration", def.SwitchDuration)
	v.SetDefault("clock.frame_interval", def.FrameInterval)
	v.SetDefault("colors.background", "")
	v.SetDefault("colors.clock_background", "")
	v.SetDefault("colors.clock_ring", "")
	v.SetDefault("colors.clock_text", "")
	v.SetDefault("colors.clock_active", "")
	v.SetDefault("colors.clock_active_text", "")
	v.SetDefault("colors.top_active", "")
	v.SetDefault("colors.top_active_text", "")
	v.SetDefault("colors.top_inactive", "")
	v.SetDefault("colors.top_inactive_text", "")
	v.SetDefault("colors.line", "")
	v.SetDefault("colors.center", "")
	v.SetDefault("colors.end", "")
	v.SetDefault("colors.border", "")
	v.SetDefault("colors.border_focused", "")
	v.SetDefault("initial.hour", def.Initial.Hour)
	v.SetDefault("initial.minute", def.Initial.Minute)
	v.SetDefault("initial.period", string(def.Initial.Period))
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// DefaultPath is where Load looks when neither an explicit path nor
// CLOCKFACE_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "clockface", "config.toml")
}

// Load reads configuration from file and env. An empty path falls back to
// CLOCKFACE_CONFIG, then DefaultPath. A missing file is not an error. Env var
// overrides use prefix CLOCKFACE_.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("CLOCKFACE_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CLOCKFACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes cfg as TOML, creating the config directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = os.Getenv("CLOCKFACE_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("clock.radius", cfg.Clock.Radius)
	v.Set("clock.number_radius", cfg.Clock.NumberRadius)
	v.Set("clock.cell_aspect", cfg.Clock.CellAspect)
	v.Set("clock.minute_step", cfg.Clock.MinuteStep)
	v.Set("clock.auto_advance", cfg.Clock.AutoAdvance)
	v.Set("clock.throttle", cfg.Clock.Throttle.String())
	v.Set("clock.switch_duration", cfg.Clock.SwitchDuration.String())
	v.Set("clock.frame_interval", cfg.Clock.FrameInterval.String())
	v.Set("colors.background", cfg.Colors.Background)
	v.Set("colors.clock_background", cfg.Colors.ClockBackground)
	v.Set("colors.clock_ring", cfg.Colors.ClockRing)
	v.Set("colors.clock_text", cfg.Colors.ClockText)
	v.Set("colors.clock_active", cfg.Colors.ClockActive)
	v.Set("colors.clock_active_text", cfg.Colors.ClockActiveText)
	v.Set("colors.top_active", cfg.Colors.TopActive)
	v.Set("colors.top_active_text", cfg.Colors.TopActiveText)
	v.Set("colors.top_inactive", cfg.Colors.TopInactive)
	v.Set("colors.top_inactive_text", cfg.Colors.TopInactiveText)
	v.Set("colors.line", cfg.Colors.Line)
	v.Set("colors.center", cfg.Colors.Center)
	v.Set("colors.end", cfg.Colors.End)
	v.Set("colors.border", cfg.Colors.Border)
	v.Set("colors.border_focused", cfg.Colors.BorderFocused)
	v.Set("initial.hour", cfg.Initial.Hour)
	v.Set("initial.minute", cfg.Initial.Minute)
	v.Set("initial.period", cfg.Initial.Period)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// PickerOptions maps the configuration onto picker options. Validation of
// the geometry itself happens in core.New.
func (c Config) PickerOptions() (core.Options, error) {
	opts := core.DefaultOptions()
	opts.Radius = c.Clock.Radius
	opts.NumberRadius = c.Clock.NumberRadius
	opts.CellAspect = c.Clock.CellAspect
	opts.MinuteStep = c.Clock.MinuteStep
	opts.AutoAdvance = c.Clock.AutoAdvance
	opts.ThrottleInterval = c.Clock.Throttle
	opts.SwitchDuration = c.Clock.SwitchDuration
	opts.FrameInterval = c.Clock.FrameInterval

	period, err := core.ParsePeriod(c.Initial.Period)
	if err != nil {
		return core.Options{}, fmt.Errorf("initial period: %w", err)
	}
	opts.Initial = core.Value{Hour: c.Initial.Hour, Minute: c.Initial.Minute, Period: period}

	opts.Colors = widgets.Colors{
		Background:      c.Colors.Background,
		ClockBackground: c.Colors.ClockBackground,
		ClockRing:       c.Colors.ClockRing,
		ClockText:       c.Colors.ClockText,
		ClockActive:     c.Colors.ClockActive,
		ClockActiveText: c.Colors.ClockActiveText,
		TopActive:       c.Colors.TopActive,
		TopActiveText:   c.Colors.TopActiveText,
		TopInactive:     c.Colors.TopInactive,
		TopInactiveText: c.Colors.TopInactiveText,
		Line:            c.Colors.Line,
		Center:          c.Colors.Center,
		End:             c.Colors.End,
		Border:          c.Colors.Border,
		BorderFocused:   c.Colors.BorderFocused,
	}.WithDefaults()

	opts.Keys = core.ApplyActionKeybindings(core.DefaultKeyBindings(), c.Keys)
	return opts, nil
}
