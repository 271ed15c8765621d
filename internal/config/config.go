package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/olivier-w/simumotion/internal/frames"
	"github.com/olivier-w/simumotion/internal/kinematics"
)

// Backend names.
const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
)

// EnvPrefix prefixes every environment override, e.g. SIMUMOTION_SIM_SLICES.
const EnvPrefix = "SIMUMOTION"

// SimConfig holds the time grid and force parameters.
type SimConfig struct {
	Duration   float64 `mapstructure:"duration"`
	Slices     int     `mapstructure:"slices"`
	Gravity    float64 `mapstructure:"gravity"`
	DragFactor float64 `mapstructure:"dragFactor"`
}

// LaunchConfig holds the initial conditions shared by every projectile.
type LaunchConfig struct {
	X0     float64   `mapstructure:"x0"`
	Y0     float64   `mapstructure:"y0"`
	Speed  float64   `mapstructure:"speed"`
	Angles []float64 `mapstructure:"angles"`
}

// ViewConfig holds the fixed plot cosmetics.
type ViewConfig struct {
	XMin         float64 `mapstructure:"xMin"`
	XMax         float64 `mapstructure:"xMax"`
	YMin         float64 `mapstructure:"yMin"`
	YMax         float64 `mapstructure:"yMax"`
	Title        string  `mapstructure:"title"`
	XLabel       string  `mapstructure:"xLabel"`
	YLabel       string  `mapstructure:"yLabel"`
	TimeTemplate string  `mapstructure:"timeTemplate"`
}

// PlaybackConfig holds the animation clock settings.
type PlaybackConfig struct {
	// Interval is the delay between frames. Zero means real time:
	// duration/slices seconds per frame.
	Interval time.Duration `mapstructure:"interval"`
	Repeat   bool          `mapstructure:"repeat"`
	Trace    string        `mapstructure:"trace"`
}

// Config is the full parameter set of a run.
type Config struct {
	Sim      SimConfig      `mapstructure:"sim"`
	Launch   LaunchConfig   `mapstructure:"launch"`
	View     ViewConfig     `mapstructure:"view"`
	Playback PlaybackConfig `mapstructure:"playback"`
	Backend  string         `mapstructure:"backend"`
	LogLevel string         `mapstructure:"logLevel"`
	LogFile  string         `mapstructure:"logFile"`
}

// SetDefaults registers the built-in parameter set on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("sim.duration", 10.0)
	v.SetDefault("sim.slices", 160)
	v.SetDefault("sim.gravity", 1.0)
	v.SetDefault("sim.dragFactor", 0.0)

	v.SetDefault("launch.x0", 0.0)
	v.SetDefault("launch.y0", 0.0)
	v.SetDefault("launch.speed", 5.0)
	v.SetDefault("launch.angles", []float64{15, 30, 45, 60, 75, 90})

	v.SetDefault("view.xMin", 0.0)
	v.SetDefault("view.xMax", 30.0)
	v.SetDefault("view.yMin", 0.0)
	v.SetDefault("view.yMax", 15.0)
	v.SetDefault("view.title", "Animation")
	v.SetDefault("view.xLabel", "length")
	v.SetDefault("view.yLabel", "height")
	v.SetDefault("view.timeTemplate", frames.DefaultTimeTemplate)

	v.SetDefault("playback.interval", "0s")
	v.SetDefault("playback.repeat", true)
	v.SetDefault("playback.trace", "cumulative")

	v.SetDefault("backend", BackendTerminal)
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
}

// RegisterFlags adds the command line overrides to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (yaml, json or toml)")
	fs.Float64("duration", 10, "simulated duration")
	fs.Int("slices", 160, "number of time samples")
	fs.Float64("gravity", 1, "gravity magnitude")
	fs.Float64("drag", 0, "drag as a fraction of gravity")
	fs.Float64("x0", 0, "launch x position")
	fs.Float64("y0", 0, "launch y position")
	fs.Float64("speed", 5, "launch speed")
	fs.Float64Slice("angles", []float64{15, 30, 45, 60, 75, 90}, "launch angles in degrees")
	fs.Duration("interval", 0, "delay between frames (0 = real time)")
	fs.Bool("repeat", true, "loop the animation")
	fs.String("trace", "cumulative", "trace mode: cumulative or current")
	fs.String("backend", BackendTerminal, "display backend: terminal or window")
	fs.String("log-level", "info", "log level: trace, debug, info, warn or error")
	fs.String("log-file", "", "write logs to this file instead of stderr")
}

var flagKeys = map[string]string{
	"duration":  "sim.duration",
	"slices":    "sim.slices",
	"gravity":   "sim.gravity",
	"drag":      "sim.dragFactor",
	"x0":        "launch.x0",
	"y0":        "launch.y0",
	"speed":     "launch.speed",
	"interval":  "playback.interval",
	"repeat":    "playback.repeat",
	"trace":     "playback.trace",
	"backend":   "backend",
	"log-level": "logLevel",
	"log-file":  "logFile",
}

// Load resolves the parameter set: defaults, then an optional config file,
// then SIMUMOTION_* environment variables (a .env file in the working
// directory is loaded first if present), then flags that were set. fs may be
// nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := ""
	if fs != nil {
		path, _ = fs.GetString("config")
	}
	if err := readConfigFile(v, path); err != nil {
		return Config{}, err
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
		if fs.Changed("angles") {
			angles, err := fs.GetFloat64Slice("angles")
			if err != nil {
				return Config{}, fmt.Errorf("reading angles: %w", err)
			}
			v.Set("launch.angles", angles)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		return nil
	}
	v.SetConfigName("simumotion")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Validate rejects parameter sets the kinematics and display cannot use.
func (c Config) Validate() error {
	switch {
	case c.Sim.Slices < 1:
		return fmt.Errorf("sim.slices must be at least 1, got %d", c.Sim.Slices)
	case c.Sim.Duration < 0:
		return fmt.Errorf("sim.duration must not be negative, got %v", c.Sim.Duration)
	case len(c.Launch.Angles) == 0:
		return errors.New("launch.angles must list at least one angle")
	case c.View.XMax <= c.View.XMin:
		return fmt.Errorf("view.xMax (%v) must exceed view.xMin (%v)", c.View.XMax, c.View.XMin)
	case c.View.YMax <= c.View.YMin:
		return fmt.Errorf("view.yMax (%v) must exceed view.yMin (%v)", c.View.YMax, c.View.YMin)
	case c.Playback.Interval < 0:
		return fmt.Errorf("playback.interval must not be negative, got %v", c.Playback.Interval)
	}
	if _, err := frames.ParseTraceMode(c.Playback.Trace); err != nil {
		return err
	}
	switch c.Backend {
	case BackendTerminal, BackendWindow:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendTerminal, BackendWindow)
	}
	return nil
}

// Acceleration returns the constant acceleration: drag opposes both axes and
// gravity pulls down.
func (c Config) Acceleration() kinematics.Vec2 {
	drag := c.Sim.DragFactor * c.Sim.Gravity
	return kinematics.Vec2{X: -drag, Y: -drag - c.Sim.Gravity}
}

// Launches returns one launch per configured angle.
func (c Config) Launches() []kinematics.Launch {
	out := make([]kinematics.Launch, len(c.Launch.Angles))
	for i, a := range c.Launch.Angles {
		out[i] = kinematics.Launch{
			Origin:   kinematics.Vec2{X: c.Launch.X0, Y: c.Launch.Y0},
			Speed:    c.Launch.Speed,
			AngleDeg: a,
		}
	}
	return out
}

// Interval returns the delay between frames. Without an explicit interval the
// animation plays in real time, one simulated unit per second.
func (c Config) Interval() time.Duration {
	if c.Playback.Interval > 0 {
		return c.Playback.Interval
	}
	if c.Sim.Slices < 1 || c.Sim.Duration <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(float64(time.Second) * c.Sim.Duration / float64(c.Sim.Slices))
}

// TraceMode returns the parsed trace mode.
func (c Config) TraceMode() frames.TraceMode {
	m, _ := frames.ParseTraceMode(c.Playback.Trace)
	return m
}

// Repeat returns the repeat mode.
func (c Config) Repeat() frames.RepeatMode {
	return frames.RepeatFromBool(c.Playback.Repeat)
}
