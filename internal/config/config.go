package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/autolayout/internal/motion"
)

// Config holds application configuration.
type Config struct {
	Layout   LayoutConfig   `mapstructure:"layout"`
	Presence PresenceConfig `mapstructure:"presence"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

// LayoutConfig holds the timing of layout transitions.
type LayoutConfig struct {
	Duration time.Duration `mapstructure:"duration"`
	Easing   string        `mapstructure:"easing"`
}

// PresenceConfig holds the timing of enter and exit animations.
type PresenceConfig struct {
	Duration time.Duration `mapstructure:"duration"`
	Easing   string        `mapstructure:"easing"`
	Stagger  time.Duration `mapstructure:"stagger"`
	Offset   float64       `mapstructure:"offset"`
}

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	FPS        int     `mapstructure:"fps"`
	CellWidth  float64 `mapstructure:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height"`
	Mouse      bool    `mapstructure:"mouse"`
}

// LogConfig holds logging settings. An empty path disables logging.
type LogConfig struct {
	Path   string `mapstructure:"path"`
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Layout:   LayoutConfig{Duration: 450 * time.Millisecond, Easing: "ease-in-out-cubic"},
		Presence: PresenceConfig{Duration: 320 * time.Millisecond, Easing: "ease-out-cubic", Stagger: 60 * time.Millisecond, Offset: 48},
		UI:       UIConfig{FPS: 60, CellWidth: 10, CellHeight: 22, Mouse: true},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// DefaultPath returns the config file used when neither an explicit path
// nor AUTOLAYOUT_CONFIG is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "autolayout", "config.toml")
}

// Path resolves the config file location: explicit path, then
// AUTOLAYOUT_CONFIG, then DefaultPath.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("AUTOLAYOUT_CONFIG"); p != "" {
		return p
	}
	return DefaultPath()
}

// Load reads configuration from file and env. Env var overrides use prefix AUTOLAYOUT_.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType("toml")
	v.SetConfigFile(Path(path))

	v.SetEnvPrefix("AUTOLAYOUT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Save writes the provided config to path, creating the config directory if needed.
func Save(path string, cfg Config) error {
	path = Path(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	for key, val := range settings(cfg) {
		v.Set(key, val)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate rejects values the program cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Layout.Duration <= 0 {
		errs = append(errs, fmt.Errorf("layout.duration must be positive, got %s", c.Layout.Duration))
	}
	if _, err := motion.EasingByName(c.Layout.Easing); err != nil {
		errs = append(errs, fmt.Errorf("layout.easing: %w", err))
	}
	if c.Presence.Duration <= 0 {
		errs = append(errs, fmt.Errorf("presence.duration must be positive, got %s", c.Presence.Duration))
	}
	if _, err := motion.EasingByName(c.Presence.Easing); err != nil {
		errs = append(errs, fmt.Errorf("presence.easing: %w", err))
	}
	if c.Presence.Stagger < 0 {
		errs = append(errs, fmt.Errorf("presence.stagger must not be negative, got %s", c.Presence.Stagger))
	}
	if c.UI.FPS <= 0 {
		errs = append(errs, fmt.Errorf("ui.fps must be positive, got %d", c.UI.FPS))
	}
	if c.UI.CellWidth <= 0 || c.UI.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("ui cell size must be positive, got %gx%g", c.UI.CellWidth, c.UI.CellHeight))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// LayoutTiming returns the configured layout transition timing.
func (c Config) LayoutTiming() (motion.Timing, error) {
	return motion.NewTiming(c.Layout.Duration, c.Layout.Easing)
}

// PresenceTiming returns the configured enter/exit timing.
func (c Config) PresenceTiming() (motion.Timing, error) {
	return motion.NewTiming(c.Presence.Duration, c.Presence.Easing)
}

// FrameInterval returns the time between rendered frames.
func (c Config) FrameInterval() time.Duration {
	if c.UI.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.UI.FPS)
}

// Settings returns the flattened key/value view of cfg, as written by Save.
func Settings(cfg Config) map[string]any {
	return settings(cfg)
}

func settings(cfg Config) map[string]any {
	return map[string]any{
		"layout.duration":   cfg.Layout.Duration.String(),
		"layout.easing":     cfg.Layout.Easing,
		"presence.duration": cfg.Presence.Duration.String(),
		"presence.easing":   cfg.Presence.Easing,
		"presence.stagger":  cfg.Presence.Stagger.String(),
		"presence.offset":   cfg.Presence.Offset,
		"ui.fps":            cfg.UI.FPS,
		"ui.cell_width":     cfg.UI.CellWidth,
		"ui.cell_height":    cfg.UI.CellHeight,
		"ui.mouse":          cfg.UI.Mouse,
		"log.path":          cfg.Log.Path,
		"log.level":         cfg.Log.Level,
		"log.format":        cfg.Log.Format,
	}
}

func setDefaults(v *viper.Viper, cfg Config) {
	for key, val := range settings(cfg) {
		v.SetDefault(key, val)
	}
}
