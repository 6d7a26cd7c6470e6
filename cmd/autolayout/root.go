package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/autolayout/internal/card"
	"github.com/jask/autolayout/internal/config"
	"github.com/jask/autolayout/internal/layout"
	"github.com/jask/autolayout/internal/logger"
	"github.com/jask/autolayout/internal/tui"
)

// Global flag values.
var (
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagNoMouse  bool
)

var rootCmd = &cobra.Command{
	Use:           "autolayout",
	Short:         "Click a card and watch it animate between three layouts",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runCard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: $AUTOLAYOUT_CONFIG or ~/.config/autolayout/config.toml)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "write logs to this file (overrides log.path)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (overrides log.level)")
	rootCmd.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "disable mouse input")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	if flagLogFile != "" {
		cfg.Log.Path = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagNoMouse {
		cfg.UI.Mouse = false
	}
	return cfg, nil
}

func runCard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, closeLog, err := logger.Open(cfg.Log.Path, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer closeLog()

	layoutTiming, err := cfg.LayoutTiming()
	if err != nil {
		return fmt.Errorf("layout timing: %w", err)
	}
	presenceTiming, err := cfg.PresenceTiming()
	if err != nil {
		return fmt.Errorf("presence timing: %w", err)
	}

	c := card.New(layout.Size{},
		card.WithLogger(log),
		card.WithLayoutTiming(layoutTiming),
		card.WithPresenceTiming(presenceTiming),
		card.WithFan(card.FanSpecs(cfg.Presence.Offset, cfg.Presence.Stagger)),
	)
	app := tui.New(c, cfg, tui.WithLogger(log))

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	log.Info("starting", "config", config.Path(flagConfig), "fps", cfg.UI.FPS, "mouse", cfg.UI.Mouse)
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
