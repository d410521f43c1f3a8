// Package cli implements the learngeometry command-line interface.
//
// Running learngeometry without a subcommand starts the interactive menu,
// where shapes are entered one parameter at a time. The table, largest and
// formulas subcommands offer the same views for shapes given as arguments
// or read from a TOML file.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/learngeometry/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "learngeometry"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configFile string
	verbose    bool
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Without a subcommand the root command starts the interactive menu.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Learn geometry by building and comparing shapes",
		Long:          `learngeometry builds circles, triangles, rectangles, squares and regular pentagons, computes their area and perimeter, and tabulates them or finds the largest one.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.applyConfig(); err != nil {
				return err
			}
			// --verbose wins over the configured level.
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMenu(cmd.Context())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default ~/.config/learngeometry/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.menuCommand())
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.largestCommand())
	root.AddCommand(c.formulasCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// applyConfig reads the config file selected by --config, or the default
// location, and applies its log level.
func (c *CLI) applyConfig() error {
	path, err := c.resolveConfigPath()
	if err != nil {
		c.Logger.Debug("No config directory", "err", err)
		return nil
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	level, err := parseLogLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.SetLogLevel(level)
	c.Logger.Debug("Loaded config", "path", path)
	return nil
}

func (c *CLI) resolveConfigPath() (string, error) {
	if c.configFile != "" {
		return c.configFile, nil
	}
	return configPath()
}
