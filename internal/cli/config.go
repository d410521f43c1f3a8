package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/learngeometry/pkg/errors"
)

// Config is the user configuration read from config.toml.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// DisplayConfig controls how results are presented.
type DisplayConfig struct {
	// Precision is the number of decimals in "largest" summaries.
	Precision int `toml:"precision"`
	// AltScreen runs the interactive menu in the terminal's alternate
	// screen, clearing it on entry and restoring it on exit.
	AltScreen bool `toml:"alt_screen"`
}

// LogConfig selects the default log level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `toml:"level"`
}

const maxPrecision = 10

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		Display: DisplayConfig{Precision: 1, AltScreen: true},
		Log:     LogConfig{Level: "info"},
	}
}

// loadConfig reads path on top of the defaults. A missing file is not an
// error; keys absent from the file keep their default values.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Display.Precision < 0 || c.Display.Precision > maxPrecision {
		return errors.New(errors.ErrCodeInvalidConfig, "display.precision must be between 0 and %d, got %d", maxPrecision, c.Display.Precision)
	}
	if _, err := parseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// configPath returns the config file location using the XDG standard
// (~/.config/learngeometry/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// configCommand creates the config command, which prints the effective
// configuration and where it was read from.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}

			if _, err := os.Stat(path); err != nil {
				printInfo("No config file, using defaults")
				printDetail("Create %s to change them", path)
			} else {
				printKeyValue("file", path)
			}
			printKeyValue("precision", strconv.Itoa(c.Config.Display.Precision))
			printKeyValue("alt_screen", strconv.FormatBool(c.Config.Display.AltScreen))
			printKeyValue("log level", c.Config.Log.Level)
			return nil
		},
	}
}
