package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/geosnd/internal/config"
	"github.com/msto63/geosnd/internal/logging"
	"github.com/msto63/geosnd/pkg/codes"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "sndparse",
	Short: "GeoSuite SND borehole sounding parser",
	Long: `sndparse reads GeoSuite SND files - the text export format of
geotechnical drilling equipment - and turns them into structured
borehole sounding records.

Commands:
  parse    - parse SND files or directories
  watch    - watch a directory and parse new SND files as they appear
  codes    - show the active code tables
  version  - show version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json, console")
}

// loadConfig merges the config file (if any) with flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cfg, err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// newLogger builds the root logger from the configuration and installs
// it as the package default.
func newLogger(cfg config.Config) *logging.Logger {
	log := logging.NewWithConfig(logging.Config{
		Level:  cfg.LogLevel(),
		Format: cfg.LogFormat(),
		Output: os.Stderr,
		Name:   "sndparse",
	})
	logging.SetDefault(log)
	return log
}

// loadTables returns the configured code tables: CSV overrides when a
// table directory is set, the built-in defaults otherwise.
func loadTables(cfg config.Config) (*codes.Tables, error) {
	if cfg.Tables.Dir == "" {
		return codes.Default(), nil
	}
	return codes.LoadDir(cfg.Tables.Dir)
}

func printError(err error) {
	os.Stderr.WriteString("error: " + err.Error() + "\n")
}
