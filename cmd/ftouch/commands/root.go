// Package commands implements the CLI commands of ftouch.
package commands

import (
	"fmt"

	"github.com/marmos91/ftouch/internal/logger"
	"github.com/marmos91/ftouch/pkg/config"
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Global flags.
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command. Invoked with file operands it
// behaves like POSIX touch.
var rootCmd = &cobra.Command{
	Use:   "ftouch [-a] [-c] [-m] [-d date_time|-r ref_file|-t time] file...",
	Short: "Update file access and modification times",
	Long: `ftouch updates the access and modification timestamps of files,
creating them if they do not exist.

The time to set comes from exactly one of three sources: a reference file
(-r), a compact numeric time (-t, [[CC]YY]MMDDhhmm[.SS]), or a date_time
string (-d, YYYY-MM-DD{T| }hh:mm:ss with optional fractional seconds and a
UTC marker). Without a source the current time is used.

Use "ftouch [command] --help" for more information about a command.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTouch,
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/ftouch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig loads the configuration and initializes the logger from it,
// applying the --log-level override if given.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	loggerCfg := logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if logLevel != "" {
		loggerCfg.Level = logLevel
	}
	if err := logger.Init(loggerCfg); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}
