package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/marmos91/ftouch/internal/cli/prompt"
	"github.com/marmos91/ftouch/pkg/config"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Init writes a commented sample configuration file to the default
location ($XDG_CONFIG_HOME/ftouch/config.yaml), or to the path given
with --config.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.GetDefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		ok, err := prompt.Confirm(
			fmt.Sprintf("Configuration file %s already exists. Overwrite?", path),
			false,
		)
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				return errors.New("aborted")
			}
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Keeping existing configuration.")
			return nil
		}
	}

	if err := config.InitConfigToPath(path, true); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit it to change logging and output defaults.")
	return nil
}
