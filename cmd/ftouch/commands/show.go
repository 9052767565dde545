package commands

import (
	"github.com/marmos91/ftouch/internal/cli/output"
	"github.com/marmos91/ftouch/internal/cli/timeutil"
	"github.com/marmos91/ftouch/pkg/timespec"
	"github.com/spf13/cobra"
)

var showOutputFormat string

var showCmd = &cobra.Command{
	Use:   "show file...",
	Short: "Show file access and modification times",
	Long: `Show prints the access and modification timestamps of the given files
without modifying them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showOutputFormat, "output", "o", "", "output format (table, json, yaml)")
}

// fileTimes is the serializable view of one file's timestamps.
type fileTimes struct {
	Path       string `json:"path"        yaml:"path"`
	AccessTime string `json:"access_time" yaml:"access_time"`
	ModifyTime string `json:"modify_time" yaml:"modify_time"`
	AccessUnix string `json:"access_unix" yaml:"access_unix"`
	ModifyUnix string `json:"modify_unix" yaml:"modify_unix"`
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	formatStr := showOutputFormat
	if formatStr == "" {
		formatStr = cfg.Output.Format
	}
	format, err := output.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	resolver := timespec.NewOSResolver()

	entries := make([]fileTimes, 0, len(args))
	for _, path := range args {
		pair, err := resolver.ResolveReference(path)
		if err != nil {
			return err
		}
		entries = append(entries, fileTimes{
			Path:       path,
			AccessTime: timeutil.FormatTimespec(pair.Access),
			ModifyTime: timeutil.FormatTimespec(pair.Modify),
			AccessUnix: timeutil.FormatEpoch(pair.Access),
			ModifyUnix: timeutil.FormatEpoch(pair.Modify),
		})
	}

	w := cmd.OutOrStdout()
	switch format {
	case output.FormatJSON:
		return output.PrintJSON(w, entries)
	case output.FormatYAML:
		return output.PrintYAML(w, entries)
	default:
		table := output.NewTableData("PATH", "ACCESS TIME", "MODIFY TIME")
		for _, e := range entries {
			table.AddRow(e.Path, e.AccessTime, e.ModifyTime)
		}
		return output.PrintTable(w, table)
	}
}
