package commands

import (
	"errors"

	"github.com/marmos91/ftouch/internal/logger"
	"github.com/marmos91/ftouch/pkg/timespec"
	"github.com/marmos91/ftouch/pkg/touch"
	"github.com/spf13/cobra"
)

var (
	accessOnly bool
	modifyOnly bool
	noCreate   bool
	dateTime   string
	refFile    string
	timeArg    string
)

func init() {
	rootCmd.Flags().BoolVarP(&accessOnly, "access", "a", false, "change only the access time")
	rootCmd.Flags().BoolVarP(&noCreate, "no-create", "c", false, "do not create files that do not exist")
	rootCmd.Flags().BoolVarP(&modifyOnly, "modify", "m", false, "change only the modification time")
	rootCmd.Flags().StringVarP(&dateTime, "date", "d", "", "use date_time instead of the current time (YYYY-MM-DD{T| }hh:mm:ss[.frac][Z])")
	rootCmd.Flags().StringVarP(&refFile, "reference", "r", "", "use the timestamps of ref_file instead of the current time")
	rootCmd.Flags().StringVarP(&timeArg, "time", "t", "", "use the given time instead of the current time ([[CC]YY]MMDDhhmm[.SS])")
}

func runTouch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		_ = cmd.Usage()
		return errors.New("missing file operand")
	}

	// Presence decides the source, not the value: an empty spec still
	// reaches its resolver and fails validation there.
	sources := 0
	for _, name := range []string{"reference", "time", "date"} {
		if cmd.Flags().Changed(name) {
			sources++
		}
	}
	if sources > 1 {
		return errors.New("the --date, --reference, and --time options are mutually exclusive")
	}

	flags := timespec.Flags{
		AccessTime: accessOnly,
		ModTime:    modifyOnly,
		NoCreate:   noCreate || cfg.Defaults.NoCreate,
	}

	resolver := timespec.NewOSResolver()

	var source *timespec.Pair
	switch {
	case cmd.Flags().Changed("reference"):
		pair, err := resolver.ResolveReference(refFile)
		if err != nil {
			return err
		}
		source = &pair
	case cmd.Flags().Changed("time"):
		pair, err := resolver.ResolveNumeric(timeArg)
		if err != nil {
			return err
		}
		source = &pair
	case cmd.Flags().Changed("date"):
		pair, err := resolver.ResolveDateTime(dateTime)
		if err != nil {
			return err
		}
		source = &pair
	}

	pair := timespec.ApplyPolicy(flags, source)

	logger.Debug("resolved timestamps",
		"access", pair.Access,
		"modify", pair.Modify,
		"files", len(args))

	return touch.New(pair, flags).TouchAll(args)
}
