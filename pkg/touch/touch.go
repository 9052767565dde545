// Package touch applies a resolved timestamp pair to target files,
// creating them when absent.
package touch

import (
	"errors"
	"fmt"
	"os"

	"github.com/marmos91/ftouch/internal/logger"
	"github.com/marmos91/ftouch/pkg/timespec"
	"golang.org/x/sys/unix"
)

// createMode is the permissive creation mode of POSIX touch; the process
// umask narrows it.
const createMode = 0o666

// Toucher applies one immutable timestamp pair to any number of paths.
type Toucher struct {
	pair  timespec.Pair
	flags timespec.Flags
}

// New creates a Toucher for an already policy-adjusted pair.
func New(pair timespec.Pair, flags timespec.Flags) *Toucher {
	return &Toucher{pair: pair, flags: flags}
}

// TouchPath updates the timestamps of a single file. A missing file is
// created first unless NoCreate is set, in which case the path is skipped
// without error.
func (t *Toucher) TouchPath(path string) error {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	switch {
	case err == nil:
		f.Close()
	case errors.Is(err, os.ErrNotExist):
		if t.flags.NoCreate {
			logger.Debug("Skipping missing file", "path", path)
			return nil
		}
		created, createErr := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, createMode)
		if createErr != nil {
			return fmt.Errorf("create %s: %w", path, createErr)
		}
		created.Close()
	default:
		return fmt.Errorf("open %s: %w", path, err)
	}

	ts := []unix.Timespec{unixTimespec(t.pair.Access), unixTimespec(t.pair.Modify)}
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, path, ts, 0); err != nil {
		return fmt.Errorf("set times on %s: %w", path, err)
	}

	logger.Debug("Touched file",
		"path", path,
		"access_now", t.pair.Access.IsCurrent(),
		"modify_now", t.pair.Modify.IsCurrent())
	return nil
}

// TouchAll processes every path in order. A failure on one path is logged
// and remembered but does not abort the remaining paths; the first error
// is returned after the loop completes.
func (t *Toucher) TouchAll(paths []string) error {
	var firstErr error
	for _, path := range paths {
		if err := t.TouchPath(path); err != nil {
			logger.Error("Touch failed", "path", path, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// unixTimespec translates a timestamp to the kernel representation,
// mapping the two sentinels to UTIME_NOW and UTIME_OMIT.
func unixTimespec(ts timespec.Timespec) unix.Timespec {
	switch {
	case ts.IsCurrent():
		return unix.Timespec{Nsec: unix.UTIME_NOW}
	case ts.IsOmitted():
		return unix.Timespec{Nsec: unix.UTIME_OMIT}
	default:
		return unix.Timespec{Sec: ts.Sec, Nsec: ts.Nsec}
	}
}
