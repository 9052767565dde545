package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/ftouch/pkg/timespec"
	"github.com/marmos91/ftouch/pkg/touch"
)

// executeRoot runs the root command with the given arguments. Package-level
// flag state survives across Execute calls, so it is reset first.
func executeRoot(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	accessOnly, modifyOnly, noCreate = false, false, false
	dateTime, refFile, timeArg = "", "", ""
	cfgFile, logLevel = "", ""
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRootCommand_TouchesPositionalOperand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "newfile")

	require.NoError(t, executeRoot(t, target))

	_, err := os.Stat(target)
	assert.NoError(t, err, "operand was not touched")
}

func TestRootCommand_FlagsWithOperand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "newfile")

	require.NoError(t, executeRoot(t, "-a", "-m", target))

	_, err := os.Stat(target)
	assert.NoError(t, err)
}

func TestRootCommand_ReferenceSource(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "ref")
	target := filepath.Join(dir, "target")

	stamped := timespec.Pair{
		Access: timespec.Timespec{Sec: 1234567890},
		Modify: timespec.Timespec{Sec: 1234567890},
	}
	require.NoError(t, touch.New(stamped, timespec.Flags{}).TouchPath(ref))

	require.NoError(t, executeRoot(t, "-r", ref, target))

	got, err := timespec.NewOSResolver().ResolveReference(target)
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890), got.Modify.Sec)
}

func TestRootCommand_MissingOperand(t *testing.T) {
	err := executeRoot(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing file operand")
}

func TestRootCommand_MutuallyExclusiveSources(t *testing.T) {
	target := filepath.Join(t.TempDir(), "file")

	err := executeRoot(t, "-d", "2004-02-29T16:21:42", "-t", "202001010101", target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr), "no file may be touched when sources conflict")
}

func TestRootCommand_EmptySourceSpecRejected(t *testing.T) {
	// A supplied-but-empty spec must reach its resolver and fail there,
	// never fall through to current-time semantics.
	target := filepath.Join(t.TempDir(), "file")

	for _, flag := range []string{"-d", "-t"} {
		err := executeRoot(t, flag, "", target)
		require.Error(t, err, "empty %s spec accepted", flag)
	}

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRootCommand_NoCreateSkipsMissing(t *testing.T) {
	target := filepath.Join(t.TempDir(), "absent")

	require.NoError(t, executeRoot(t, "-c", target))

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))
}
