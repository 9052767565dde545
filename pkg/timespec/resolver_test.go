package timespec

import (
	"errors"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSystem is a System double. It records what the resolvers asked for
// and returns canned answers, so parsing can be verified without any
// dependency on the host timezone or filesystem.
type fakeSystem struct {
	epoch    int64
	epochErr error

	atime   Timespec
	mtime   Timespec
	fileErr error

	tzErr   error
	tzCalls int

	fracErr error

	gotCT   CalendarTime
	gotZone Zone
	gotPath string
}

func (f *fakeSystem) ResolveEpoch(ct CalendarTime, zone Zone) (int64, error) {
	f.gotCT = ct
	f.gotZone = zone
	if f.epochErr != nil {
		return 0, f.epochErr
	}
	return f.epoch, nil
}

func (f *fakeSystem) FileTimes(path string) (Timespec, Timespec, error) {
	f.gotPath = path
	if f.fileErr != nil {
		return Timespec{}, Timespec{}, f.fileErr
	}
	return f.atime, f.mtime, nil
}

func (f *fakeSystem) SetTimezoneUTC() error {
	f.tzCalls++
	return f.tzErr
}

func (f *fakeSystem) ParseFrac(s string) (float64, error) {
	if f.fracErr != nil {
		return 0, f.fracErr
	}
	return strconv.ParseFloat(s, 64)
}

func writeEmptyFile(path string) error {
	return os.WriteFile(path, nil, 0o644)
}

// parseCode extracts the ErrorCode from a resolver error.
func parseCode(t *testing.T, err error) ErrorCode {
	t.Helper()
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	return pe.Code
}

func TestMaxFracDigits(t *testing.T) {
	// The cap is the digit count of the largest int64: 19.
	assert.Equal(t, 19, MaxFracDigits())
}

func TestResolveReference(t *testing.T) {
	t.Run("copies both timestamps verbatim", func(t *testing.T) {
		sys := &fakeSystem{
			atime: Timespec{Sec: 100, Nsec: 1},
			mtime: Timespec{Sec: 200, Nsec: 2},
		}
		r := NewResolver(sys)

		pair, err := r.ResolveReference("/some/file")
		require.NoError(t, err)
		assert.Equal(t, Timespec{Sec: 100, Nsec: 1}, pair.Access)
		assert.Equal(t, Timespec{Sec: 200, Nsec: 2}, pair.Modify)
		assert.Equal(t, "/some/file", sys.gotPath)
	})

	t.Run("missing file yields ReferenceFile error", func(t *testing.T) {
		cause := errors.New("no such file or directory")
		r := NewResolver(&fakeSystem{fileErr: cause})

		_, err := r.ResolveReference("/nope")
		assert.Equal(t, ErrReferenceFile, parseCode(t, err))
		assert.ErrorIs(t, err, cause)
	})
}

func TestResolveReference_OSSystem(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		path := t.TempDir() + "/ref"
		require.NoError(t, writeEmptyFile(path))

		pair, err := NewOSResolver().ResolveReference(path)
		require.NoError(t, err)
		assert.False(t, pair.Access.IsCurrent())
		assert.False(t, pair.Modify.IsCurrent())
		assert.NotZero(t, pair.Modify.Sec)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewOSResolver().ResolveReference(t.TempDir() + "/missing")
		assert.Equal(t, ErrReferenceFile, parseCode(t, err))
	})
}

func TestParseErrorMessage(t *testing.T) {
	err := NewInvalidFormatError("bad thing", "12345678")
	assert.Contains(t, err.Error(), "InvalidFormat")
	assert.Contains(t, err.Error(), `"12345678"`)

	envErr := NewEnvironmentError(errors.New("setenv failed"))
	assert.Contains(t, envErr.Error(), "Environment")
	assert.NotContains(t, envErr.Error(), "input")
}

func TestErrorCodeString(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrInvalidFormat, "InvalidFormat"},
		{ErrTimeResolution, "TimeResolution"},
		{ErrNumericConversion, "NumericConversion"},
		{ErrReferenceFile, "ReferenceFile"},
		{ErrEnvironment, "Environment"},
		{ErrorCode(99), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.String())
	}
}

func TestZoneString(t *testing.T) {
	assert.Equal(t, "local", ZoneLocal.String())
	assert.Equal(t, "utc", ZoneUTC.String())
	assert.Equal(t, "unknown", Zone(7).String())
}

func TestTimespecSentinels(t *testing.T) {
	assert.True(t, Timespec{Nsec: NsecCurrent}.IsCurrent())
	assert.True(t, Timespec{Nsec: NsecOmit}.IsOmitted())
	assert.False(t, Timespec{Nsec: 500}.IsCurrent())
	assert.False(t, Timespec{Nsec: 500}.IsOmitted())
	assert.NotEqual(t, NsecCurrent, NsecOmit)
}
