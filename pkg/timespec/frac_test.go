package timespec

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrac(t *testing.T) {
	r := NewResolver(&fakeSystem{})

	t.Run("no fraction consumes nothing", func(t *testing.T) {
		nsec, consumed, err := r.parseFrac("Z")
		require.NoError(t, err)
		assert.Zero(t, nsec)
		assert.Zero(t, consumed)
	})

	t.Run("empty input", func(t *testing.T) {
		nsec, consumed, err := r.parseFrac("")
		require.NoError(t, err)
		assert.Zero(t, nsec)
		assert.Zero(t, consumed)
	})

	t.Run("dot fraction", func(t *testing.T) {
		nsec, consumed, err := r.parseFrac(".25")
		require.NoError(t, err)
		assert.Equal(t, int64(250000000), nsec)
		assert.Equal(t, 3, consumed)
	})

	t.Run("comma fraction normalized to dot", func(t *testing.T) {
		nsec, consumed, err := r.parseFrac(",5")
		require.NoError(t, err)
		assert.Equal(t, int64(500000000), nsec)
		assert.Equal(t, 2, consumed)
	})

	t.Run("stops at first non-digit", func(t *testing.T) {
		nsec, consumed, err := r.parseFrac(".125Zrest")
		require.NoError(t, err)
		assert.Equal(t, int64(125000000), nsec)
		assert.Equal(t, 4, consumed)
	})

	t.Run("caps at MaxFracDigits-1 digits", func(t *testing.T) {
		digits := MaxFracDigits() - 1
		in := "." + strings.Repeat("1", digits+5)
		_, consumed, err := r.parseFrac(in)
		require.NoError(t, err)
		assert.Equal(t, 1+digits, consumed)
	})

	t.Run("bare separator fails conversion", func(t *testing.T) {
		_, _, err := r.parseFrac(".")
		require.Error(t, err)
		assert.Equal(t, ErrNumericConversion, parseCode(t, err))
	})

	t.Run("conversion failure is injectable", func(t *testing.T) {
		cause := errors.New("nan")
		broken := NewResolver(&fakeSystem{fracErr: cause})
		_, _, err := broken.parseFrac(".5")
		assert.Equal(t, ErrNumericConversion, parseCode(t, err))
		assert.ErrorIs(t, err, cause)
	})
}
