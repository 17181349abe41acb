package encoding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTripUTF8(t *testing.T) {
	c, ok := Lookup("utf-8")
	require.True(t, ok)

	encoded, err := Encode(c.NewEncoder(), c.Name, Strict{}, "héllo€")
	require.NoError(t, err)

	decoded, err := Decode(c.NewDecoder(), c.Name, Strict{}, encoded)
	require.NoError(t, err)
	assert.Equal(t, "héllo€", decoded)
}

func TestDecodeStrictReportsInvalidSequence(t *testing.T) {
	c, ok := Lookup("utf-8")
	require.True(t, ok)

	_, err := Decode(c.NewDecoder(), c.Name, Strict{}, []byte{0xC2, 'A'})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSequence)

	var driverErr *DriverError
	require.True(t, errors.As(err, &driverErr))
	assert.Equal(t, "decode", driverErr.Op)
	assert.Equal(t, "utf-8", driverErr.Label)
	assert.Equal(t, 0, driverErr.Upto)
}

func TestDecodeReplaceSubstitutesPlaceholder(t *testing.T) {
	c, ok := Lookup("utf-8")
	require.True(t, ok)

	decoded, err := Decode(c.NewDecoder(), c.Name, Replace{}, []byte{'a', 0xC2, 'b'})
	require.NoError(t, err)
	assert.Equal(t, "a�b", decoded)
}

func TestDecodeIgnoreDropsInvalidSequence(t *testing.T) {
	c, ok := Lookup("utf-8")
	require.True(t, ok)

	decoded, err := Decode(c.NewDecoder(), c.Name, Ignore{}, []byte{'a', 0xC2, 'b'})
	require.NoError(t, err)
	assert.Equal(t, "ab", decoded)
}

func TestEncodeNcrEscapeSubstitutesReference(t *testing.T) {
	c, ok := Lookup("iso-8859-2")
	require.True(t, ok)

	encoded, err := Encode(c.NewEncoder(), c.Name, NcrEscape{}, "a中b")
	require.NoError(t, err)
	assert.Equal(t, "a&#20013;b", string(encoded))
}

func TestEncodeStrictReportsUnrepresentable(t *testing.T) {
	c, ok := Lookup("iso-8859-2")
	require.True(t, ok)

	_, err := Encode(c.NewEncoder(), c.Name, Strict{}, "中")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrepresentable)

	var driverErr *DriverError
	require.True(t, errors.As(err, &driverErr))
	assert.Equal(t, "encode", driverErr.Op)
	assert.Equal(t, "iso-8859-2", driverErr.Label)
	assert.Equal(t, 0, driverErr.Upto)
}

// TestEncodeASCIIScenarioNcrEscape reproduces the spec's end-to-end
// scenario: encoding "Hello, 世界!" as ASCII with NcrEscape substitutes
// a numeric character reference for each non-ASCII rune.
func TestEncodeASCIIScenarioNcrEscape(t *testing.T) {
	c, ok := Lookup("ascii")
	require.True(t, ok)

	encoded, err := Encode(c.NewEncoder(), c.Name, NcrEscape{}, "Hello, 世界!")
	require.NoError(t, err)
	assert.Equal(t, "Hello, &#19990;&#30028;!", string(encoded))
}
